// ast.go — AST node and type definitions for PaneerLang.
//
// The AST is a tree of closed tagged unions: Statement and Expression are
// sealed interfaces (the marker methods keep the variant sets closed within
// this package), and Type is a small recursive struct. Nodes carry no
// behavior beyond what the data model needs; lexing, parsing and evaluation
// live in their own files.
//
// Dependencies: none — this is the leaf of the package.
package paneerlang

// TypeKind discriminates the closed set of PaneerLang types.
type TypeKind int

const (
	TypeInt TypeKind = iota
	TypeFloat
	TypeString
	TypeBool
	TypeArray
)

// Type is a PaneerLang type. Elem is non-nil iff Kind == TypeArray.
// Types are immutable and structurally comparable via Equal.
type Type struct {
	Kind TypeKind
	Elem *Type
}

// Convenience constructors for the primitive types.
var (
	IntType    = Type{Kind: TypeInt}
	FloatType  = Type{Kind: TypeFloat}
	StringType = Type{Kind: TypeString}
	BoolType   = Type{Kind: TypeBool}
)

// ArrayOf builds the homogeneous array type array<elem>.
func ArrayOf(elem Type) Type {
	return Type{Kind: TypeArray, Elem: &elem}
}

// Equal reports structural type equality: two array types are equal iff
// their element types are equal.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == TypeArray {
		return t.Elem.Equal(*o.Elem)
	}
	return true
}

// Program is the root of the AST: an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

// Statement is the closed union of PaneerLang statement forms.
type Statement interface{ stmtNode() }

// Expression is the closed union of PaneerLang expression forms.
type Expression interface{ exprNode() }

// Param is one function parameter: name plus declared type.
type Param struct {
	Name string
	Type Type
}

// VarDecl is `ye name: type = init;`.
type VarDecl struct {
	Name     string
	DeclType Type
	Init     Expression
}

// FuncDecl is `func name(params) returnType { body }`.
type FuncDecl struct {
	Name       string
	Params     []Param
	ReturnType Type
	Body       []Statement
}

// ExprStmt is a bare expression followed by ';'.
type ExprStmt struct {
	Expr Expression
}

// IfStmt is `agar cond { then } varna { else }`; Else is nil when the
// varna branch is absent.
type IfStmt struct {
	Cond Expression
	Then []Statement
	Else []Statement
}

// ReturnStmt is `return value;` or `wapas kar value;`; Value is nil for a
// bare return, which yields Int(0) at run time.
type ReturnStmt struct {
	Value Expression
}

// WhileStmt is `jabtak cond { body }`.
type WhileStmt struct {
	Cond Expression
	Body []Statement
}

// ForStmt is `har name mein iterable { body }`.
type ForStmt struct {
	Var      string
	Iterable Expression
	Body     []Statement
}

func (*VarDecl) stmtNode()    {}
func (*FuncDecl) stmtNode()   {}
func (*ExprStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode() {}
func (*WhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()    {}

// BinaryOp enumerates the binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNeq
	OpGreater
	OpLess
	OpGreaterEq
	OpLessEq
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterEq:
		return ">="
	case OpLessEq:
		return "<="
	default:
		return "?"
	}
}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota // prefix '-'
	OpNot                // '!'
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "!"
}

// BinaryExpr is `left op right`.
type BinaryExpr struct {
	Left  Expression
	Op    BinaryOp
	Right Expression
}

// UnaryExpr is `op operand`.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expression
}

// CallExpr is `callee(args...)`. The callee is an expression for grammar
// uniformity, but only bare names resolve to functions at run time.
type CallExpr struct {
	Callee Expression
	Args   []Expression
}

// VariableExpr is a bare name reference.
type VariableExpr struct {
	Name string
}

// LiteralExpr wraps a literal runtime value produced by the lexer.
type LiteralExpr struct {
	Value Value
}

// MethodCallExpr is `object.method(args...)`; the only accepted shape at
// run time is the print built-in paneer.bol(x).
type MethodCallExpr struct {
	Object Expression
	Method string
	Args   []Expression
}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	Elements []Expression
}

// IndexExpr is `array[index]`.
type IndexExpr struct {
	Array Expression
	Index Expression
}

func (*BinaryExpr) exprNode()       {}
func (*UnaryExpr) exprNode()        {}
func (*CallExpr) exprNode()         {}
func (*VariableExpr) exprNode()     {}
func (*LiteralExpr) exprNode()      {}
func (*MethodCallExpr) exprNode()   {}
func (*ArrayLiteralExpr) exprNode() {}
func (*IndexExpr) exprNode()        {}
