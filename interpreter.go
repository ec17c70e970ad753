// interpreter.go — tree-walking evaluator for PaneerLang.
//
// The interpreter executes a Program against a chain of Env frames.
// Statement execution threads an explicit two-variant result — normal
// completion or return(v) — through nested blocks instead of using panics,
// so a return short-circuits the remaining statements of its sequence and
// propagates upward until a function call site absorbs it. A return that
// escapes the top level of the program is an error.
//
// Operator dispatch is on the runtime tags of the operands, not declared
// types. Type declarations are enforced exactly (no Int/Float widening) at
// variable declaration, argument binding and function return.
//
// All failures are *RuntimeError values carrying a Kind from the error
// taxonomy; execution is fail-fast with no recovery.
package paneerlang

import (
	"fmt"
	"io"
	"os"
)

// RuntimeErrorKind classifies runtime failures.
type RuntimeErrorKind int

const (
	ErrTypeMismatch RuntimeErrorKind = iota
	ErrUndefinedVariable
	ErrUndefinedFunction
	ErrArityMismatch
	ErrDivisionByZero
	ErrIndexOutOfBounds
	ErrInvalidOperation
	ErrReturnOutsideFunction
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrUndefinedFunction:
		return "UndefinedFunction"
	case ErrArityMismatch:
		return "ArityMismatch"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrIndexOutOfBounds:
		return "IndexOutOfBounds"
	case ErrInvalidOperation:
		return "InvalidOperation"
	case ErrReturnOutsideFunction:
		return "ReturnOutsideFunction"
	default:
		return "Unknown"
	}
}

// RuntimeError is an execution-time failure. Every error is terminal to the
// current Interpret call; resumption policy belongs to the caller.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR: %s", e.Msg)
}

func rtErrf(kind RuntimeErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// stmtResult is the two-variant outcome of executing one statement:
// normal fallthrough, or a return carrying its value.
type stmtResult struct {
	isReturn bool
	value    Value
}

var fallthru = stmtResult{}

// Interpreter executes programs against its own environment chain.
//
// Out receives the lines printed by the paneer.bol built-in, in program
// order; it defaults to os.Stdout and may be redirected by embedders.
type Interpreter struct {
	env *Env // current scope; the bottom of the chain is the global scope
	Out io.Writer
}

// NewInterpreter returns an interpreter with a fresh, empty global scope.
func NewInterpreter() *Interpreter {
	return &Interpreter{env: NewEnv(nil), Out: os.Stdout}
}

// RunSource lexes, parses and interprets src in one call. The error, if
// any, is the typed failure of whichever stage failed first (*LexError,
// *ParseError or *RuntimeError).
func (ip *Interpreter) RunSource(src string) error {
	lex, err := NewLexer(src)
	if err != nil {
		return err
	}
	program, err := NewParser(lex).Parse()
	if err != nil {
		return err
	}
	return ip.Interpret(program)
}

// Interpret executes every top-level statement in order. A return statement
// whose effect escapes the top level is a ReturnOutsideFunction error.
func (ip *Interpreter) Interpret(program *Program) error {
	for _, stmt := range program.Statements {
		res, err := ip.execStatement(stmt)
		if err != nil {
			return err
		}
		if res.isReturn {
			return rtErrf(ErrReturnOutsideFunction, "return statement outside of function")
		}
	}
	return nil
}

// ----- statements -----

func (ip *Interpreter) execStatement(stmt Statement) (stmtResult, error) {
	switch st := stmt.(type) {
	case *VarDecl:
		value, err := ip.evalExpression(st.Init)
		if err != nil {
			return fallthru, err
		}
		if got := value.TypeOf(); !got.Equal(st.DeclType) {
			return fallthru, rtErrf(ErrTypeMismatch, "type mismatch: expected %s, got %s", st.DeclType, got)
		}
		ip.env.DefineVar(st.Name, value)
		return fallthru, nil

	case *FuncDecl:
		// The body is not checked at declaration time; arity and types are
		// enforced at each call.
		ip.env.DefineFunc(st.Name, &Function{
			Params:     st.Params,
			ReturnType: st.ReturnType,
			Body:       st.Body,
		})
		return fallthru, nil

	case *ExprStmt:
		_, err := ip.evalExpression(st.Expr)
		return fallthru, err

	case *IfStmt:
		cond, err := ip.evalExpression(st.Cond)
		if err != nil {
			return fallthru, err
		}
		if cond.Truthy() {
			return ip.execBlock(st.Then)
		}
		if st.Else != nil {
			return ip.execBlock(st.Else)
		}
		return fallthru, nil

	case *ReturnStmt:
		value := Int(0) // bare return defaults to Int(0)
		if st.Value != nil {
			v, err := ip.evalExpression(st.Value)
			if err != nil {
				return fallthru, err
			}
			value = v
		}
		return stmtResult{isReturn: true, value: value}, nil

	case *WhileStmt:
		// The condition is re-evaluated fresh every pass, and the body runs
		// in the current scope — no per-iteration frame.
		for {
			cond, err := ip.evalExpression(st.Cond)
			if err != nil {
				return fallthru, err
			}
			if !cond.Truthy() {
				return fallthru, nil
			}
			res, err := ip.execBlock(st.Body)
			if err != nil || res.isReturn {
				return res, err
			}
		}

	case *ForStmt:
		iterable, err := ip.evalExpression(st.Iterable)
		if err != nil {
			return fallthru, err
		}
		if iterable.Tag != VTArray {
			return fallthru, rtErrf(ErrInvalidOperation, "can only iterate over arrays")
		}
		for _, element := range iterable.Data.([]Value) {
			// One child frame per iteration, holding only the loop variable;
			// discarded when the iteration ends, early return included.
			saved := ip.env
			ip.env = NewEnv(saved)
			ip.env.DefineVar(st.Var, element)
			res, err := ip.execBlock(st.Body)
			ip.env = saved
			if err != nil || res.isReturn {
				return res, err
			}
		}
		return fallthru, nil

	default:
		return fallthru, rtErrf(ErrInvalidOperation, "unknown statement")
	}
}

// execBlock runs a statement sequence, short-circuiting on the first return.
func (ip *Interpreter) execBlock(body []Statement) (stmtResult, error) {
	for _, stmt := range body {
		res, err := ip.execStatement(stmt)
		if err != nil || res.isReturn {
			return res, err
		}
	}
	return fallthru, nil
}

// ----- expressions -----

func (ip *Interpreter) evalExpression(expr Expression) (Value, error) {
	switch ex := expr.(type) {
	case *LiteralExpr:
		return ex.Value, nil

	case *VariableExpr:
		v, ok := ip.env.GetVar(ex.Name)
		if !ok {
			return Value{}, rtErrf(ErrUndefinedVariable, "undefined variable: %s", ex.Name)
		}
		return v, nil

	case *BinaryExpr:
		left, err := ip.evalExpression(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.evalExpression(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return applyBinary(ex.Op, left, right)

	case *UnaryExpr:
		operand, err := ip.evalExpression(ex.Operand)
		if err != nil {
			return Value{}, err
		}
		return applyUnary(ex.Op, operand)

	case *CallExpr:
		return ip.evalCall(ex)

	case *MethodCallExpr:
		return ip.evalMethodCall(ex)

	case *ArrayLiteralExpr:
		// Built element by element; homogeneity is not enforced here. Only a
		// later declared-type check can catch a mixed array.
		elements := make([]Value, 0, len(ex.Elements))
		for _, el := range ex.Elements {
			v, err := ip.evalExpression(el)
			if err != nil {
				return Value{}, err
			}
			elements = append(elements, v)
		}
		return Arr(elements), nil

	case *IndexExpr:
		arrayVal, err := ip.evalExpression(ex.Array)
		if err != nil {
			return Value{}, err
		}
		indexVal, err := ip.evalExpression(ex.Index)
		if err != nil {
			return Value{}, err
		}
		if arrayVal.Tag != VTArray || indexVal.Tag != VTInt {
			return Value{}, rtErrf(ErrInvalidOperation, "invalid array access: array must be array type and index must be int")
		}
		xs := arrayVal.Data.([]Value)
		idx := indexVal.Data.(int64)
		if idx < 0 || idx >= int64(len(xs)) {
			return Value{}, rtErrf(ErrIndexOutOfBounds, "array index out of bounds: %d", idx)
		}
		return deepCopy(xs[idx]), nil

	default:
		return Value{}, rtErrf(ErrInvalidOperation, "unknown expression")
	}
}

// evalCall resolves and applies a user-defined function. The callee must be
// a bare name; there are no first-class function values.
func (ip *Interpreter) evalCall(ex *CallExpr) (Value, error) {
	callee, ok := ex.Callee.(*VariableExpr)
	if !ok {
		return Value{}, rtErrf(ErrInvalidOperation, "invalid function call")
	}
	fn, ok := ip.env.GetFunc(callee.Name)
	if !ok {
		return Value{}, rtErrf(ErrUndefinedFunction, "undefined function: %s", callee.Name)
	}
	if len(ex.Args) != len(fn.Params) {
		return Value{}, rtErrf(ErrArityMismatch, "function %s expects %d arguments, got %d",
			callee.Name, len(fn.Params), len(ex.Args))
	}

	// Arguments evaluate in the caller's scope; the callee frame chains from
	// the caller's current environment (call-site scoping), so the body sees
	// whatever is in scope here — not at the declaration site.
	callEnv := NewEnv(ip.env)
	for i, param := range fn.Params {
		arg, err := ip.evalExpression(ex.Args[i])
		if err != nil {
			return Value{}, err
		}
		if got := arg.TypeOf(); !got.Equal(param.Type) {
			return Value{}, rtErrf(ErrTypeMismatch, "argument type mismatch for parameter %s: expected %s, got %s",
				param.Name, param.Type, got)
		}
		callEnv.DefineVar(param.Name, arg)
	}

	saved := ip.env
	ip.env = callEnv
	returnValue := Int(0)
	for _, stmt := range fn.Body {
		res, err := ip.execStatement(stmt)
		if err != nil {
			ip.env = saved
			return Value{}, err
		}
		if res.isReturn {
			returnValue = res.value
			break
		}
	}
	ip.env = saved

	if got := returnValue.TypeOf(); !got.Equal(fn.ReturnType) {
		return Value{}, rtErrf(ErrTypeMismatch, "return type mismatch: expected %s, got %s", fn.ReturnType, got)
	}
	return returnValue, nil
}

// evalMethodCall implements the single built-in method, paneer.bol: print
// one stringified argument as a line and yield Int(0). Any other method
// shape is an unknown method.
func (ip *Interpreter) evalMethodCall(ex *MethodCallExpr) (Value, error) {
	objectName := "unknown"
	if v, ok := ex.Object.(*VariableExpr); ok {
		objectName = v.Name
	}

	if objectName == "paneer" && ex.Method == "bol" {
		if len(ex.Args) != 1 {
			return Value{}, rtErrf(ErrArityMismatch, "paneer.bol() expects exactly 1 argument")
		}
		value, err := ip.evalExpression(ex.Args[0])
		if err != nil {
			return Value{}, err
		}
		fmt.Fprintln(ip.Out, displayString(value))
		return Int(0), nil
	}

	return Value{}, rtErrf(ErrInvalidOperation, "unknown method: %s.%s", objectName, ex.Method)
}

// ----- operators -----

// applyBinary dispatches on (operator, left tag, right tag). An operation
// with no matching rule fails naming the operator and operand values.
func applyBinary(op BinaryOp, left, right Value) (Value, error) {
	switch op {
	case OpAdd:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Int(left.Data.(int64) + right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Float(left.Data.(float64) + right.Data.(float64)), nil
		// Mixed '+' with a string on either side concatenates, stringifying
		// the non-string operand.
		case left.Tag == VTString:
			return Str(left.Data.(string) + displayString(right)), nil
		case right.Tag == VTString:
			return Str(displayString(left) + right.Data.(string)), nil
		}

	case OpSub:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Int(left.Data.(int64) - right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Float(left.Data.(float64) - right.Data.(float64)), nil
		}

	case OpMul:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Int(left.Data.(int64) * right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Float(left.Data.(float64) * right.Data.(float64)), nil
		}

	case OpDiv:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			if right.Data.(int64) == 0 {
				return Value{}, rtErrf(ErrDivisionByZero, "division by zero")
			}
			return Int(left.Data.(int64) / right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			if right.Data.(float64) == 0 {
				return Value{}, rtErrf(ErrDivisionByZero, "division by zero")
			}
			return Float(left.Data.(float64) / right.Data.(float64)), nil
		}

	case OpEq:
		// Structural equality; cross-type comparisons are legal and false.
		return Bool(deepEqual(left, right)), nil
	case OpNeq:
		return Bool(!deepEqual(left, right)), nil

	case OpGreater:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Bool(left.Data.(int64) > right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Bool(left.Data.(float64) > right.Data.(float64)), nil
		}
	case OpLess:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Bool(left.Data.(int64) < right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Bool(left.Data.(float64) < right.Data.(float64)), nil
		}
	case OpGreaterEq:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Bool(left.Data.(int64) >= right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Bool(left.Data.(float64) >= right.Data.(float64)), nil
		}
	case OpLessEq:
		switch {
		case left.Tag == VTInt && right.Tag == VTInt:
			return Bool(left.Data.(int64) <= right.Data.(int64)), nil
		case left.Tag == VTFloat && right.Tag == VTFloat:
			return Bool(left.Data.(float64) <= right.Data.(float64)), nil
		}
	}

	return Value{}, rtErrf(ErrInvalidOperation, "invalid binary operation: %s %s %s",
		displayString(left), op, displayString(right))
}

// applyUnary dispatches on (operator, operand tag). '!' coerces any value
// via truthiness and never fails; '-' requires a numeric operand.
func applyUnary(op UnaryOp, operand Value) (Value, error) {
	switch op {
	case OpNot:
		return Bool(!operand.Truthy()), nil
	case OpNeg:
		switch operand.Tag {
		case VTInt:
			return Int(-operand.Data.(int64)), nil
		case VTFloat:
			return Float(-operand.Data.(float64)), nil
		}
	}
	return Value{}, rtErrf(ErrInvalidOperation, "invalid unary operation: %s%s", op, displayString(operand))
}
