// parser.go — recursive-descent parser for PaneerLang.
//
// The parser consumes the Lexer cursor (Peek/Advance, never un-consume) and
// builds a *Program. Statement dispatch is a fixed lookup on the current
// token's keyword; expressions are parsed with one function per precedence
// level, lowest to highest:
//
//	equality (== !=) → comparison (> >= < <=) → term (+ -) →
//	factor (* /) → unary (! -) → call/postfix ((...) .name(...) [...]) →
//	primary (literals, identifiers, paneer, (...), [...])
//
// each level forming standard left-associative binary chains. Types are a
// primitive name or array<T>, recursively.
//
// Error policy: need() compares only the kind of the current token to the
// expected kind; on mismatch it fails immediately with the supplied message
// as a *ParseError. There is no recovery or resynchronization — the first
// syntax error aborts the whole parse.
package paneerlang

import "fmt"

// ParseError is a fatal syntax failure naming the unmet expectation.
// Line is 1-based, Col 0-based (token coordinates).
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// Parser assembles a Program from a token cursor.
type Parser struct {
	lex *Lexer
}

// NewParser wraps a lexed token cursor.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse consumes every token and returns the Program, or the first
// *ParseError encountered.
func (p *Parser) Parse() (*Program, error) {
	var statements []Statement
	for !p.lex.IsAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &Program{Statements: statements}, nil
}

// errHere builds a ParseError at the current token (or at the last consumed
// position when the input is exhausted).
func (p *Parser) errHere(msg string) error {
	if tok, ok := p.lex.Peek(); ok {
		return &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
	}
	toks := p.lex.Tokens()
	if n := len(toks); n > 0 {
		last := toks[n-1]
		return &ParseError{Line: last.Line, Col: last.Col, Msg: msg}
	}
	return &ParseError{Line: 1, Col: 0, Msg: msg}
}

// need consumes the current token when its kind matches tt; otherwise it
// fails with msg. Literal payloads are ignored by the comparison.
func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	tok, ok := p.lex.Peek()
	if !ok || tok.Type != tt {
		return Token{}, p.errHere(msg)
	}
	p.lex.Advance()
	return tok, nil
}

// check reports whether the current token has kind tt without consuming it.
func (p *Parser) check(tt TokenType) bool {
	tok, ok := p.lex.Peek()
	return ok && tok.Type == tt
}

// match consumes the current token iff its kind is tt.
func (p *Parser) match(tt TokenType) bool {
	if p.check(tt) {
		p.lex.Advance()
		return true
	}
	return false
}

// expectIdent consumes an ID token and returns its lexeme.
func (p *Parser) expectIdent(msg string) (string, error) {
	tok, ok := p.lex.Peek()
	if !ok || tok.Type != ID {
		return "", p.errHere(msg)
	}
	p.lex.Advance()
	return tok.Lexeme, nil
}

// ----- statements -----

func (p *Parser) parseStatement() (Statement, error) {
	tok, ok := p.lex.Peek()
	if !ok {
		return nil, p.errHere("expected statement")
	}
	switch tok.Type {
	case YE:
		return p.parseVarDeclaration()
	case FUNC:
		return p.parseFuncDeclaration()
	case AGAR:
		return p.parseIfStatement()
	case RETURN:
		return p.parseReturnStatement()
	case WAPAS:
		return p.parseWapasKarStatement()
	case JABTAK:
		return p.parseWhileStatement()
	case HAR:
		return p.parseForStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarDeclaration() (Statement, error) {
	if _, err := p.need(YE, "expected 'ye'"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("expected variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(COLON, "expected ':' after variable name"); err != nil {
		return nil, err
	}
	declType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ASSIGN, "expected '=' after type"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarDecl{Name: name, DeclType: declType, Init: init}, nil
}

func (p *Parser) parseFuncDeclaration() (Statement, error) {
	if _, err := p.need(FUNC, "expected 'func'"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent("expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(LROUND, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []Param
	if !p.check(RROUND) {
		for {
			paramName, err := p.expectIdent("expected parameter name")
			if err != nil {
				return nil, err
			}
			paramType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: paramName, Type: paramType})
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RROUND, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	returnType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("expected '{' before function body", "expected '}' after function body")
	if err != nil {
		return nil, err
	}
	return &FuncDecl{Name: name, Params: params, ReturnType: returnType, Body: body}, nil
}

func (p *Parser) parseIfStatement() (Statement, error) {
	if _, err := p.need(AGAR, "expected 'agar'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.parseBlock("expected '{' after if condition", "expected '}' after if body")
	if err != nil {
		return nil, err
	}

	var elseBranch []Statement
	if p.match(VARNA) {
		elseBranch, err = p.parseBlock("expected '{' after 'varna'", "expected '}' after else body")
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) parseReturnStatement() (Statement, error) {
	if _, err := p.need(RETURN, "expected 'return'"); err != nil {
		return nil, err
	}
	return p.parseReturnValue()
}

// parseWapasKarStatement handles the two-keyword return alias 'wapas kar'.
func (p *Parser) parseWapasKarStatement() (Statement, error) {
	if _, err := p.need(WAPAS, "expected 'wapas'"); err != nil {
		return nil, err
	}
	if _, err := p.need(KAR, "expected 'kar' after 'wapas'"); err != nil {
		return nil, err
	}
	return p.parseReturnValue()
}

func (p *Parser) parseReturnValue() (Statement, error) {
	var value Expression
	if !p.check(SEMICOLON) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	if _, err := p.need(SEMICOLON, "expected ';' after return statement"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Value: value}, nil
}

func (p *Parser) parseWhileStatement() (Statement, error) {
	if _, err := p.need(JABTAK, "expected 'jabtak'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("expected '{' after while condition", "expected '}' after while body")
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseForStatement() (Statement, error) {
	if _, err := p.need(HAR, "expected 'har'"); err != nil {
		return nil, err
	}
	variable, err := p.expectIdent("expected variable name after 'har'")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(MEIN, "expected 'mein' after variable"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("expected '{' after for expression", "expected '}' after for body")
	if err != nil {
		return nil, err
	}
	return &ForStmt{Var: variable, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseExpressionStatement() (Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// parseBlock parses '{' statement* '}'.
func (p *Parser) parseBlock(openMsg, closeMsg string) ([]Statement, error) {
	if _, err := p.need(LCURLY, openMsg); err != nil {
		return nil, err
	}
	var body []Statement
	for !p.check(RCURLY) && !p.lex.IsAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.need(RCURLY, closeMsg); err != nil {
		return nil, err
	}
	return body, nil
}

// ----- expressions -----

func (p *Parser) parseExpression() (Expression, error) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch {
		case p.match(EQ):
			op = OpEq
		case p.match(NEQ):
			op = OpNeq
		default:
			return expr, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
}

func (p *Parser) parseComparison() (Expression, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch {
		case p.match(GREATER):
			op = OpGreater
		case p.match(GREATER_EQ):
			op = OpGreaterEq
		case p.match(LESS):
			op = OpLess
		case p.match(LESS_EQ):
			op = OpLessEq
		default:
			return expr, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
}

func (p *Parser) parseTerm() (Expression, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch {
		case p.match(PLUS):
			op = OpAdd
		case p.match(MINUS):
			op = OpSub
		default:
			return expr, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
}

func (p *Parser) parseFactor() (Expression, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch {
		case p.match(MULT):
			op = OpMul
		case p.match(DIV):
			op = OpDiv
		default:
			return expr, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
}

func (p *Parser) parseUnary() (Expression, error) {
	switch {
	case p.match(BANG):
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Operand: operand}, nil
	case p.match(MINUS):
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNeg, Operand: operand}, nil
	default:
		return p.parseCall()
	}
}

// parseCall parses the postfix layer: call '(...)', method call '.name(...)'
// and index '[...]' chains, left to right.
func (p *Parser) parseCall() (Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(LROUND):
			args, err := p.parseArguments(RROUND, "expected ')' after arguments")
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{Callee: expr, Args: args}

		case p.match(PERIOD):
			method, err := p.parseMethodName()
			if err != nil {
				return nil, err
			}
			if _, err := p.need(LROUND, "expected '(' after method name"); err != nil {
				return nil, err
			}
			args, err := p.parseArguments(RROUND, "expected ')' after method arguments")
			if err != nil {
				return nil, err
			}
			expr = &MethodCallExpr{Object: expr, Method: method, Args: args}

		case p.match(LSQUARE):
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.need(RSQUARE, "expected ']' after array index"); err != nil {
				return nil, err
			}
			expr = &IndexExpr{Array: expr, Index: index}

		default:
			return expr, nil
		}
	}
}

// parseMethodName accepts an identifier, or the keyword 'bol' so that
// paneer.bol parses even though bol is reserved.
func (p *Parser) parseMethodName() (string, error) {
	tok, ok := p.lex.Peek()
	if !ok {
		return "", p.errHere("expected method name after '.'")
	}
	switch tok.Type {
	case ID, BOL:
		p.lex.Advance()
		return tok.Lexeme, nil
	default:
		return "", p.errHere("expected method name after '.'")
	}
}

// parseArguments parses a possibly-empty comma-separated expression list
// terminated by closer (which is consumed).
func (p *Parser) parseArguments(closer TokenType, closeMsg string) ([]Expression, error) {
	var args []Expression
	if !p.check(closer) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(closer, closeMsg); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (Expression, error) {
	tok, ok := p.lex.Advance()
	if !ok {
		return nil, p.errHere("expected expression")
	}
	switch tok.Type {
	case TRUE:
		return &LiteralExpr{Value: Bool(true)}, nil
	case FALSE:
		return &LiteralExpr{Value: Bool(false)}, nil
	case INTEGER:
		return &LiteralExpr{Value: Int(tok.Literal.(int64))}, nil
	case FLOAT:
		return &LiteralExpr{Value: Float(tok.Literal.(float64))}, nil
	case STRING:
		return &LiteralExpr{Value: Str(tok.Literal.(string))}, nil
	case ID:
		return &VariableExpr{Name: tok.Lexeme}, nil
	case PANEER:
		// The built-in object parses as a plain variable reference; only a
		// .bol(...) method call gives it meaning.
		return &VariableExpr{Name: "paneer"}, nil
	case LROUND:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case LSQUARE:
		elements, err := p.parseArguments(RSQUARE, "expected ']' after array elements")
		if err != nil {
			return nil, err
		}
		return &ArrayLiteralExpr{Elements: elements}, nil
	default:
		return nil, &ParseError{Line: tok.Line, Col: tok.Col, Msg: "expected expression"}
	}
}

// ----- types -----

// parseType parses a primitive type name or array<T>, recursively.
func (p *Parser) parseType() (Type, error) {
	tok, ok := p.lex.Advance()
	if !ok {
		return Type{}, p.errHere("expected type annotation")
	}
	switch tok.Type {
	case INT_TYPE:
		return IntType, nil
	case FLOAT_TYPE:
		return FloatType, nil
	case STRING_TYPE:
		return StringType, nil
	case BOOL_TYPE:
		return BoolType, nil
	case ARRAY_TYPE:
		if _, err := p.need(LESS, "expected '<' after 'array'"); err != nil {
			return Type{}, err
		}
		elem, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		if _, err := p.need(GREATER, "expected '>' after array element type"); err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	default:
		return Type{}, &ParseError{Line: tok.Line, Col: tok.Col, Msg: "expected type annotation"}
	}
}
