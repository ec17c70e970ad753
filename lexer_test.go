// lexer_test.go
package paneerlang

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nalgeon/be"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	l, err := NewLexer(src)
	if err != nil {
		t.Fatalf("NewLexer error: %v", err)
	}
	return l.Tokens()
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := tokenTypes(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Examples_HelloWorld(t *testing.T) {
	src := `ye msg: string = "namaste"; paneer.bol(msg);`
	wantTypes(t, src, []TokenType{
		YE, ID, COLON, STRING_TYPE, ASSIGN, STRING, SEMICOLON,
		PANEER, PERIOD, BOL, LROUND, ID, RROUND, SEMICOLON,
	})
}

func Test_Lexer_Examples_FunctionDecl(t *testing.T) {
	src := `func add(a int, b int) int { return a + b; }`
	wantTypes(t, src, []TokenType{
		FUNC, ID, LROUND, ID, INT_TYPE, COMMA, ID, INT_TYPE, RROUND, INT_TYPE,
		LCURLY, RETURN, ID, PLUS, ID, SEMICOLON, RCURLY,
	})
}

func Test_Lexer_Keywords_WinOverIdentifiers(t *testing.T) {
	got := toks(t, "jabtak jabtakx agar agarwal")
	want := []TokenType{JABTAK, ID, AGAR, ID}
	be.Equal(t, tokenTypes(got), want)
	be.Equal(t, got[1].Lexeme, "jabtakx")
	be.Equal(t, got[3].Lexeme, "agarwal")
}

func Test_Lexer_ReservedButInertKeywords(t *testing.T) {
	wantTypes(t, "toh se tak wapas kar", []TokenType{TOH, SE, TAK, WAPAS, KAR})
}

func Test_Lexer_IntegerLiterals(t *testing.T) {
	got := wantTypes(t, "0 42 -7", []TokenType{INTEGER, INTEGER, INTEGER})
	be.Equal(t, got[0].Literal.(int64), int64(0))
	be.Equal(t, got[1].Literal.(int64), int64(42))
	be.Equal(t, got[2].Literal.(int64), int64(-7))
}

func Test_Lexer_NegativeLiteral_MinusBindsToDigit(t *testing.T) {
	// No space before the digit: the minus belongs to the literal.
	got := wantTypes(t, "5 -3", []TokenType{INTEGER, INTEGER})
	be.Equal(t, got[1].Literal.(int64), int64(-3))

	// A space between '-' and the digit keeps the minus an operator.
	wantTypes(t, "5 - 3", []TokenType{INTEGER, MINUS, INTEGER})

	// '-' before a name is always the operator.
	wantTypes(t, "-x", []TokenType{MINUS, ID})
}

func Test_Lexer_FloatLiterals(t *testing.T) {
	got := wantTypes(t, "3.14 -0.5", []TokenType{FLOAT, FLOAT})
	be.Equal(t, got[0].Literal.(float64), 3.14)
	be.Equal(t, got[1].Literal.(float64), -0.5)
}

func Test_Lexer_Float_RequiresFractionalPart(t *testing.T) {
	// "1." is an integer then a period; the float grammar demands digits
	// after the decimal point.
	got := wantTypes(t, "1.", []TokenType{INTEGER, PERIOD})
	be.Equal(t, got[0].Literal.(int64), int64(1))
}

func Test_Lexer_StringLiteral_Escapes(t *testing.T) {
	got := wantTypes(t, `"a\"b\\c\nd\te"`, []TokenType{STRING})
	be.Equal(t, got[0].Literal.(string), "a\"b\\c\nd\te")
}

func Test_Lexer_StringLiteral_InvalidEscape(t *testing.T) {
	_, err := NewLexer(`"bad \q escape"`)
	var lexErr *LexError
	be.True(t, errors.As(err, &lexErr))
}

func Test_Lexer_StringLiteral_Unterminated(t *testing.T) {
	_, err := NewLexer(`"no closing quote`)
	var lexErr *LexError
	be.True(t, errors.As(err, &lexErr))
}

func Test_Lexer_Operators_TwoCharBeforeOneChar(t *testing.T) {
	wantTypes(t, "== = != ! <= < >= >", []TokenType{
		EQ, ASSIGN, NEQ, BANG, LESS_EQ, LESS, GREATER_EQ, GREATER,
	})
}

func Test_Lexer_Comments_Dropped(t *testing.T) {
	src := "ye x: int = 1; // yeh ek comment hai\n// poora line\nx;"
	wantTypes(t, src, []TokenType{
		YE, ID, COLON, INT_TYPE, ASSIGN, INTEGER, SEMICOLON,
		ID, SEMICOLON,
	})
}

func Test_Lexer_UnknownCharacter(t *testing.T) {
	_, err := NewLexer("ye x: int = @;")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want *LexError, got %v", err)
	}
	be.Equal(t, lexErr.Pos, 12)
	be.Equal(t, lexErr.Msg, `unexpected character at position 12: "@"`)
}

func Test_Lexer_NoPartialTokenListOnError(t *testing.T) {
	l, err := NewLexer("1 + $")
	be.True(t, err != nil)
	be.True(t, l == nil)
}

func Test_Lexer_Spans(t *testing.T) {
	got := toks(t, `ye x: int = 10;`)
	// "ye" occupies bytes [0,2); "10" occupies [12,14).
	be.Equal(t, got[0].Start, 0)
	be.Equal(t, got[0].End, 2)
	ten := got[len(got)-2]
	be.Equal(t, ten.Type, INTEGER)
	be.Equal(t, ten.Start, 12)
	be.Equal(t, ten.End, 14)
}

func Test_Lexer_LineAndColumn(t *testing.T) {
	got := toks(t, "ye x: int = 1;\njabtak true {\n}")
	var jabtak Token
	for _, tok := range got {
		if tok.Type == JABTAK {
			jabtak = tok
		}
	}
	be.Equal(t, jabtak.Line, 2)
	be.Equal(t, jabtak.Col, 0)
}

func Test_Lexer_Cursor_PeekAdvanceIsAtEnd(t *testing.T) {
	l, err := NewLexer("1 + 2")
	be.Err(t, err, nil)

	be.True(t, !l.IsAtEnd())
	tok, ok := l.Peek()
	be.True(t, ok)
	be.Equal(t, tok.Type, INTEGER)

	// Peek does not consume.
	again, _ := l.Peek()
	be.Equal(t, again.Start, tok.Start)

	for !l.IsAtEnd() {
		_, ok := l.Advance()
		be.True(t, ok)
	}
	_, ok = l.Peek()
	be.True(t, !ok)
	_, ok = l.Advance()
	be.True(t, !ok)
}

func Test_Lexer_EmptySource(t *testing.T) {
	l, err := NewLexer("   // sirf comment\n")
	be.Err(t, err, nil)
	be.True(t, l.IsAtEnd())
	be.Equal(t, len(l.Tokens()), 0)
}
