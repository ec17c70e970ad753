// lexer.go — lexical analysis for PaneerLang.
//
// The scanner converts raw source text into an ordered, randomly-indexable
// list of tokens with byte spans and line/column positions. Scanning is
// eager: NewLexer tokenizes the whole input up front and fails with a
// *LexError (position + offending text) on the first unrecognized character.
// The resulting Lexer is the cursor the parser consumes: Peek, Advance and
// IsAtEnd, with no backtracking.
//
// Lexical rules worth noting:
//   - keywords and type names win over the identifier rule (longest match);
//   - a '-' immediately followed by a digit starts a negative numeric
//     literal, not a minus operator;
//   - float literals require a fractional part ("1." is INTEGER then PERIOD);
//   - strings decode the escapes \" \\ \n \t; any other escape is an error;
//   - "//" line comments and whitespace are dropped, never tokenized.
package paneerlang

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Keywords
	PANEER TokenType = iota // built-in object name
	BOL                     // print method name
	YE                      // variable declaration
	AGAR                    // if
	TOH                     // reserved (unused by the grammar)
	VARNA                   // else
	FUNC                    // function declaration
	RETURN                  // return
	WAPAS                   // "wapas kar" return alias, first word
	KAR                     // "wapas kar" return alias, second word
	JABTAK                  // while
	HAR                     // for-each
	MEIN                    // in
	SE                      // reserved (unused by the grammar)
	TAK                     // reserved (unused by the grammar)

	// Type names
	INT_TYPE
	FLOAT_TYPE
	STRING_TYPE
	BOOL_TYPE
	ARRAY_TYPE

	// Literals & identifiers
	INTEGER
	FLOAT
	STRING
	TRUE
	FALSE
	ID

	// Operators
	PLUS
	MINUS
	MULT
	DIV
	ASSIGN // "="
	EQ     // "=="
	NEQ    // "!="
	BANG   // "!"
	GREATER
	LESS
	GREATER_EQ
	LESS_EQ

	// Delimiters
	LROUND    // "("
	RROUND    // ")"
	LCURLY    // "{"
	RCURLY    // "}"
	LSQUARE   // "["
	RSQUARE   // "]"
	SEMICOLON // ";"
	COLON     // ":"
	COMMA     // ","
	PERIOD    // "."
)

// Token is a lexical token with its source span.
//
// Start/End are byte offsets into the source (half-open interval); Line is
// 1-based and Col is the 0-based column of the first byte. Literal carries
// the decoded value for INTEGER (int64), FLOAT (float64) and STRING (string)
// tokens and is nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Start   int
	End     int
	Line    int
	Col     int
}

// keywords maps reserved words to their token types; checked before the
// general identifier rule.
var keywords = map[string]TokenType{
	"paneer": PANEER,
	"bol":    BOL,
	"ye":     YE,
	"agar":   AGAR,
	"toh":    TOH,
	"varna":  VARNA,
	"func":   FUNC,
	"return": RETURN,
	"wapas":  WAPAS,
	"kar":    KAR,
	"jabtak": JABTAK,
	"har":    HAR,
	"mein":   MEIN,
	"se":     SE,
	"tak":    TAK,
	"int":    INT_TYPE,
	"float":  FLOAT_TYPE,
	"string": STRING_TYPE,
	"bool":   BOOL_TYPE,
	"array":  ARRAY_TYPE,
	"true":   TRUE,
	"false":  FALSE,
}

// LexError is a fatal lexical failure at a source position. Pos is the byte
// offset of the offending text; Line/Col locate it for caret rendering.
type LexError struct {
	Pos  int
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col+1, e.Msg)
}

// Lexer is the token cursor handed to the parser: the full token list plus
// a current index. The parser never un-consumes.
type Lexer struct {
	tokens []Token
	cur    int
}

// NewLexer tokenizes the entire source and returns a cursor over the token
// list, or a *LexError describing the first unrecognized character. No
// partial token list is returned on failure.
func NewLexer(src string) (*Lexer, error) {
	s := &scanner{src: src, line: 1}
	tokens, err := s.scan()
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: tokens}, nil
}

// Peek returns the current token without consuming it; ok is false at end.
func (l *Lexer) Peek() (Token, bool) {
	if l.cur >= len(l.tokens) {
		return Token{}, false
	}
	return l.tokens[l.cur], true
}

// Advance consumes and returns the current token; ok is false at end.
func (l *Lexer) Advance() (Token, bool) {
	if l.cur >= len(l.tokens) {
		return Token{}, false
	}
	tok := l.tokens[l.cur]
	l.cur++
	return tok, true
}

// IsAtEnd reports whether every token has been consumed.
func (l *Lexer) IsAtEnd() bool { return l.cur >= len(l.tokens) }

// Tokens exposes the full token list (spans included) for tooling.
func (l *Lexer) Tokens() []Token { return l.tokens }

// ----- scanner -----

// scanner is the internal byte-level state machine that produces the token
// list consumed through Lexer.
type scanner struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

func (s *scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *scanner) peek() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	return s.src[s.cur], true
}

func (s *scanner) peekN(n int) (byte, bool) {
	idx := s.cur + n
	if idx >= len(s.src) {
		return 0, false
	}
	return s.src[idx], true
}

func (s *scanner) advance() (byte, bool) {
	if s.isAtEnd() {
		return 0, false
	}
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch, true
}

func (s *scanner) addToken(tt TokenType, lit any) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.src[s.start:s.cur],
		Literal: lit,
		Start:   s.start,
		End:     s.cur,
		Line:    s.tokStartLine,
		Col:     s.tokStartCol,
	})
	s.start = s.cur
}

func (s *scanner) skipWhitespace() {
	for !s.isAtEnd() {
		ch, _ := s.peek()
		switch ch {
		case ' ', '\t', '\r', '\n', '\f':
			s.advance()
			s.start = s.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

func (s *scanner) err(msg string) error {
	return &LexError{Pos: s.start, Line: s.tokStartLine, Col: s.tokStartCol, Msg: msg}
}

// errAtCursor reports an error at the scanner's live position rather than
// the token start (used mid-string for bad escapes).
func (s *scanner) errAtCursor(msg string) error {
	return &LexError{Pos: s.cur, Line: s.line, Col: s.col, Msg: msg}
}

// scanNumber parses an integer or float starting at s.start, including an
// optional leading '-'. A '.' is consumed only when followed by a digit;
// the fractional part is what makes the literal a float.
func (s *scanner) scanNumber() (TokenType, any, error) {
	if b, ok := s.peek(); ok && b == '-' {
		s.advance()
	}
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			break
		}
		s.advance()
	}

	isFloat := false
	if b, ok := s.peek(); ok && b == '.' {
		if b2, ok2 := s.peekN(1); ok2 && isDigit(b2) {
			s.advance() // consume '.'
			isFloat = true
			for {
				b, ok := s.peek()
				if !ok || !isDigit(b) {
					break
				}
				s.advance()
			}
		}
	}

	lex := s.src[s.start:s.cur]
	if isFloat {
		f, convErr := strconv.ParseFloat(lex, 64)
		if convErr != nil {
			return 0, nil, s.err(fmt.Sprintf("invalid float literal: %q", lex))
		}
		return FLOAT, f, nil
	}
	n, convErr := strconv.ParseInt(lex, 10, 64)
	if convErr != nil {
		return 0, nil, s.err(fmt.Sprintf("invalid integer literal: %q", lex))
	}
	return INTEGER, n, nil
}

// scanString parses a double-quoted string literal with the opening quote
// already consumed, decoding the escape sequences \" \\ \n \t.
func (s *scanner) scanString() (string, error) {
	var out []byte
	for !s.isAtEnd() {
		ch, _ := s.advance()
		if ch == '"' {
			return string(out), nil
		}
		if ch == '\\' {
			esc, ok := s.advance()
			if !ok {
				return "", s.errAtCursor("unfinished escape sequence")
			}
			switch esc {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				return "", s.errAtCursor(fmt.Sprintf("invalid escape sequence: \\%c", esc))
			}
			continue
		}
		out = append(out, ch)
	}
	return "", s.err("string was not terminated")
}

// scanIdentifier parses [A-Za-z_][A-Za-z0-9_]* starting at s.start.
func (s *scanner) scanIdentifier() string {
	for {
		b, ok := s.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		s.advance()
	}
	return s.src[s.start:s.cur]
}

// ignoreUntilNewline eats a line comment body.
func (s *scanner) ignoreUntilNewline() {
	for {
		b, ok := s.peek()
		if !ok || b == '\n' {
			return
		}
		s.advance()
	}
}

func (s *scanner) scanToken() (done bool, err error) {
	s.skipWhitespace()
	s.tokStartLine = s.line
	s.tokStartCol = s.col
	s.start = s.cur

	if s.isAtEnd() {
		return true, nil
	}

	ch, _ := s.advance()

	switch ch {
	case '(':
		s.addToken(LROUND, nil)
		return false, nil
	case ')':
		s.addToken(RROUND, nil)
		return false, nil
	case '{':
		s.addToken(LCURLY, nil)
		return false, nil
	case '}':
		s.addToken(RCURLY, nil)
		return false, nil
	case '[':
		s.addToken(LSQUARE, nil)
		return false, nil
	case ']':
		s.addToken(RSQUARE, nil)
		return false, nil
	case ';':
		s.addToken(SEMICOLON, nil)
		return false, nil
	case ':':
		s.addToken(COLON, nil)
		return false, nil
	case ',':
		s.addToken(COMMA, nil)
		return false, nil
	case '.':
		s.addToken(PERIOD, nil)
		return false, nil
	case '+':
		s.addToken(PLUS, nil)
		return false, nil
	case '*':
		s.addToken(MULT, nil)
		return false, nil
	case '/':
		if b, ok := s.peek(); ok && b == '/' {
			s.ignoreUntilNewline()
			s.start = s.cur
			return false, nil
		}
		s.addToken(DIV, nil)
		return false, nil
	case '-':
		// A digit right after '-' makes a negative literal; the leading
		// minus belongs to the literal, not to a unary operator.
		if b, ok := s.peek(); ok && isDigit(b) {
			s.cur = s.start // rewind; scanNumber re-reads the '-'
			s.col--
			tt, lit, numErr := s.scanNumber()
			if numErr != nil {
				return false, numErr
			}
			s.addToken(tt, lit)
			return false, nil
		}
		s.addToken(MINUS, nil)
		return false, nil
	case '=':
		if b, ok := s.peek(); ok && b == '=' {
			s.advance()
			s.addToken(EQ, nil)
			return false, nil
		}
		s.addToken(ASSIGN, nil)
		return false, nil
	case '!':
		if b, ok := s.peek(); ok && b == '=' {
			s.advance()
			s.addToken(NEQ, nil)
			return false, nil
		}
		s.addToken(BANG, nil)
		return false, nil
	case '<':
		if b, ok := s.peek(); ok && b == '=' {
			s.advance()
			s.addToken(LESS_EQ, nil)
			return false, nil
		}
		s.addToken(LESS, nil)
		return false, nil
	case '>':
		if b, ok := s.peek(); ok && b == '=' {
			s.advance()
			s.addToken(GREATER_EQ, nil)
			return false, nil
		}
		s.addToken(GREATER, nil)
		return false, nil
	case '"':
		text, strErr := s.scanString()
		if strErr != nil {
			return false, strErr
		}
		s.addToken(STRING, text)
		return false, nil
	}

	if isDigit(ch) {
		s.cur = s.start // rewind to scan the whole literal
		s.col--
		tt, lit, numErr := s.scanNumber()
		if numErr != nil {
			return false, numErr
		}
		s.addToken(tt, lit)
		return false, nil
	}

	if isAlpha(ch) {
		lex := s.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			s.addToken(tt, nil)
			return false, nil
		}
		s.addToken(ID, nil)
		return false, nil
	}

	return false, s.err(fmt.Sprintf("unexpected character at position %d: %q", s.start, s.src[s.start:s.cur]))
}

func (s *scanner) scan() ([]Token, error) {
	for {
		done, err := s.scanToken()
		if err != nil {
			return nil, err
		}
		if done {
			return s.tokens, nil
		}
	}
}
