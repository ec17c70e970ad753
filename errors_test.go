// errors_test.go
package paneerlang

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func Test_WrapErrorWithSource_ParseError(t *testing.T) {
	src := "ye x: int = 5;\nx + 1\nye y: int = 6;"
	l, err := NewLexer(src)
	be.Err(t, err, nil)
	_, err = NewParser(l).Parse()
	var parseError *ParseError
	be.True(t, errors.As(err, &parseError))

	wrapped := WrapErrorWithSource(err, src)
	want := strings.Join([]string{
		"PARSE ERROR at 3:1: expected ';' after expression",
		"",
		"   2 | x + 1",
		"   3 | ye y: int = 6;",
		"     | ^",
		"",
	}, "\n")
	be.Equal(t, wrapped.Error(), want)
}

func Test_WrapErrorWithSource_LexError(t *testing.T) {
	src := "ye x: int = @;"
	_, err := NewLexer(src)
	var lexError *LexError
	be.True(t, errors.As(err, &lexError))

	wrapped := WrapErrorWithSource(err, src).Error()
	be.True(t, strings.HasPrefix(wrapped, "LEXICAL ERROR at 1:13: "))
	be.True(t, strings.Contains(wrapped, "   1 | ye x: int = @;"))
	be.True(t, strings.Contains(wrapped, "     |             ^"))
}

func Test_WrapErrorWithSource_FirstAndLastLines(t *testing.T) {
	// An error on line 1 has no context line above; on the last line, none
	// below.
	src := "@"
	_, err := NewLexer(src)
	wrapped := WrapErrorWithSource(err, src).Error()
	want := strings.Join([]string{
		"LEXICAL ERROR at 1:1: unexpected character at position 0: \"@\"",
		"",
		"   1 | @",
		"     | ^",
		"",
	}, "\n")
	be.Equal(t, wrapped, want)
}

func Test_WrapErrorWithSource_PassthroughOtherErrors(t *testing.T) {
	rtErr := rtErrf(ErrDivisionByZero, "division by zero")
	be.Equal(t, WrapErrorWithSource(rtErr, "whatever"), error(rtErr))

	plain := errors.New("boom")
	be.Equal(t, WrapErrorWithSource(plain, ""), plain)
}

func Test_ErrorStringFormats(t *testing.T) {
	lexErr := &LexError{Pos: 3, Line: 2, Col: 4, Msg: "bad"}
	be.Equal(t, lexErr.Error(), "LEXICAL ERROR at 2:5: bad")

	parseErr := &ParseError{Line: 1, Col: 0, Msg: "expected expression"}
	be.Equal(t, parseErr.Error(), "PARSE ERROR at 1:1: expected expression")

	rtErr := rtErrf(ErrTypeMismatch, "type mismatch: expected %s, got %s", IntType, StringType)
	be.Equal(t, rtErr.Error(), "RUNTIME ERROR: type mismatch: expected int, got string")
	be.Equal(t, rtErr.Kind.String(), "TypeMismatch")
}
