// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// WrapErrorWithSource turns lexer/parser diagnostics into readable snippets
// with a caret pointing at the offending column:
//
//	PARSE ERROR at 2:7: expected ';' after expression
//
//	   1 | ye x: int = 5;
//	   2 | x + 1
//	     |      ^
//
// The snippet includes up to one line of context before and after the error,
// numbers the lines, and places the caret under the 1-based column. Errors
// of any other type (runtime errors included — they carry no position) are
// returned unchanged. Output is plain text; colors and localized phrasings
// are presentation concerns that live outside this package.
package paneerlang

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of src when err is a *LexError or *ParseError; any other error is
// returned as-is.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Col is 0-based; render as 1-based.
		return fmt.Errorf("%s", prettyErrorString(src, "LEXICAL ERROR", e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorString(src, "PARSE ERROR", e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

// prettyErrorString builds the snippet. Coordinates are treated as 1-based
// and clamped to the source bounds so rendering never fails.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
