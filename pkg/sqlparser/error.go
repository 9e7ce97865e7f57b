package sqlparser

import (
	"fmt"

	"github.com/antlr4-go/antlr/v4"
)

// ParseError is returned when the underlying tokenizer fails to produce a
// statement. The analyzer treats every parse failure identically regardless
// of the underlying cause.
type ParseError struct {
	Line   int
	Column int
	Detail string
}

// Error returns the error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("SQL parsing failed: %s", e.Detail)
}

// lexErrorListener captures the first lexer error reported by ANTLR.
type lexErrorListener struct {
	*antlr.DefaultErrorListener
	err *ParseError
}

// SyntaxError records the first tokenizer failure.
func (l *lexErrorListener) SyntaxError(
	_ antlr.Recognizer,
	_ any,
	line, column int,
	message string,
	_ antlr.RecognitionException,
) {
	if l.err != nil {
		return
	}
	l.err = &ParseError{
		Line:   line,
		Column: column,
		Detail: fmt.Sprintf("%s at line %d:%d", message, line, column),
	}
}
