// Package berrors defines the three terminal error kinds a run can end
// with. Nothing in the core recovers from any of them; the cli package
// classifies the error once at the run boundary and reports it.
package berrors

import "fmt"

// LexerError reports an invalid character or malformed operator.
type LexerError struct {
	msg string
}

func (e *LexerError) Error() string { return e.msg }

// SyntaxError reports a malformed program. The message carries the
// source position when one was available.
type SyntaxError struct {
	msg string
}

func (e *SyntaxError) Error() string { return e.msg }

// RuntimeError reports a failure while the program was executing.
type RuntimeError struct {
	msg string
}

func (e *RuntimeError) Error() string { return e.msg }

// NewLexer builds a LexerError
func NewLexer(format string, args ...interface{}) error {
	return &LexerError{msg: fmt.Sprintf(format, args...)}
}

// NewSyntax builds a SyntaxError
func NewSyntax(format string, args ...interface{}) error {
	return &SyntaxError{msg: fmt.Sprintf(format, args...)}
}

// NewRuntime builds a RuntimeError
func NewRuntime(format string, args ...interface{}) error {
	return &RuntimeError{msg: fmt.Sprintf(format, args...)}
}

// Prefix returns the report prefix for an error's kind.
func Prefix(err error) string {
	switch err.(type) {
	case *LexerError:
		return "Lexer error"
	case *SyntaxError:
		return "Syntax error"
	case *RuntimeError:
		return "Runtime error"
	}
	return "Internal error"
}
