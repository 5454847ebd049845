// Package errtypes defines the two error kinds raised by the evaluator:
// RuntimeError and TypeError. (LexError and ParseError live next to the
// lexer and parser that raise them, in lexer.LexError and
// parser.ParseError — each error kind is defined where it's raised,
// following a per-package style rather than one grab-bag errors package.)
package errtypes

import (
	"fmt"

	"github.com/Saliba-codes/GadySH/lexer"
)

// RuntimeError is any arithmetic or structural violation the evaluator
// hits while walking the tree: division by zero, a bad operand type, an
// unresolved identifier, wrong call arity, an invalid runtime assignment
// target, an unhashable map key, bad attribute access.
type RuntimeError struct {
	Message string
	At      lexer.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%s] %s", e.At, e.Message)
}

// NewRuntimeError builds a RuntimeError with a formatted message, in the
// style of fmt.Errorf.
func NewRuntimeError(at lexer.Position, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), At: at}
}

// TypeError is a specialization of RuntimeError raised specifically by
// gradual-type enforcement. Embedding *RuntimeError (rather than just
// sharing a message format) means errors.As(err, &runtimeErr) matches a
// *TypeError too, the Go realization of "TypeError is a specialization of
// RuntimeError".
type TypeError struct {
	*RuntimeError
	Where    string
	Expected string
	Got      string
}

// NewTypeError builds a TypeError whose message matches the reference
// implementation's format exactly: "TypeError: <where>: Expected <type>,
// got <type>".
func NewTypeError(at lexer.Position, where, expected, got string) *TypeError {
	msg := fmt.Sprintf("TypeError: %s: Expected %s, got %s", where, expected, got)
	return &TypeError{
		RuntimeError: &RuntimeError{Message: msg, At: at},
		Where:        where,
		Expected:     expected,
		Got:          got,
	}
}
