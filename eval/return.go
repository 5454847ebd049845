package eval

import (
	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/value"
)

// returnSignal is non-local control flow for `return`, threaded up through
// ordinary Go error returns rather than panic/recover. exec and execBlock
// propagate it unexamined; call() (the one place that knows it's inside a
// function body) catches it and converts it back into a plain value, and
// Run turns one that reaches the top level into a RuntimeError.
type returnSignal struct {
	Value value.Value
	at    lexer.Position
}

func (r *returnSignal) Error() string { return "return outside of function" }
