// Package function holds the Function value type. It is kept separate
// from package value to break an import cycle: a Function captures an
// *env.Environment, and an Environment holds value.Values — if Function
// lived in package value, value and env would import each other.
package function

import (
	"fmt"

	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/env"
)

// Function is a user-defined function value: its declared shape plus the
// environment frame captured at the moment the `fn` expression or
// declaration was evaluated. Closure is a direct pointer, never a copy —
// reassigning a variable in Closure after capture must be visible on the
// next call (the closure law), which only holds if every call shares the
// same frame.
type Function struct {
	Name       string // "<anon>" for function expressions
	Params     []ast.Param
	ReturnType string
	Body       *ast.Block
	Closure    *env.Environment
}

func New(name string, params []ast.Param, returnType string, body *ast.Block, closure *env.Environment) *Function {
	return &Function{Name: name, Params: params, ReturnType: returnType, Body: body, Closure: closure}
}

func (f *Function) TypeTag() string { return "Function" }

func (f *Function) Display() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}
