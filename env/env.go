// Package env implements the gs environment chain: a parent-linked frame
// carrying a current-value and declared-type mapping per identifier name.
// Consts/LetVars/LetTypes are collapsed into one Types map (gs has a
// single declaration kind, `let`) and Copy() is dropped entirely —
// closures capture a frame by pointer, never by copy (see
// function.Function and DESIGN.md).
package env

import "github.com/Saliba-codes/GadySH/value"

// Environment is one frame in the chain. The global frame has a nil
// Parent. Frames are plain pointers: Go's garbage collector keeps a frame
// alive for as long as any closure or child frame references it, so there
// is no need for explicit reference counting here.
type Environment struct {
	values map[string]value.Value
	types  map[string]string
	Parent *Environment
}

// New creates a fresh, empty frame parented on parent (nil for the global
// frame).
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]value.Value),
		types:  make(map[string]string),
		Parent: parent,
	}
}

// DeclError reports redeclaring a let-bound name in the same frame — the
// explicit behavior SPEC_FULL.md's third Open Question asks for.
type DeclError struct {
	Name string
}

func (e *DeclError) Error() string {
	return "variable '" + e.Name + "' already declared in this scope"
}

// Define binds name to v with declared type typ ("" means unannotated) in
// this frame. Defining a name already present in this exact frame returns
// a *DeclError (the evaluator reports it as a RuntimeError) — redeclaration
// in an enclosing frame is shadowing, which is allowed.
func (e *Environment) Define(name string, v value.Value, typ string) error {
	if _, exists := e.values[name]; exists {
		return &DeclError{Name: name}
	}
	e.values[name] = v
	e.types[name] = typ
	return nil
}

// DefineFunction binds a named function declaration. Unlike Define, it
// never fails on redeclaration: spec.md's open question only asks that
// variable redeclaration be rejected, and the reference implementation
// does not enforce anything stronger for function declarations either.
func (e *Environment) DefineFunction(name string, v value.Value) {
	e.values[name] = v
	e.types[name] = ""
}

// Get walks the parent chain looking for name, returning the frame it was
// found in along with the value.
func (e *Environment) Get(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.Parent {
		if v, ok := frame.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DeclaredType returns the declared-type string recorded for name in
// whichever frame it was defined, and whether name resolves at all.
func (e *Environment) DeclaredType(name string) (string, bool) {
	for frame := e; frame != nil; frame = frame.Parent {
		if _, ok := frame.values[name]; ok {
			return frame.types[name], true
		}
	}
	return "", false
}

// Assign mutates the innermost frame already containing name. It reports
// whether name was found anywhere in the chain; the caller is responsible
// for turning "not found" into a RuntimeError, since env has no error
// vocabulary of its own beyond DeclError.
func (e *Environment) Assign(name string, v value.Value) bool {
	for frame := e; frame != nil; frame = frame.Parent {
		if _, ok := frame.values[name]; ok {
			frame.values[name] = v
			return true
		}
	}
	return false
}
