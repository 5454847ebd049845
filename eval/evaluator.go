// Package eval is the tree-walking evaluator: it owns the global
// environment, the three host intrinsics, the stdlib bootstrap, and every
// statement/expression dispatch rule. It is the only package in this
// module that is allowed to hold domain semantics — everything upstream
// (lexer, ast, parser) is pure data transformation.
package eval

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/env"
	"github.com/Saliba-codes/GadySH/errtypes"
	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/parser"
	"github.com/Saliba-codes/GadySH/value"
)

// Evaluator owns the global frame and the output sink every print writes
// to. It is not safe for concurrent use — gs is single-threaded by design
// (SPEC_FULL.md §5).
type Evaluator struct {
	Globals *env.Environment
	Out     io.Writer
}

// New constructs an Evaluator with the three intrinsics installed in its
// global frame. It does not load the stdlib — call LoadStdlib separately,
// since stdlib resolution needs a filesystem path the caller controls.
func New(out io.Writer) *Evaluator {
	e := &Evaluator{Globals: env.New(nil), Out: out}
	e.installIntrinsics()
	return e
}

// installIntrinsics binds the closed set of three host natives:
// __intrinsic_print, __intrinsic_typeof, __intrinsic_len. This set never
// grows — every other host-side capability belongs in the ambient driver
// layer, not in the global frame.
func (e *Evaluator) installIntrinsics() {
	define := func(name string, arity int, fn func(args []value.Value) (value.Value, error)) {
		nf := &value.NativeFunction{Name: name, Arity: arity, Fn: fn}
		_ = e.Globals.Define(name, nf, "")
	}

	define("__intrinsic_print", 1, func(args []value.Value) (value.Value, error) {
		fmt.Fprintln(e.Out, args[0].Display())
		return value.NullValue, nil
	})

	define("__intrinsic_typeof", 1, func(args []value.Value) (value.Value, error) {
		return value.NewString(args[0].TypeTag()), nil
	})

	define("__intrinsic_len", 1, func(args []value.Value) (value.Value, error) {
		switch v := args[0].(type) {
		case *value.String:
			return value.NewInt(int64(len(v.Value))), nil
		case *value.List:
			return value.NewInt(int64(len(v.Elements))), nil
		case *value.Map:
			return value.NewInt(int64(v.Len())), nil
		default:
			return nil, fmt.Errorf("__intrinsic_len expects String, List, or Map")
		}
	})
}

// DefaultStdlibPath resolves stdlib/std.gs relative to the running
// interpreter binary, following gs's filesystem contract (SPEC_FULL.md
// §6). It falls back to a path relative to the current working directory
// when the binary's own directory doesn't have one, so `go test` and
// `go run` (which build to a temp dir) still find the repo's copy during
// development.
func DefaultStdlibPath() string {
	const rel = "stdlib/std.gs"
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return rel
}

// LoadStdlib reads, lexes, parses, and runs the gs source at path in this
// same Evaluator instance (so it can call the three intrinsics), and binds
// its final Map value globally as `std`. A missing file, a lex/parse
// failure, or a non-Map result is a fatal startup error, per spec.
func (e *Evaluator) LoadStdlib(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing stdlib file: %s", path)
	}

	toks, err := lexer.Tokenize(string(src))
	if err != nil {
		return fmt.Errorf("stdlib lex error: %w", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return fmt.Errorf("stdlib parse error: %w", err)
	}

	result, err := e.Run(prog)
	if err != nil {
		return fmt.Errorf("stdlib runtime error: %w", err)
	}

	m, ok := result.(*value.Map)
	if !ok {
		return fmt.Errorf("stdlib/std.gs must evaluate to a Map (the std module), got %s", result.TypeTag())
	}

	if err := e.Globals.Define("std", m, ""); err != nil {
		return err
	}
	return nil
}

// Run executes every top-level statement in program against the global
// frame and returns the value of the last one (null for an empty
// program). A bare top-level `return` is ill-formed: its returnSignal
// surfaces here as an ordinary error, since nothing above Run catches it.
func (e *Evaluator) Run(program *ast.Program) (value.Value, error) {
	last := value.Value(value.NullValue)
	for _, stmt := range program.Statements {
		v, err := e.exec(stmt, e.Globals)
		if err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return nil, errtypes.NewRuntimeError(rs.at, "'return' outside of a function call")
			}
			return nil, err
		}
		last = v
	}
	return last, nil
}
