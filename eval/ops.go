package eval

import (
	"fmt"
	"strings"

	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/env"
	"github.com/Saliba-codes/GadySH/errtypes"
	"github.com/Saliba-codes/GadySH/function"
	"github.com/Saliba-codes/GadySH/lexer"
	"github.com/Saliba-codes/GadySH/value"
)

// baseType strips a gradual-type annotation down to its base tag: the
// prefix before the first '[', so "List[Int]" enforces as "List" and
// "Map[String,Any]" enforces as "Map". An annotation with no '[' is
// already its own base type.
func baseType(annotation string) string {
	if i := strings.IndexByte(annotation, '['); i >= 0 {
		return annotation[:i]
	}
	return annotation
}

// enforceType checks that v's runtime tag matches the base of annotation,
// raising the exact TypeError message the rest of the pack expects. An
// empty annotation or a base of "Any" disables enforcement entirely, per
// the gradual-typing law: only the base tag is ever checked, never any
// bracketed parameters.
func enforceType(at lexer.Position, where, annotation string, v value.Value) error {
	if annotation == "" {
		return nil
	}
	base := baseType(annotation)
	if base == "Any" {
		return nil
	}
	if v.TypeTag() != base {
		return errtypes.NewTypeError(at, where, annotation, v.TypeTag())
	}
	return nil
}

// numeric coerces an Int or Float value down to a float64 payload, whether
// it was numeric at all, and whether it was an Int, for binaryOp's
// arithmetic rules.
func numeric(v value.Value) (f float64, ok bool, isInt bool) {
	switch t := v.(type) {
	case *value.Int:
		return float64(t.Value), true, true
	case *value.Float:
		return t.Value, true, false
	default:
		return 0, false, false
	}
}

// binaryOp evaluates every non-short-circuit binary operator: arithmetic,
// comparison, and equality. (&& and || are handled in expr.go directly,
// since they must not evaluate their right operand unconditionally.)
func binaryOp(at lexer.Position, op string, l, r value.Value) (value.Value, error) {
	switch op {
	case "+":
		if ls, ok := l.(*value.String); ok {
			if rs, ok := r.(*value.String); ok {
				return value.NewString(ls.Value + rs.Value), nil
			}
		}
		return arith(at, op, l, r)
	case "-", "*":
		return arith(at, op, l, r)
	case "/":
		lf, lok, _ := numeric(l)
		rf, rok, _ := numeric(r)
		if !lok || !rok {
			return nil, errtypes.NewRuntimeError(at, "unsupported operand types for /: '%s' and '%s'", l.TypeTag(), r.TypeTag())
		}
		if rf == 0 {
			return nil, errtypes.NewRuntimeError(at, "division by zero")
		}
		return value.NewFloat(lf / rf), nil
	case "%":
		li, ok1 := l.(*value.Int)
		ri, ok2 := r.(*value.Int)
		if !ok1 || !ok2 {
			return nil, errtypes.NewRuntimeError(at, "'%%' requires Int operands, got '%s' and '%s'", l.TypeTag(), r.TypeTag())
		}
		if ri.Value == 0 {
			return nil, errtypes.NewRuntimeError(at, "modulo by zero")
		}
		return value.NewInt(li.Value % ri.Value), nil
	case "==":
		return value.BoolOf(equals(l, r)), nil
	case "!=":
		return value.BoolOf(!equals(l, r)), nil
	case "<", "<=", ">", ">=":
		lf, lok, _ := numeric(l)
		rf, rok, _ := numeric(r)
		if !lok || !rok {
			return nil, errtypes.NewRuntimeError(at, "unsupported operand types for '%s': '%s' and '%s'", op, l.TypeTag(), r.TypeTag())
		}
		switch op {
		case "<":
			return value.BoolOf(lf < rf), nil
		case "<=":
			return value.BoolOf(lf <= rf), nil
		case ">":
			return value.BoolOf(lf > rf), nil
		default:
			return value.BoolOf(lf >= rf), nil
		}
	}
	return nil, errtypes.NewRuntimeError(at, "unknown operator '%s'", op)
}

func arith(at lexer.Position, op string, l, r value.Value) (value.Value, error) {
	lf, lok, lInt := numeric(l)
	rf, rok, rInt := numeric(r)
	if !lok || !rok {
		return nil, errtypes.NewRuntimeError(at, "unsupported operand types for '%s': '%s' and '%s'", op, l.TypeTag(), r.TypeTag())
	}
	if lInt && rInt {
		li, ri := l.(*value.Int).Value, r.(*value.Int).Value
		switch op {
		case "+":
			return value.NewInt(li + ri), nil
		case "-":
			return value.NewInt(li - ri), nil
		case "*":
			return value.NewInt(li * ri), nil
		}
	}
	var result float64
	switch op {
	case "+":
		result = lf + rf
	case "-":
		result = lf - rf
	case "*":
		result = lf * rf
	}
	return value.NewFloat(result), nil
}

// equals implements the numeric law (Int and Float compare equal by
// value) alongside ordinary same-type structural equality. List/Map/
// Function compare by identity, since they're heap handles.
func equals(l, r value.Value) bool {
	if lf, lok, _ := numeric(l); lok {
		if rf, rok, _ := numeric(r); rok {
			return lf == rf
		}
		return false
	}
	switch lt := l.(type) {
	case *value.Null:
		_, ok := r.(*value.Null)
		return ok
	case *value.Bool:
		rt, ok := r.(*value.Bool)
		return ok && lt.Value == rt.Value
	case *value.String:
		rt, ok := r.(*value.String)
		return ok && lt.Value == rt.Value
	case *value.List:
		rt, ok := r.(*value.List)
		return ok && lt == rt
	case *value.Map:
		rt, ok := r.(*value.Map)
		return ok && lt == rt
	case *function.Function:
		rt, ok := r.(*function.Function)
		return ok && lt == rt
	case *value.NativeFunction:
		rt, ok := r.(*value.NativeFunction)
		return ok && lt == rt
	default:
		return false
	}
}

// negate implements unary '-': numeric negation only.
func negate(at lexer.Position, v value.Value) (value.Value, error) {
	switch t := v.(type) {
	case *value.Int:
		return value.NewInt(-t.Value), nil
	case *value.Float:
		return value.NewFloat(-t.Value), nil
	default:
		return nil, errtypes.NewRuntimeError(at, "bad operand type for unary '-': '%s'", v.TypeTag())
	}
}

// indexGet implements `container[index]`: indexing is only meaningful on
// List and Map (no String indexing — spec.md's index rules name only
// these two). On a List the index must be Int; an out-of-range index
// (negative or >= length) returns null rather than erroring, matching the
// read/write asymmetry called out in spec.md §4.3 and §8. On a Map any
// primitive key is allowed and a missing key likewise returns null.
func indexGet(at lexer.Position, container, index value.Value) (value.Value, error) {
	switch c := container.(type) {
	case *value.List:
		i, ok := index.(*value.Int)
		if !ok {
			return nil, errtypes.NewRuntimeError(at, "List index must be Int")
		}
		if i.Value < 0 || int(i.Value) >= len(c.Elements) {
			return value.NullValue, nil
		}
		return c.Elements[i.Value], nil
	case *value.Map:
		return c.Get(index)
	default:
		return nil, errtypes.NewRuntimeError(at, "Indexing is only supported on List and Map")
	}
}

// indexSet implements `container[index] = value`. A List accepts Int
// indices from 0 up to and including its current length: writing exactly
// at the length appends, writing past it fails, and a negative index is
// rejected outright. A Map write always succeeds, inserting a new key if
// needed.
func indexSet(at lexer.Position, container, index, v value.Value) error {
	switch c := container.(type) {
	case *value.List:
		i, ok := index.(*value.Int)
		if !ok {
			return errtypes.NewRuntimeError(at, "List index must be Int")
		}
		if i.Value < 0 {
			return errtypes.NewRuntimeError(at, "Negative list index not supported")
		}
		n := int64(len(c.Elements))
		switch {
		case i.Value > n:
			return errtypes.NewRuntimeError(at, "List assignment index out of range")
		case i.Value == n:
			c.Elements = append(c.Elements, v)
		default:
			c.Elements[i.Value] = v
		}
		return nil
	case *value.Map:
		return c.Set(index, v)
	default:
		return errtypes.NewRuntimeError(at, "Index assignment is only supported on List and Map")
	}
}

// getAttr implements `obj.name`, sugar for obj["name"] restricted to Map
// receivers — attribute access on anything else is a RuntimeError, not a
// silent null.
func getAttr(at lexer.Position, obj value.Value, name string) (value.Value, error) {
	m, ok := obj.(*value.Map)
	if !ok {
		return nil, errtypes.NewRuntimeError(at, "'%s' has no attribute '%s'", obj.TypeTag(), name)
	}
	return m.Get(value.NewString(name))
}

// call invokes callee with args. A Function call opens a fresh frame
// parented on the function's captured Closure — never on the caller's
// environment — so that the closure law (capture by reference to the
// defining frame) holds regardless of where the function is called from.
func call(at lexer.Position, e *Evaluator, callee value.Value, args []value.Value) (value.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != len(fn.Params) {
			return nil, errtypes.NewRuntimeError(at, "%s expects %d args, got %d", fn.Name, len(fn.Params), len(args))
		}
		// Two nested frames, matching the reference evaluator exactly: the
		// parameter frame is parented on the captured closure, and the
		// body executes in its own child of that — so a body-level `let`
		// that happens to share a parameter's name shadows it instead of
		// colliding with Define's redeclaration check.
		paramFrame := env.New(fn.Closure)
		for i, p := range fn.Params {
			where := fmt.Sprintf("argument '%s' of %s()", p.Name, fn.Name)
			if err := enforceType(at, where, p.Type, args[i]); err != nil {
				return nil, err
			}
			if err := paramFrame.Define(p.Name, args[i], p.Type); err != nil {
				return nil, err
			}
		}
		bodyFrame := env.New(paramFrame)
		returnWhere := fmt.Sprintf("return of %s()", fn.Name)
		_, err := e.execBlock(fn.Body, bodyFrame)
		if err != nil {
			if rs, ok := err.(*returnSignal); ok {
				if err := enforceType(at, returnWhere, fn.ReturnType, rs.Value); err != nil {
					return nil, err
				}
				return rs.Value, nil
			}
			return nil, err
		}
		// No return signal was raised: the call's value is null,
		// regardless of the body's last statement.
		if err := enforceType(at, returnWhere, fn.ReturnType, value.NullValue); err != nil {
			return nil, err
		}
		return value.NullValue, nil
	case *value.NativeFunction:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, errtypes.NewRuntimeError(at, "%s expects %d args, got %d", fn.Name, fn.Arity, len(args))
		}
		v, err := fn.Fn(args)
		if err != nil {
			return nil, errtypes.NewRuntimeError(at, "%s", err.Error())
		}
		return v, nil
	default:
		return nil, errtypes.NewRuntimeError(at, "'%s' is not callable", callee.TypeTag())
	}
}

// assign implements both `ident = value` and `target[index] = value`,
// matching the parser's AssignExpr target restriction (ast.Identifier or
// ast.IndexExpr only).
func (e *Evaluator) assign(target ast.Expr, v value.Value, en *env.Environment) error {
	switch t := target.(type) {
	case *ast.Identifier:
		declared, _ := en.DeclaredType(t.Name)
		if err := enforceType(t.Pos(), "assignment to '"+t.Name+"'", declared, v); err != nil {
			return err
		}
		if !en.Assign(t.Name, v) {
			return errtypes.NewRuntimeError(t.Pos(), "undefined variable '%s'", t.Name)
		}
		return nil
	case *ast.IndexExpr:
		container, err := e.eval(t.Container, en)
		if err != nil {
			return err
		}
		index, err := e.eval(t.Index, en)
		if err != nil {
			return err
		}
		return indexSet(t.Pos(), container, index, v)
	default:
		return errtypes.NewRuntimeError(target.Pos(), "invalid assignment target")
	}
}
