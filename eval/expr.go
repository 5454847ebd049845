package eval

import (
	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/env"
	"github.com/Saliba-codes/GadySH/errtypes"
	"github.com/Saliba-codes/GadySH/function"
	"github.com/Saliba-codes/GadySH/value"
)

// eval evaluates one expression in frame en.
func (e *Evaluator) eval(expr ast.Expr, en *env.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return value.NewInt(n.Value), nil
	case *ast.FloatLiteral:
		return value.NewFloat(n.Value), nil
	case *ast.StringLiteral:
		return value.NewString(n.Value), nil
	case *ast.BoolLiteral:
		return value.BoolOf(n.Value), nil
	case *ast.NullLiteral:
		return value.NullValue, nil

	case *ast.Identifier:
		v, ok := en.Get(n.Name)
		if !ok {
			return nil, errtypes.NewRuntimeError(n.Pos(), "undefined variable '%s'", n.Name)
		}
		return v, nil

	case *ast.UnaryExpr:
		operand, err := e.eval(n.Operand, en)
		if err != nil {
			return nil, err
		}
		if n.Op == "!" {
			return value.BoolOf(!value.IsTruthy(operand)), nil
		}
		return negate(n.Pos(), operand)

	case *ast.BinaryExpr:
		left, err := e.eval(n.Left, en)
		if err != nil {
			return nil, err
		}
		// Short-circuit operators must not evaluate the right operand
		// unconditionally, and return the deciding operand unchanged
		// rather than coercing it to Bool.
		if n.Op == "&&" {
			if !value.IsTruthy(left) {
				return left, nil
			}
			return e.eval(n.Right, en)
		}
		if n.Op == "||" {
			if value.IsTruthy(left) {
				return left, nil
			}
			return e.eval(n.Right, en)
		}
		right, err := e.eval(n.Right, en)
		if err != nil {
			return nil, err
		}
		return binaryOp(n.Pos(), n.Op, left, right)

	case *ast.AssignExpr:
		v, err := e.eval(n.Value, en)
		if err != nil {
			return nil, err
		}
		if err := e.assign(n.Target, v, en); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		callee, err := e.eval(n.Callee, en)
		if err != nil {
			return nil, err
		}
		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := e.eval(a, en)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return call(n.Pos(), e, callee, args)

	case *ast.IndexExpr:
		container, err := e.eval(n.Container, en)
		if err != nil {
			return nil, err
		}
		index, err := e.eval(n.Index, en)
		if err != nil {
			return nil, err
		}
		return indexGet(n.Pos(), container, index)

	case *ast.AttrExpr:
		obj, err := e.eval(n.Object, en)
		if err != nil {
			return nil, err
		}
		return getAttr(n.Pos(), obj, n.Name)

	case *ast.ListLiteral:
		elements := make([]value.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.eval(el, en)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return value.NewList(elements), nil

	case *ast.MapLiteral:
		m := value.NewMap()
		for _, entry := range n.Entries {
			k, err := e.eval(entry.Key, en)
			if err != nil {
				return nil, err
			}
			v, err := e.eval(entry.Value, en)
			if err != nil {
				return nil, err
			}
			if err := m.Set(k, v); err != nil {
				return nil, errtypes.NewRuntimeError(n.Pos(), "%s", err.Error())
			}
		}
		return m, nil

	case *ast.FnExpr:
		return function.New("<anon>", n.Params, n.ReturnType, n.Body, en), nil

	default:
		panic("eval: unhandled expression type")
	}
}
