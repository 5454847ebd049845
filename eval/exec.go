package eval

import (
	"github.com/Saliba-codes/GadySH/ast"
	"github.com/Saliba-codes/GadySH/env"
	"github.com/Saliba-codes/GadySH/errtypes"
	"github.com/Saliba-codes/GadySH/function"
	"github.com/Saliba-codes/GadySH/value"
)

// exec executes one statement in frame en, returning the statement's value
// (used only so Run can report a program's final value — function
// declarations and while loops return null). A *returnSignal surfaces as
// an ordinary error and must be propagated by every caller unexamined.
func (e *Evaluator) exec(stmt ast.Stmt, en *env.Environment) (value.Value, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return e.eval(s.Expr, en)

	case *ast.VarDecl:
		var v value.Value = value.NullValue
		if s.Init != nil {
			var err error
			v, err = e.eval(s.Init, en)
			if err != nil {
				return nil, err
			}
		}
		if err := enforceType(s.Pos(), "variable '"+s.Name+"'", s.Type, v); err != nil {
			return nil, err
		}
		if err := en.Define(s.Name, v, s.Type); err != nil {
			return nil, errtypes.NewRuntimeError(s.Pos(), "%s", err.Error())
		}
		return v, nil

	case *ast.FnDecl:
		fn := function.New(s.Name, s.Params, s.ReturnType, s.Body, en)
		en.DefineFunction(s.Name, fn)
		return value.NullValue, nil

	case *ast.Block:
		return e.execBlock(s, env.New(en))

	case *ast.IfStmt:
		cond, err := e.eval(s.Cond, en)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(cond) {
			return e.exec(s.Then, en)
		}
		if s.Else != nil {
			return e.exec(s.Else, en)
		}
		return value.NullValue, nil

	case *ast.WhileStmt:
		for {
			cond, err := e.eval(s.Cond, en)
			if err != nil {
				return nil, err
			}
			if !value.IsTruthy(cond) {
				break
			}
			if _, err := e.exec(s.Body, en); err != nil {
				return nil, err
			}
		}
		return value.NullValue, nil

	case *ast.ReturnStmt:
		var v value.Value = value.NullValue
		if s.Value != nil {
			var err error
			v, err = e.eval(s.Value, en)
			if err != nil {
				return nil, err
			}
		}
		return nil, &returnSignal{Value: v, at: s.Pos()}

	default:
		panic("eval: unhandled statement type")
	}
}

// execBlock runs every statement of block in frame en (a fresh child frame
// the caller already opened) and returns the value of the last statement.
func (e *Evaluator) execBlock(block *ast.Block, en *env.Environment) (value.Value, error) {
	last := value.Value(value.NullValue)
	for _, stmt := range block.Statements {
		v, err := e.exec(stmt, en)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}
