// Package ast defines the gs abstract syntax tree: a small closed set of
// expression and statement nodes, each able to render its own debug form
// for the --ast CLI mode. There is no visitor here — the grammar is small
// enough that a Node interface plus String() carries the whole tree walker
// in eval without the overhead of double dispatch.
package ast

import (
	"fmt"
	"strings"

	"github.com/Saliba-codes/GadySH/lexer"
)

// Node is anything that can appear in the tree and render itself.
type Node interface {
	String() string
	Pos() lexer.Position
}

// Expr is an expression node: it produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node: it is executed for effect (and, for the last
// statement of a program, for its value).
type Stmt interface {
	Node
	stmtNode()
}

// base carries the source position every node needs for runtime error
// messages, without repeating the field and its accessor on every type.
type base struct {
	at lexer.Position
}

func (b base) Pos() lexer.Position { return b.at }

// ---- Expressions ----

type IntLiteral struct {
	base
	Value int64
}

func (n *IntLiteral) exprNode()      {}
func (n *IntLiteral) String() string { return fmt.Sprintf("%d", n.Value) }

func NewIntLiteral(at lexer.Position, v int64) *IntLiteral {
	return &IntLiteral{base: base{at}, Value: v}
}

type FloatLiteral struct {
	base
	Value float64
}

func (n *FloatLiteral) exprNode()      {}
func (n *FloatLiteral) String() string { return fmt.Sprintf("%g", n.Value) }

func NewFloatLiteral(at lexer.Position, v float64) *FloatLiteral {
	return &FloatLiteral{base: base{at}, Value: v}
}

type StringLiteral struct {
	base
	Value string
}

func (n *StringLiteral) exprNode()      {}
func (n *StringLiteral) String() string { return fmt.Sprintf("%q", n.Value) }

func NewStringLiteral(at lexer.Position, v string) *StringLiteral {
	return &StringLiteral{base: base{at}, Value: v}
}

type BoolLiteral struct {
	base
	Value bool
}

func (n *BoolLiteral) exprNode()      {}
func (n *BoolLiteral) String() string { return fmt.Sprintf("%t", n.Value) }

func NewBoolLiteral(at lexer.Position, v bool) *BoolLiteral {
	return &BoolLiteral{base: base{at}, Value: v}
}

type NullLiteral struct{ base }

func (n *NullLiteral) exprNode()      {}
func (n *NullLiteral) String() string { return "null" }

func NewNullLiteral(at lexer.Position) *NullLiteral {
	return &NullLiteral{base: base{at}}
}

type Identifier struct {
	base
	Name string
}

func (n *Identifier) exprNode()      {}
func (n *Identifier) String() string { return n.Name }

func NewIdentifier(at lexer.Position, name string) *Identifier {
	return &Identifier{base: base{at}, Name: name}
}

type UnaryExpr struct {
	base
	Op      string // "!" or "-"
	Operand Expr
}

func (n *UnaryExpr) exprNode()      {}
func (n *UnaryExpr) String() string { return fmt.Sprintf("(%s%s)", n.Op, n.Operand) }

func NewUnaryExpr(at lexer.Position, op string, operand Expr) *UnaryExpr {
	return &UnaryExpr{base: base{at}, Op: op, Operand: operand}
}

type BinaryExpr struct {
	base
	Op    string
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) exprNode() {}
func (n *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func NewBinaryExpr(at lexer.Position, op string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{base: base{at}, Op: op, Left: left, Right: right}
}

// AssignExpr covers both `ident = value` and `target[index] = value`; the
// parser is responsible for rejecting any other LHS shape.
type AssignExpr struct {
	base
	Target Expr
	Value  Expr
}

func (n *AssignExpr) exprNode()      {}
func (n *AssignExpr) String() string { return fmt.Sprintf("(%s = %s)", n.Target, n.Value) }

func NewAssignExpr(at lexer.Position, target, value Expr) *AssignExpr {
	return &AssignExpr{base: base{at}, Target: target, Value: value}
}

type CallExpr struct {
	base
	Callee Expr
	Args   []Expr
}

func (n *CallExpr) exprNode() {}
func (n *CallExpr) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee, strings.Join(parts, ", "))
}

func NewCallExpr(at lexer.Position, callee Expr, args []Expr) *CallExpr {
	return &CallExpr{base: base{at}, Callee: callee, Args: args}
}

type IndexExpr struct {
	base
	Container Expr
	Index     Expr
}

func (n *IndexExpr) exprNode()      {}
func (n *IndexExpr) String() string { return fmt.Sprintf("%s[%s]", n.Container, n.Index) }

func NewIndexExpr(at lexer.Position, container, index Expr) *IndexExpr {
	return &IndexExpr{base: base{at}, Container: container, Index: index}
}

// AttrExpr is `obj.name`, meaningful only on maps at eval time; it is
// syntactic sugar equivalent to IndexExpr with a string-literal key.
type AttrExpr struct {
	base
	Object Expr
	Name   string
}

func (n *AttrExpr) exprNode()      {}
func (n *AttrExpr) String() string { return fmt.Sprintf("%s.%s", n.Object, n.Name) }

func NewAttrExpr(at lexer.Position, object Expr, name string) *AttrExpr {
	return &AttrExpr{base: base{at}, Object: object, Name: name}
}

type ListLiteral struct {
	base
	Elements []Expr
}

func (n *ListLiteral) exprNode() {}
func (n *ListLiteral) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func NewListLiteral(at lexer.Position, elements []Expr) *ListLiteral {
	return &ListLiteral{base: base{at}, Elements: elements}
}

type MapEntry struct {
	Key   Expr
	Value Expr
}

type MapLiteral struct {
	base
	Entries []MapEntry
}

func (n *MapLiteral) exprNode() {}
func (n *MapLiteral) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = fmt.Sprintf("%s: %s", e.Key, e.Value)
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func NewMapLiteral(at lexer.Position, entries []MapEntry) *MapLiteral {
	return &MapLiteral{base: base{at}, Entries: entries}
}

// Param is one function parameter: a name plus its optional, opaque type
// annotation string ("" means no annotation, enforcement disabled).
type Param struct {
	Name string
	Type string
}

// FnExpr is an anonymous function literal. A named function declaration
// (FnDecl) reuses this same shape plus a Name.
type FnExpr struct {
	base
	Params     []Param
	ReturnType string
	Body       *Block
}

func (n *FnExpr) exprNode() {}
func (n *FnExpr) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		if p.Type != "" {
			parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
		} else {
			parts[i] = p.Name
		}
	}
	ret := ""
	if n.ReturnType != "" {
		ret = ": " + n.ReturnType
	}
	return fmt.Sprintf("fn(%s)%s %s", strings.Join(parts, ", "), ret, n.Body)
}

func NewFnExpr(at lexer.Position, params []Param, returnType string, body *Block) *FnExpr {
	return &FnExpr{base: base{at}, Params: params, ReturnType: returnType, Body: body}
}

// ---- Statements ----

type ExprStmt struct {
	base
	Expr Expr
}

func (n *ExprStmt) stmtNode()      {}
func (n *ExprStmt) String() string { return n.Expr.String() + ";" }

func NewExprStmt(at lexer.Position, expr Expr) *ExprStmt {
	return &ExprStmt{base: base{at}, Expr: expr}
}

// VarDecl is `let name (: type)? (= init)? ;`.
type VarDecl struct {
	base
	Name string
	Type string // "" if unannotated
	Init Expr   // nil if absent
}

func (n *VarDecl) stmtNode() {}
func (n *VarDecl) String() string {
	s := "let " + n.Name
	if n.Type != "" {
		s += ": " + n.Type
	}
	if n.Init != nil {
		s += " = " + n.Init.String()
	}
	return s + ";"
}

func NewVarDecl(at lexer.Position, name, typ string, init Expr) *VarDecl {
	return &VarDecl{base: base{at}, Name: name, Type: typ, Init: init}
}

type Block struct {
	base
	Statements []Stmt
}

func (n *Block) stmtNode() {}
func (n *Block) String() string {
	parts := make([]string, len(n.Statements))
	for i, s := range n.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func NewBlock(at lexer.Position, stmts []Stmt) *Block {
	return &Block{base: base{at}, Statements: stmts}
}

type IfStmt struct {
	base
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (n *IfStmt) stmtNode() {}
func (n *IfStmt) String() string {
	s := fmt.Sprintf("if (%s) %s", n.Cond, n.Then)
	if n.Else != nil {
		s += " else " + n.Else.String()
	}
	return s
}

func NewIfStmt(at lexer.Position, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{base: base{at}, Cond: cond, Then: then, Else: els}
}

type WhileStmt struct {
	base
	Cond Expr
	Body Stmt
}

func (n *WhileStmt) stmtNode() {}
func (n *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", n.Cond, n.Body)
}

func NewWhileStmt(at lexer.Position, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: base{at}, Cond: cond, Body: body}
}

// ReturnStmt is `return expr? ;`. Value is nil when no expression follows.
type ReturnStmt struct {
	base
	Value Expr
}

func (n *ReturnStmt) stmtNode() {}
func (n *ReturnStmt) String() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.String() + ";"
}

func NewReturnStmt(at lexer.Position, value Expr) *ReturnStmt {
	return &ReturnStmt{base: base{at}, Value: value}
}

// FnDecl is a named function declaration; it binds Name in the current
// frame with no declared type, like `let Name = <FnExpr>`, except that an
// existing binding of Name in that frame is replaced rather than rejected.
type FnDecl struct {
	base
	Name       string
	Params     []Param
	ReturnType string
	Body       *Block
}

func (n *FnDecl) stmtNode() {}
func (n *FnDecl) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		if p.Type != "" {
			parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
		} else {
			parts[i] = p.Name
		}
	}
	ret := ""
	if n.ReturnType != "" {
		ret = ": " + n.ReturnType
	}
	return fmt.Sprintf("fn %s(%s)%s %s", n.Name, strings.Join(parts, ", "), ret, n.Body)
}

func NewFnDecl(at lexer.Position, name string, params []Param, returnType string, body *Block) *FnDecl {
	return &FnDecl{base: base{at}, Name: name, Params: params, ReturnType: returnType, Body: body}
}

// Program is the root of a parse: an ordered sequence of top-level
// statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}
