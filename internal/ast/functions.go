package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// Param is one formal parameter: a bare binding, a binding with a
// default (AssignmentPattern), or a trailing RestElement.
type Param struct {
	Pattern Pattern
}

// FunctionDecl is a hoisted `function name(...) { ... }` declaration
// (§4.5 "Hoisting... function declarations create bindings initialized
// to the function object").
type FunctionDecl struct {
	Range     source.Range
	Name      *Identifier
	Params    []*Param
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (f *FunctionDecl) statementNode()    {}
func (f *FunctionDecl) Pos() source.Range { return f.Range }
func (f *FunctionDecl) String() string    { return "function " + f.Name.String() + "(...)" }

// FunctionExpression is `function (...) {...}` or `function name(...) {...}`
// in expression position.
type FunctionExpression struct {
	Range     source.Range
	Name      *Identifier // nil for anonymous
	Params    []*Param
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (f *FunctionExpression) expressionNode() {}
func (f *FunctionExpression) Pos() source.Range { return f.Range }
func (f *FunctionExpression) String() string    { return "function(...)" }

// ArrowFunctionExpression is `(...) => expr` or `(...) => { ... }`. Arrow
// functions have no own `this`/`arguments`/`super`/`new.target` binding
// and so are represented distinctly from FunctionExpression (§4.5).
type ArrowFunctionExpression struct {
	Range      source.Range
	Params     []*Param
	Body       Node // *BlockStatement or an Expression (concise body)
	ExprBody   bool
	Async      bool
}

func (a *ArrowFunctionExpression) expressionNode()   {}
func (a *ArrowFunctionExpression) Pos() source.Range { return a.Range }
func (a *ArrowFunctionExpression) String() string    { return "(...) => ..." }

// ReturnStatement is `return expr;` or bare `return;`.
type ReturnStatement struct {
	Range    source.Range
	Argument Expression // nil for bare return
}

func (r *ReturnStatement) statementNode()   {}
func (r *ReturnStatement) Pos() source.Range { return r.Range }
func (r *ReturnStatement) String() string    { return "return ...;" }
