package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// MethodKind distinguishes ordinary methods from accessors and the
// constructor within a ClassBody.
type MethodKind uint8

const (
	MethodOrdinary MethodKind = iota
	MethodGet
	MethodSet
	MethodConstructor
)

// MethodDefinition is one method, getter, setter, or constructor in a
// class body.
type MethodDefinition struct {
	Range    source.Range
	Key      Expression // Identifier, PrivateIdentifier, or computed Expression
	Computed bool
	Kind     MethodKind
	Static   bool
	Value    *FunctionExpression
}

// FieldDefinition is a class field, `[static] name [= init];`, including
// private fields (`#name`).
type FieldDefinition struct {
	Range    source.Range
	Key      Expression
	Computed bool
	Static   bool
	Value    Expression // nil when uninitialized
}

// StaticBlock is a `static { ... }` class initialization block.
type StaticBlock struct {
	Range source.Range
	Body  *BlockStatement
}

// ClassBody holds a class's ordered members.
type ClassBody struct {
	Methods      []*MethodDefinition
	Fields       []*FieldDefinition
	StaticBlocks []*StaticBlock
}

// ClassDeclaration is `class Name extends Super { ... }` (Name required;
// the checker must still bind it so it participates in hoisting of the
// lexical — but TDZ'd — binding per §4.4).
type ClassDeclaration struct {
	Range      source.Range
	Name       *Identifier
	SuperClass Expression // nil when there is no `extends` clause
	Body       *ClassBody
}

func (c *ClassDeclaration) statementNode()   {}
func (c *ClassDeclaration) Pos() source.Range { return c.Range }
func (c *ClassDeclaration) String() string    { return "class " + c.Name.String() }

// ClassExpression is a class in expression position; Name may be nil.
type ClassExpression struct {
	Range      source.Range
	Name       *Identifier
	SuperClass Expression
	Body       *ClassBody
}

func (c *ClassExpression) expressionNode()   {}
func (c *ClassExpression) Pos() source.Range { return c.Range }
func (c *ClassExpression) String() string {
	if c.Name != nil {
		return "class " + c.Name.String()
	}
	return "class"
}
