package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// Pattern is a binding target: an Identifier, or one of the destructuring
// pattern variants below (§6 "BindingPattern variants (array, object,
// rest, assignment)").
type Pattern interface {
	Node
	patternNode()
}

func (i *Identifier) patternNode() {}

// ArrayPatternElement is one slot of an ArrayPattern: a hole (Target ==
// nil), a plain binding, or a binding with a default.
type ArrayPatternElement struct {
	Target  Pattern
	Default Expression // non-nil for `[a = 1] = ...`
	Rest    bool        // true for the trailing `...rest` element
}

// ArrayPattern destructures an iterable: `[a, b, ...rest]`.
type ArrayPattern struct {
	Range    source.Range
	Elements []*ArrayPatternElement
}

func (a *ArrayPattern) expressionNode()   {}
func (a *ArrayPattern) patternNode()      {}
func (a *ArrayPattern) Pos() source.Range { return a.Range }
func (a *ArrayPattern) String() string    { return "[...]" }

// ObjectPatternProperty is one property of an ObjectPattern.
type ObjectPatternProperty struct {
	Key      Expression // Identifier or computed Expression
	Computed bool
	Value    Pattern
	Default  Expression
	Shorthand bool
}

// ObjectPattern destructures an object: `{ a, b: c, ...rest }`.
type ObjectPattern struct {
	Range      source.Range
	Properties []*ObjectPatternProperty
	Rest       *Identifier // non-nil for a trailing `...rest`
}

func (o *ObjectPattern) expressionNode()   {}
func (o *ObjectPattern) patternNode()      {}
func (o *ObjectPattern) Pos() source.Range { return o.Range }
func (o *ObjectPattern) String() string    { return "{...}" }

// AssignmentPattern is a binding with a default value, `x = defaultExpr`,
// used as a parameter or as a destructuring element/property.
type AssignmentPattern struct {
	Range   source.Range
	Target  Pattern
	Default Expression
}

func (a *AssignmentPattern) expressionNode()   {}
func (a *AssignmentPattern) patternNode()      {}
func (a *AssignmentPattern) Pos() source.Range { return a.Range }
func (a *AssignmentPattern) String() string    { return a.Target.String() + " = ..." }

// RestElement wraps a pattern as a function parameter's trailing
// `...rest` parameter.
type RestElement struct {
	Range  source.Range
	Target Pattern
}

func (r *RestElement) expressionNode()   {}
func (r *RestElement) patternNode()      {}
func (r *RestElement) Pos() source.Range { return r.Range }
func (r *RestElement) String() string    { return "..." + r.Target.String() }
