package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// NumberLiteral is an IEEE-754 double literal (§3, §4.1).
type NumberLiteral struct {
	Range source.Range
	Value float64
	Raw   string
}

func (n *NumberLiteral) expressionNode()   {}
func (n *NumberLiteral) Pos() source.Range { return n.Range }
func (n *NumberLiteral) String() string    { return n.Raw }

// BigIntLiteral is an arbitrary-precision integer literal (`123n`).
type BigIntLiteral struct {
	Range source.Range
	Raw   string // digits, without trailing 'n'
}

func (b *BigIntLiteral) expressionNode()   {}
func (b *BigIntLiteral) Pos() source.Range { return b.Range }
func (b *BigIntLiteral) String() string    { return b.Raw + "n" }

// StringLiteral is a single- or double-quoted string literal.
type StringLiteral struct {
	Range source.Range
	Value string // already unescaped by the external lexer
}

func (s *StringLiteral) expressionNode()   {}
func (s *StringLiteral) Pos() source.Range { return s.Range }
func (s *StringLiteral) String() string    { return "\"" + s.Value + "\"" }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Range source.Range
	Value bool
}

func (b *BooleanLiteral) expressionNode()   {}
func (b *BooleanLiteral) Pos() source.Range { return b.Range }
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is the `null` literal.
type NullLiteral struct{ Range source.Range }

func (n *NullLiteral) expressionNode()   {}
func (n *NullLiteral) Pos() source.Range { return n.Range }
func (n *NullLiteral) String() string    { return "null" }

// UndefinedLiteral models the `undefined` identifier as a literal node;
// the external parser may instead hand it over as a plain Identifier
// resolved against the global environment (both forms are legal input).
type UndefinedLiteral struct{ Range source.Range }

func (u *UndefinedLiteral) expressionNode()   {}
func (u *UndefinedLiteral) Pos() source.Range { return u.Range }
func (u *UndefinedLiteral) String() string    { return "undefined" }

// RegExpLiteral is a `/pattern/flags` literal (§4.3: RegExp is an opaque
// matcher behind the exposed contract; the core only carries pattern+flags
// through to the RegExp constructor).
type RegExpLiteral struct {
	Range   source.Range
	Pattern string
	Flags   string
}

func (r *RegExpLiteral) expressionNode()   {}
func (r *RegExpLiteral) Pos() source.Range { return r.Range }
func (r *RegExpLiteral) String() string    { return "/" + r.Pattern + "/" + r.Flags }

// TemplateElement is one literal chunk of a template literal.
type TemplateElement struct {
	Range  source.Range
	Cooked string
	Raw    string
	Tail   bool
}

// TemplateLiteral is a `` `...${expr}...` `` template string.
type TemplateLiteral struct {
	Range       source.Range
	Quasis      []*TemplateElement
	Expressions []Expression
}

func (t *TemplateLiteral) expressionNode()   {}
func (t *TemplateLiteral) Pos() source.Range { return t.Range }
func (t *TemplateLiteral) String() string    { return "`...`" }

// TaggedTemplateExpression is `` tag`...` ``.
type TaggedTemplateExpression struct {
	Range source.Range
	Tag   Expression
	Quasi *TemplateLiteral
}

func (t *TaggedTemplateExpression) expressionNode()   {}
func (t *TaggedTemplateExpression) Pos() source.Range { return t.Range }
func (t *TaggedTemplateExpression) String() string    { return t.Tag.String() + "`...`" }

// ArrayElement is one slot of an ArrayLiteral: either a normal element,
// a hole (elided element, Value == nil), or a spread.
type ArrayElement struct {
	Value  Expression // nil for an elided element (e.g. `[1, , 3]`)
	Spread bool
}

// ArrayLiteral is `[a, b, ...c]`.
type ArrayLiteral struct {
	Range    source.Range
	Elements []*ArrayElement
}

func (a *ArrayLiteral) expressionNode()   {}
func (a *ArrayLiteral) Pos() source.Range { return a.Range }
func (a *ArrayLiteral) String() string    { return "[...]" }

// PropertyKind distinguishes ordinary data properties from accessors and
// method shorthand within an object literal or class body.
type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
	PropertyMethod
	PropertySpread
)

// ObjectProperty is one member of an ObjectLiteral.
type ObjectProperty struct {
	Range     source.Range
	Key       Expression // Identifier, StringLiteral, NumberLiteral, or computed Expression
	Computed  bool
	Value     Expression
	Kind      PropertyKind
	Shorthand bool
}

// ObjectLiteral is `{ a: 1, [k]: 2, ...rest, m() {} }`.
type ObjectLiteral struct {
	Range      source.Range
	Properties []*ObjectProperty
}

func (o *ObjectLiteral) expressionNode()   {}
func (o *ObjectLiteral) Pos() source.Range { return o.Range }
func (o *ObjectLiteral) String() string    { return "{...}" }
