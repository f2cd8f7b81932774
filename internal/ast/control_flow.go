package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// IfStatement is `if (test) consequent else alternate`.
type IfStatement struct {
	Range       source.Range
	Test        Expression
	Consequent  Statement
	Alternate   Statement // nil when there is no else branch
}

func (i *IfStatement) statementNode()   {}
func (i *IfStatement) Pos() source.Range { return i.Range }
func (i *IfStatement) String() string    { return "if (...) ..." }

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Range source.Range
	Test  Expression
	Body  Statement
}

func (w *WhileStatement) statementNode()   {}
func (w *WhileStatement) Pos() source.Range { return w.Range }
func (w *WhileStatement) String() string    { return "while (...) ..." }

// DoWhileStatement is `do body while (test);`.
type DoWhileStatement struct {
	Range source.Range
	Body  Statement
	Test  Expression
}

func (d *DoWhileStatement) statementNode()   {}
func (d *DoWhileStatement) Pos() source.Range { return d.Range }
func (d *DoWhileStatement) String() string    { return "do ... while (...)" }

// ForStatement is the classic C-style `for (init; test; update) body`.
// Init may be nil, a VariableDeclaration, or an Expression.
type ForStatement struct {
	Range  source.Range
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode()   {}
func (f *ForStatement) Pos() source.Range { return f.Range }
func (f *ForStatement) String() string    { return "for (...;...;...) ..." }

// ForInStatement is `for (left in right) body`, iterating enumerable
// string keys of right (prototype chain included, per ordinary
// [[OwnPropertyKeys]] + proto walk).
type ForInStatement struct {
	Range source.Range
	Left  Node // VariableDeclaration (single declarator) or assignment target
	Right Expression
	Body  Statement
}

func (f *ForInStatement) statementNode()   {}
func (f *ForInStatement) Pos() source.Range { return f.Range }
func (f *ForInStatement) String() string    { return "for (... in ...) ..." }

// ForOfStatement is `for (left of right) body`, driving the iterator
// protocol (§4.5, §5).
type ForOfStatement struct {
	Range source.Range
	Left  Node
	Right Expression
	Body  Statement
	Await bool // `for await (...)` in an async function
}

func (f *ForOfStatement) statementNode()   {}
func (f *ForOfStatement) Pos() source.Range { return f.Range }
func (f *ForOfStatement) String() string    { return "for (... of ...) ..." }

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	Range source.Range
	Label *Identifier // nil for unlabeled break
}

func (b *BreakStatement) statementNode()   {}
func (b *BreakStatement) Pos() source.Range { return b.Range }
func (b *BreakStatement) String() string    { return "break;" }

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	Range source.Range
	Label *Identifier
}

func (c *ContinueStatement) statementNode()   {}
func (c *ContinueStatement) Pos() source.Range { return c.Range }
func (c *ContinueStatement) String() string    { return "continue;" }

// LabeledStatement is `label: statement`.
type LabeledStatement struct {
	Range source.Range
	Label *Identifier
	Body  Statement
}

func (l *LabeledStatement) statementNode()   {}
func (l *LabeledStatement) Pos() source.Range { return l.Range }
func (l *LabeledStatement) String() string    { return l.Label.String() + ": ..." }

// SwitchCase is one `case test:`/`default:` clause.
type SwitchCase struct {
	Range      source.Range
	Test       Expression // nil for `default:`
	Consequent []Statement
}

// SwitchStatement is `switch (disc) { case ...: ... }`.
type SwitchStatement struct {
	Range        source.Range
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStatement) statementNode()   {}
func (s *SwitchStatement) Pos() source.Range { return s.Range }
func (s *SwitchStatement) String() string    { return "switch (...) {...}" }

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Range    source.Range
	Argument Expression
}

func (t *ThrowStatement) statementNode()   {}
func (t *ThrowStatement) Pos() source.Range { return t.Range }
func (t *ThrowStatement) String() string    { return "throw ...;" }

// CatchClause is the `catch (param) { body }` part of a TryStatement;
// Param may be nil for a parameterless catch.
type CatchClause struct {
	Range source.Range
	Param Pattern
	Body  *BlockStatement
}

// TryStatement is `try { } catch (e) { } finally { }`. At least one of
// Handler/Finalizer is present (§4.5 completion propagation).
type TryStatement struct {
	Range     source.Range
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (t *TryStatement) statementNode()   {}
func (t *TryStatement) Pos() source.Range { return t.Range }
func (t *TryStatement) String() string    { return "try {...}" }
