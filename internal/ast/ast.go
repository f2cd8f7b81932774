// Package ast fixes the AST contract the core depends on (spec §6): a
// fully-formed tree handed over by an external surface-syntax parser. The
// core never constructs these nodes from raw text — it only walks them.
//
// The file layout mirrors the teacher's node-group split (one file per
// grammar area) but the node set is ECMAScript's rather than Pascal's.
package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// Node is the base interface every AST node satisfies.
type Node interface {
	// Pos returns the node's source range, used for diagnostics (§7) and
	// stack traces.
	Pos() source.Range
	// String returns a short debug form; not a round-trippable printer.
	String() string
}

// Expression is any node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node evaluated for its side effect / completion (§3).
type Statement interface {
	Node
	statementNode()
}

// SourceKind distinguishes how the top-level Program is evaluated (§4.5:
// "Strict mode... Script/module top level inherits").
type SourceKind uint8

const (
	KindScript SourceKind = iota
	KindModule
)

// Program is the root of a parsed source text, corresponding to the
// grammar's Script or Module goal symbol (§6).
type Program struct {
	Range      source.Range
	Kind       SourceKind
	Statements []Statement
	// Strict is true when the top level carries a "use strict" directive
	// prologue (scripts only; modules are always strict, §4.5).
	Strict bool
}

func (p *Program) Pos() source.Range { return p.Range }
func (p *Program) String() string {
	if p.Kind == KindModule {
		return "Module"
	}
	return "Script"
}

// Identifier is a bare name reference (§4.5 "Reference resolution").
type Identifier struct {
	Range source.Range
	Name  string
}

func (i *Identifier) expressionNode()   {}
func (i *Identifier) Pos() source.Range { return i.Range }
func (i *Identifier) String() string    { return i.Name }

// PrivateIdentifier is a `#name` class-private reference.
type PrivateIdentifier struct {
	Range source.Range
	Name  string
}

func (i *PrivateIdentifier) expressionNode()   {}
func (i *PrivateIdentifier) Pos() source.Range { return i.Range }
func (i *PrivateIdentifier) String() string    { return "#" + i.Name }

// ExpressionStatement wraps an expression evaluated for its side effects.
type ExpressionStatement struct {
	Range      source.Range
	Expression Expression
}

func (s *ExpressionStatement) statementNode()    {}
func (s *ExpressionStatement) Pos() source.Range { return s.Range }
func (s *ExpressionStatement) String() string    { return s.Expression.String() + ";" }

// BlockStatement is a `{ ... }` lexical block.
type BlockStatement struct {
	Range      source.Range
	Statements []Statement
}

func (b *BlockStatement) statementNode()    {}
func (b *BlockStatement) Pos() source.Range { return b.Range }
func (b *BlockStatement) String() string    { return "{ ... }" }

// EmptyStatement is a bare `;`.
type EmptyStatement struct{ Range source.Range }

func (e *EmptyStatement) statementNode()    {}
func (e *EmptyStatement) Pos() source.Range { return e.Range }
func (e *EmptyStatement) String() string    { return ";" }

// DebuggerStatement is the `debugger;` statement (a no-op for the core;
// host may hook it for breakpoints — introspection surface only).
type DebuggerStatement struct{ Range source.Range }

func (d *DebuggerStatement) statementNode()    {}
func (d *DebuggerStatement) Pos() source.Range { return d.Range }
func (d *DebuggerStatement) String() string    { return "debugger;" }
