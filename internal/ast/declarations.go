package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// DeclarationKind is `var`, `let`, or `const` (§6, §4.4 hoisting/TDZ).
type DeclarationKind string

const (
	KindVar   DeclarationKind = "var"
	KindLet   DeclarationKind = "let"
	KindConst DeclarationKind = "const"
)

// VariableDeclarator is one `name = init` (or destructuring) binding
// within a VariableDeclaration.
type VariableDeclarator struct {
	Range source.Range
	ID    Pattern
	Init  Expression // nil when there is no initializer
}

// VariableDeclaration is `var|let|const a = 1, [b] = c;` (§6).
type VariableDeclaration struct {
	Range        source.Range
	DeclKind     DeclarationKind
	Declarators  []*VariableDeclarator
}

func (v *VariableDeclaration) statementNode()   {}
func (v *VariableDeclaration) Pos() source.Range { return v.Range }
func (v *VariableDeclaration) String() string    { return string(v.DeclKind) + " ..." }
