// Part of the ast package: module-level import/export declarations
// driving the module record graph (§4.6, L6).
package ast

import "github.com/cwbudde/ecmacore/pkg/source"

// ImportSpecifier is one binding introduced by an ImportDeclaration:
// `{ Imported as Local }`, the default import (Imported == nil), or the
// namespace import `* as Local`.
type ImportSpecifier struct {
	Imported  *Identifier // nil for default/namespace imports
	Local     *Identifier
	Default   bool
	Namespace bool
}

// ImportDeclaration is `import ... from 'specifier';` (§4.6, §6).
type ImportDeclaration struct {
	Range       source.Range
	Specifiers  []*ImportSpecifier
	Specifier   string // the module request string
}

func (i *ImportDeclaration) statementNode()   {}
func (i *ImportDeclaration) Pos() source.Range { return i.Range }
func (i *ImportDeclaration) String() string    { return "import ... from \"" + i.Specifier + "\";" }

// ExportSpecifier is one binding of a named export list:
// `{ Local as Exported }`.
type ExportSpecifier struct {
	Local    *Identifier
	Exported *Identifier
}

// ExportNamedDeclaration covers `export { a, b as c };`,
// `export { a } from 'm';`, and `export const x = 1;` (Declaration set).
type ExportNamedDeclaration struct {
	Range       source.Range
	Declaration Statement // non-nil for `export <decl>`, else nil
	Specifiers  []*ExportSpecifier
	Source      string // non-empty for a re-export `from 'm'`
}

func (e *ExportNamedDeclaration) statementNode()   {}
func (e *ExportNamedDeclaration) Pos() source.Range { return e.Range }
func (e *ExportNamedDeclaration) String() string    { return "export {...};" }

// ExportDefaultDeclaration is `export default <expr|decl>;`.
type ExportDefaultDeclaration struct {
	Range      source.Range
	Expression Node // Expression, FunctionDecl, or ClassDeclaration
}

func (e *ExportDefaultDeclaration) statementNode()   {}
func (e *ExportDefaultDeclaration) Pos() source.Range { return e.Range }
func (e *ExportDefaultDeclaration) String() string    { return "export default ...;" }

// ExportAllDeclaration is `export * from 'm';` or `export * as ns from 'm';`
// (§4.6 "export * from 'm' flattens m's exports except default").
type ExportAllDeclaration struct {
	Range  source.Range
	Source string
	As     *Identifier // non-nil for the namespaced form
}

func (e *ExportAllDeclaration) statementNode()   {}
func (e *ExportAllDeclaration) Pos() source.Range { return e.Range }
func (e *ExportAllDeclaration) String() string    { return "export * from \"" + e.Source + "\";" }
