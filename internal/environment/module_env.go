package environment

import "github.com/cwbudde/ecmacore/internal/objects"

// indirectBinding is a binding that forwards to a named binding in
// another module's environment record — the mechanism behind
// `export { x } from "./other.js"` and named imports (§4.6 "indirect
// exports resolve through to the binding in the exporting module").
type indirectBinding struct {
	target Record
	name   string
}

// Module is the ModuleEnvironmentRecord of §4.4/§4.6: a declarative
// record extended with CreateImportBinding for indirect bindings that
// alias a binding living in a different module's environment. Lookups
// on an indirect name forward entirely to the target; InitializeBinding
// is never called on one directly; the target module initializes its
// own copy.
type Module struct {
	*Declarative
	indirect map[string]*indirectBinding
}

// NewModule creates a module environment record. Per §4.4, a module's
// top-level lexical environment has no outer lexical scope beyond the
// global environment, which outer should always be.
func NewModule(outer Record) *Module {
	return &Module{Declarative: NewDeclarative(outer), indirect: make(map[string]*indirectBinding)}
}

// CreateImportBinding installs an indirect binding named localName that
// forwards all reads to name in target's environment record (§4.6).
func (m *Module) CreateImportBinding(localName string, target Record, name string) error {
	m.indirect[localName] = &indirectBinding{target: target, name: name}
	return nil
}

func (m *Module) HasBinding(name string) bool {
	if _, ok := m.indirect[name]; ok {
		return true
	}
	return m.Declarative.HasBinding(name)
}

func (m *Module) GetBindingValue(name string, strict bool) (Value, error) {
	if ib, ok := m.indirect[name]; ok {
		return ib.target.GetBindingValue(ib.name, true)
	}
	return m.Declarative.GetBindingValue(name, strict)
}

func (m *Module) SetMutableBinding(name string, v Value, strict bool) error {
	if _, ok := m.indirect[name]; ok {
		// Imported bindings are immutable from the importing module's
		// perspective regardless of the exporting module's own mutability.
		return &ImmutableBindingError{Name: name}
	}
	return m.Declarative.SetMutableBinding(name, v, strict)
}

func (m *Module) DeleteBinding(name string) (bool, error) {
	if _, ok := m.indirect[name]; ok {
		return false, nil // module bindings are never deletable
	}
	return m.Declarative.DeleteBinding(name)
}

func (m *Module) HasThisBinding() bool           { return true } // module `this` is undefined, but bound
func (m *Module) GetThisBinding() (Value, error) { return undef(), nil }
func (m *Module) WithBaseObject() *objects.Object { return nil }
