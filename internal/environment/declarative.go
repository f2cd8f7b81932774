package environment

import (
	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/pkg/orderedmap"
)

// binding is a single declarative-record slot: a value plus the flags
// that govern its lifecycle (§4.4 binding states: uninitialized →
// initialized; mutable vs immutable; deletable or not).
type binding struct {
	value       Value
	mutable     bool
	deletable   bool
	initialized bool
	strict      bool // immutable-binding strict flag, for error-message fidelity only
}

// Declarative is the DeclarativeEnvironmentRecord of §4.4: a plain
// name→binding table with no backing object, used for block scopes,
// catch clauses, and as the base every other record kind embeds.
//
// Grounded directly on the teacher's Environment: a store plus an outer
// pointer, generalized to carry binding metadata (mutable/initialized/
// deletable) the teacher's single-kind model never needed.
type Declarative struct {
	bindings *orderedmap.Map[*binding]
	outer    Record
}

// NewDeclarative creates a declarative record enclosed by outer (nil for
// a root record, e.g. the outermost scope of a function body before its
// environment is chained to the function's closure environment).
func NewDeclarative(outer Record) *Declarative {
	return &Declarative{bindings: orderedmap.New[*binding](), outer: outer}
}

func (d *Declarative) Outer() Record { return d.outer }

func (d *Declarative) HasBinding(name string) bool { return d.bindings.Has(name) }

func (d *Declarative) CreateMutableBinding(name string, deletable bool) error {
	d.bindings.Set(name, &binding{mutable: true, deletable: deletable})
	return nil
}

func (d *Declarative) CreateImmutableBinding(name string, strict bool) error {
	d.bindings.Set(name, &binding{mutable: false, strict: strict})
	return nil
}

func (d *Declarative) InitializeBinding(name string, v Value) error {
	b, ok := d.bindings.Get(name)
	if !ok {
		return &UnresolvableReferenceError{Name: name}
	}
	b.value = v
	b.initialized = true
	return nil
}

func (d *Declarative) SetMutableBinding(name string, v Value, strict bool) error {
	b, ok := d.bindings.Get(name)
	if !ok {
		if strict {
			return &UnresolvableReferenceError{Name: name}
		}
		// Sloppy-mode implicit global creation is handled one layer up by
		// the global environment record; a bare declarative record with
		// no such binding and non-strict semantics has nowhere to put it.
		return &UnresolvableReferenceError{Name: name}
	}
	if !b.initialized {
		return &TDZError{Name: name}
	}
	if !b.mutable {
		return &ImmutableBindingError{Name: name}
	}
	b.value = v
	return nil
}

func (d *Declarative) GetBindingValue(name string, strict bool) (Value, error) {
	b, ok := d.bindings.Get(name)
	if !ok {
		return nil, &UnresolvableReferenceError{Name: name}
	}
	if !b.initialized {
		return nil, &TDZError{Name: name}
	}
	return b.value, nil
}

func (d *Declarative) DeleteBinding(name string) (bool, error) {
	b, ok := d.bindings.Get(name)
	if !ok {
		return true, nil
	}
	if !b.deletable {
		return false, nil
	}
	d.bindings.Delete(name)
	return true, nil
}

func (d *Declarative) HasThisBinding() bool      { return false }
func (d *Declarative) HasSuperBinding() bool     { return false }
func (d *Declarative) WithBaseObject() *objects.Object { return nil }
