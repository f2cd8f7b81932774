// Package environment implements the L4 lexical environment layer (§3,
// §4.4): environment records, the lexical environment chain, and the
// binding lifecycle (uninitialized/TDZ, mutable, immutable).
//
// Grounded on the teacher's internal/interp/runtime/environment.go — a
// chained symbol table with an outer-environment pointer and
// Get/Set/Define/Has/Range — generalized from DWScript's single
// case-insensitive binding kind into ECMAScript's five environment
// record kinds (declarative, object, function, global, module), each
// with its own binding rules (§4.4).
package environment

import "github.com/cwbudde/ecmacore/internal/objects"

// Value aliases the runtime value type so this package reads against
// spec prose without re-importing the whole values package surface.
type Value = objects.Value

// Record is the common interface every environment record kind
// implements (§4.4 "environment record abstract methods").
type Record interface {
	// HasBinding reports whether name is bound in this record.
	HasBinding(name string) bool

	// CreateMutableBinding creates a new mutable binding, uninitialized
	// until InitializeBinding is called. deletable controls whether
	// DeleteBinding may later remove it (only ever true for bindings
	// created by direct `eval` in sloppy mode, and for the global
	// object's configurable var-bindings).
	CreateMutableBinding(name string, deletable bool) error

	// CreateImmutableBinding creates a new immutable binding
	// (`const`/function-imported-binding), uninitialized until
	// InitializeBinding is called.
	CreateImmutableBinding(name string, strict bool) error

	// InitializeBinding sets the initial value of an existing
	// uninitialized binding, lifting it out of the temporal dead zone.
	InitializeBinding(name string, v Value) error

	// SetMutableBinding assigns a new value to an existing binding.
	// strict controls whether assigning to a missing binding raises
	// (true) or, for ObjectEnvironmentRecord/GlobalEnvironmentRecord,
	// creates the property on the binding object (false); declarative
	// bindings always raise regardless of strict.
	SetMutableBinding(name string, v Value, strict bool) error

	// GetBindingValue reads a binding's value, raising on an
	// uninitialized (TDZ) binding or, if strict, a missing one.
	GetBindingValue(name string, strict bool) (Value, error)

	// DeleteBinding removes a deletable binding, returning whether the
	// binding existed and was deletable.
	DeleteBinding(name string) (bool, error)

	// HasThisBinding reports whether this record supplies a `this`
	// value directly (FunctionEnvironmentRecord, GlobalEnvironmentRecord
	// and ModuleEnvironmentRecord do).
	HasThisBinding() bool

	// HasSuperBinding reports whether this record supplies a `super`
	// base (only a FunctionEnvironmentRecord for a method/derived
	// constructor does).
	HasSuperBinding() bool

	// WithBaseObject returns the object this record is based on, for
	// `with` statement semantics, or nil if none.
	WithBaseObject() *objects.Object

	// Outer returns the enclosing environment record, or nil for the
	// outermost record in a lexical environment chain.
	Outer() Record
}

// TDZError is returned by GetBindingValue/SetMutableBinding for a
// binding that exists but has not yet been initialized — the engine
// translates this into a thrown ReferenceError with the spec's
// "Cannot access '<name>' before initialization" message (§6).
type TDZError struct{ Name string }

func (e *TDZError) Error() string { return "cannot access '" + e.Name + "' before initialization" }

// UnresolvableReferenceError is returned when a binding does not exist
// anywhere the lookup was permitted to search — the engine translates
// this into a thrown ReferenceError with the spec's verbatim
// "<name> is not defined" message (§6).
type UnresolvableReferenceError struct{ Name string }

func (e *UnresolvableReferenceError) Error() string { return e.Name + " is not defined" }

// ImmutableBindingError is returned by SetMutableBinding against a
// `const` binding — the engine translates this into a thrown TypeError
// with the spec's "Assignment to constant variable." message (§6).
type ImmutableBindingError struct{ Name string }

func (e *ImmutableBindingError) Error() string { return "assignment to constant variable: " + e.Name }
