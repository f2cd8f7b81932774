package environment

import "github.com/cwbudde/ecmacore/internal/objects"

// ThisBindingStatus tracks whether a function environment's `this` has
// been bound yet — arrow functions never bind `this` (lexical); derived
// class constructors start "uninitialized" until their super() call
// resolves it (§4.4, §4.5).
type ThisBindingStatus uint8

const (
	ThisLexical ThisBindingStatus = iota
	ThisUninitialized
	ThisInitialized
)

// Function is the FunctionEnvironmentRecord of §4.4: a declarative
// record plus `this`, `new.target`, and (for methods) a `super` home
// object. Embeds Declarative the way the teacher's own call-frame
// scopes are just Environment instances with a different creation site
// (NewEnclosedEnvironment at call time) — here the extra fields are the
// ECMAScript-specific addition the teacher's single scope kind never
// needed.
type Function struct {
	*Declarative

	thisValue         Value
	thisStatus        ThisBindingStatus
	functionObject    Value
	newTarget         Value
	homeObject        *objects.Object // set on methods, for super.prop resolution
	hasSuperBinding   bool
}

// NewFunction creates a function environment record enclosed by outer.
// thisStatus should be ThisLexical for arrow functions (their `this`
// lookup walks straight through to the enclosing record) and
// ThisUninitialized for derived-class constructors awaiting super().
func NewFunction(outer Record, functionObject, newTarget Value, thisStatus ThisBindingStatus) *Function {
	return &Function{
		Declarative:    NewDeclarative(outer),
		thisStatus:     thisStatus,
		functionObject: functionObject,
		newTarget:      newTarget,
	}
}

// BindThisValue implements BindThisValue (§4.4): sets `this` once, for
// an ordinary function's call-time receiver or a derived constructor's
// post-super() instance.
func (f *Function) BindThisValue(v Value) error {
	if f.thisStatus == ThisInitialized {
		return &ImmutableBindingError{Name: "this"}
	}
	f.thisValue = v
	f.thisStatus = ThisInitialized
	return nil
}

func (f *Function) GetThisBinding() (Value, error) {
	if f.thisStatus == ThisUninitialized {
		return nil, &TDZError{Name: "this"}
	}
	return f.thisValue, nil
}

func (f *Function) HasThisBinding() bool { return f.thisStatus != ThisLexical }

func (f *Function) HasSuperBinding() bool {
	return f.hasSuperBinding && f.thisStatus != ThisLexical
}

// SetHomeObject records the [[HomeObject]] used to resolve `super`
// member accesses inside a method body.
func (f *Function) SetHomeObject(home *objects.Object) {
	f.homeObject = home
	f.hasSuperBinding = home != nil
}

func (f *Function) HomeObject() *objects.Object { return f.homeObject }
func (f *Function) NewTarget() Value            { return f.newTarget }
func (f *Function) FunctionObject() Value       { return f.functionObject }
