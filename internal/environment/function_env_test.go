package environment

import (
	"testing"

	"github.com/cwbudde/ecmacore/internal/values"
)

func TestFunctionThisBindingLifecycle(t *testing.T) {
	fn := NewFunction(nil, values.TheUndefined, values.TheUndefined, ThisUninitialized)

	if _, err := fn.GetThisBinding(); err == nil {
		t.Fatal("expected TDZ error before BindThisValue")
	}

	receiver := values.NewString("receiver")
	if err := fn.BindThisValue(receiver); err != nil {
		t.Fatalf("BindThisValue: %v", err)
	}
	if err := fn.BindThisValue(receiver); err == nil {
		t.Fatal("expected error rebinding an already-initialized this")
	}

	v, err := fn.GetThisBinding()
	if err != nil {
		t.Fatalf("GetThisBinding: %v", err)
	}
	if !values.SameValue(v, receiver) {
		t.Errorf("expected bound receiver back, got %v", v)
	}
}

func TestArrowFunctionHasNoThisBinding(t *testing.T) {
	fn := NewFunction(nil, values.TheUndefined, values.TheUndefined, ThisLexical)
	if fn.HasThisBinding() {
		t.Error("arrow function environment should not report a this binding")
	}
}

func TestThisEnvironmentWalksPastLexicalScopes(t *testing.T) {
	fnEnv := NewFunction(nil, values.TheUndefined, values.TheUndefined, ThisInitialized)
	fnEnv.BindThisValue(values.NewString("outer-this"))

	block := NewDeclarative(fnEnv)
	arrow := NewFunction(block, values.TheUndefined, values.TheUndefined, ThisLexical)

	rec := ThisEnvironment(arrow)
	fr, ok := rec.(*Function)
	if !ok {
		t.Fatalf("expected *Function record, got %T", rec)
	}
	if fr != fnEnv {
		t.Error("expected ThisEnvironment to walk past the arrow and block scopes to the enclosing function")
	}
}
