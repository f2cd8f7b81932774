package environment

import (
	"testing"

	"github.com/cwbudde/ecmacore/internal/values"
)

func TestDeclarativeDefineAndGet(t *testing.T) {
	env := NewDeclarative(nil)
	if err := env.CreateMutableBinding("x", false); err != nil {
		t.Fatalf("CreateMutableBinding: %v", err)
	}
	if err := env.InitializeBinding("x", values.Number(42)); err != nil {
		t.Fatalf("InitializeBinding: %v", err)
	}

	v, err := env.GetBindingValue("x", true)
	if err != nil {
		t.Fatalf("GetBindingValue: %v", err)
	}
	if n, ok := v.(values.Number); !ok || n != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestDeclarativeTDZ(t *testing.T) {
	env := NewDeclarative(nil)
	if err := env.CreateImmutableBinding("x", true); err != nil {
		t.Fatalf("CreateImmutableBinding: %v", err)
	}

	if _, err := env.GetBindingValue("x", true); err == nil {
		t.Fatal("expected TDZ error before InitializeBinding")
	} else if _, ok := err.(*TDZError); !ok {
		t.Errorf("expected *TDZError, got %T", err)
	}
}

func TestDeclarativeImmutableAssignment(t *testing.T) {
	env := NewDeclarative(nil)
	env.CreateImmutableBinding("x", true)
	env.InitializeBinding("x", values.Number(1))

	err := env.SetMutableBinding("x", values.Number(2), true)
	if err == nil {
		t.Fatal("expected error assigning to const binding")
	}
	if _, ok := err.(*ImmutableBindingError); !ok {
		t.Errorf("expected *ImmutableBindingError, got %T", err)
	}
}

func TestDeclarativeUnresolvable(t *testing.T) {
	env := NewDeclarative(nil)
	if _, err := env.GetBindingValue("missing", true); err == nil {
		t.Fatal("expected unresolvable reference error")
	} else if _, ok := err.(*UnresolvableReferenceError); !ok {
		t.Errorf("expected *UnresolvableReferenceError, got %T", err)
	}
}

func TestChainWalksToOuter(t *testing.T) {
	outer := NewDeclarative(nil)
	outer.CreateMutableBinding("shared", false)
	outer.InitializeBinding("shared", values.Number(7))

	inner := NewDeclarative(outer)
	inner.CreateMutableBinding("local", false)
	inner.InitializeBinding("local", values.Number(1))

	rec := ResolveBinding(inner, "shared")
	if rec == nil {
		t.Fatal("expected binding resolved through outer chain")
	}
	v, err := GetValue(inner, "shared", true)
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if n, ok := v.(values.Number); !ok || n != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}

func TestChainShadowing(t *testing.T) {
	outer := NewDeclarative(nil)
	outer.CreateMutableBinding("x", false)
	outer.InitializeBinding("x", values.Number(1))

	inner := NewDeclarative(outer)
	inner.CreateMutableBinding("x", false)
	inner.InitializeBinding("x", values.Number(2))

	v, _ := GetValue(inner, "x", true)
	if n := v.(values.Number); n != 2 {
		t.Errorf("expected inner shadow 2, got %v", n)
	}
	outerV, _ := GetValue(outer, "x", true)
	if n := outerV.(values.Number); n != 1 {
		t.Errorf("expected outer unaffected 1, got %v", n)
	}
}

func TestDeletableBinding(t *testing.T) {
	env := NewDeclarative(nil)
	env.CreateMutableBinding("x", true)
	env.InitializeBinding("x", values.Number(1))

	ok, err := env.DeleteBinding("x")
	if err != nil || !ok {
		t.Fatalf("expected successful delete, got ok=%v err=%v", ok, err)
	}
	if env.HasBinding("x") {
		t.Error("binding should be gone after delete")
	}
}

func TestNonDeletableBinding(t *testing.T) {
	env := NewDeclarative(nil)
	env.CreateMutableBinding("x", false)
	env.InitializeBinding("x", values.Number(1))

	ok, err := env.DeleteBinding("x")
	if err != nil {
		t.Fatalf("DeleteBinding: %v", err)
	}
	if ok {
		t.Error("expected delete of non-deletable binding to fail")
	}
}
