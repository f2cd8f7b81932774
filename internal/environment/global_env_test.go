package environment

import (
	"testing"

	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/internal/values"
)

func TestGlobalVarBinding(t *testing.T) {
	globalObj := objects.NewObject(values.TheNull)
	g := NewGlobal(globalObj, globalObj)

	if !g.CanDeclareGlobalVar("x") {
		t.Fatal("expected CanDeclareGlobalVar true on extensible global object")
	}
	if err := g.CreateGlobalVarBinding("x", false); err != nil {
		t.Fatalf("CreateGlobalVarBinding: %v", err)
	}
	if !g.HasVarDeclaration("x") {
		t.Error("expected x tracked as a var name")
	}
	v, err := g.GetBindingValue("x", true)
	if err != nil {
		t.Fatalf("GetBindingValue: %v", err)
	}
	if v.ValueKind() != values.KindUndefined {
		t.Errorf("expected undefined initial value, got %v", v)
	}
}

func TestGlobalLexicalShadowsVarCheck(t *testing.T) {
	globalObj := objects.NewObject(values.TheNull)
	g := NewGlobal(globalObj, globalObj)

	g.CreateImmutableBinding("x", true)
	g.InitializeBinding("x", values.Number(1))

	if !g.HasLexicalDeclaration("x") {
		t.Error("expected x recognized as a lexical declaration")
	}

	v, err := g.GetBindingValue("x", true)
	if err != nil {
		t.Fatalf("GetBindingValue: %v", err)
	}
	if n, ok := v.(values.Number); !ok || n != 1 {
		t.Errorf("expected 1, got %v", v)
	}
}

func TestGlobalRestrictedProperty(t *testing.T) {
	globalObj := objects.NewObject(values.TheNull)
	globalObj.DefineOwnProperty(objects.StringKey("NaN"),
		objects.NewDataDescriptor(values.Number(nanValue()), false, false, false))
	g := NewGlobal(globalObj, globalObj)

	if !g.HasRestrictedGlobalProperty("NaN") {
		t.Error("expected NaN to be a restricted global property")
	}
	if g.CanDeclareGlobalFunction("NaN") {
		t.Error("expected CanDeclareGlobalFunction false against a non-configurable property")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
