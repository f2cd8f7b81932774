package environment

import "github.com/cwbudde/ecmacore/internal/objects"

// Global is the GlobalEnvironmentRecord of §4.4: composes an object
// record (the global object — `var` declarations and function
// declarations live here as configurable-false-by-default properties)
// with a declarative record (global `let`/`const`/`class` bindings,
// which do not become properties of the global object). varNames tracks
// every name ever declared `var`/function at global scope, needed by
// CanDeclareGlobalVar/CanDeclareGlobalFunction and
// HasRestrictedGlobalProperty (§4.4).
type Global struct {
	objectRecord  *ObjectRecord
	declarative   *Declarative
	varNames      map[string]bool
	globalThis    Value
}

// NewGlobal creates the sole GlobalEnvironmentRecord for a realm,
// wrapping globalObj (the `globalThis` object) and binding `this` to
// globalThisValue (ordinarily the same object, but hosts may supply a
// distinct wrapper).
func NewGlobal(globalObj *objects.Object, globalThisValue Value) *Global {
	return &Global{
		objectRecord: NewObjectRecord(globalObj, false, nil),
		declarative:  NewDeclarative(nil),
		varNames:     make(map[string]bool),
		globalThis:   globalThisValue,
	}
}

func (g *Global) Outer() Record { return nil }

func (g *Global) GlobalObject() *objects.Object { return g.objectRecord.bindingObject }

func (g *Global) GetThisBinding() (Value, error) { return g.globalThis, nil }
func (g *Global) HasThisBinding() bool           { return true }
func (g *Global) HasSuperBinding() bool          { return false }
func (g *Global) WithBaseObject() *objects.Object { return nil }

func (g *Global) HasBinding(name string) bool {
	if g.declarative.HasBinding(name) {
		return true
	}
	return g.objectRecord.HasBinding(name)
}

// HasVarDeclaration reports whether name is a var-declared global name
// (used by HasLexicalDeclaration's converse checks during global
// hoisting, §4.4).
func (g *Global) HasVarDeclaration(name string) bool { return g.varNames[name] }

// HasLexicalDeclaration reports whether name is bound by the
// declarative half — a `var x` cannot coexist with a `let x`/`const x`/
// `class X` of the same name at the same global scope (§4.5 hoisting
// conflict check).
func (g *Global) HasLexicalDeclaration(name string) bool { return g.declarative.HasBinding(name) }

// HasRestrictedGlobalProperty reports whether an existing own property
// of the global object blocks a new var/function declaration of the
// same name: specifically, any existing non-configurable own property
// (§4.4).
func (g *Global) HasRestrictedGlobalProperty(name string) bool {
	desc, ok := g.objectRecord.bindingObject.GetOwnProperty(objects.StringKey(name))
	if !ok {
		return false
	}
	if desc.Configurable {
		return false
	}
	return true
}

// CanDeclareGlobalVar reports whether a `var` declaration of name may
// proceed (§4.4): either the global object already has the property, or
// it is extensible.
func (g *Global) CanDeclareGlobalVar(name string) bool {
	if g.objectRecord.bindingObject.HasOwn(objects.StringKey(name)) {
		return true
	}
	return g.objectRecord.bindingObject.IsExtensible()
}

// CanDeclareGlobalFunction reports whether a function declaration of
// name may proceed (§4.4): stricter than CanDeclareGlobalVar — an
// existing property must be configurable, or be a plain
// writable+enumerable data property; with no existing property, the
// object must be extensible.
func (g *Global) CanDeclareGlobalFunction(name string) bool {
	desc, ok := g.objectRecord.bindingObject.GetOwnProperty(objects.StringKey(name))
	if !ok {
		return g.objectRecord.bindingObject.IsExtensible()
	}
	if desc.Configurable {
		return true
	}
	return !desc.IsAccessor() && desc.Writable && desc.Enumerable
}

// CreateGlobalVarBinding implements CreateGlobalVarBinding (§4.4): marks
// name as a known var name and, if the global object does not already
// have the property, installs it as a writable/enumerable/configurable=
// deletable data property initialized to undefined.
func (g *Global) CreateGlobalVarBinding(name string, deletable bool) error {
	g.varNames[name] = true
	if !g.objectRecord.bindingObject.HasOwn(objects.StringKey(name)) {
		g.objectRecord.bindingObject.DefineOwnProperty(objects.StringKey(name),
			objects.NewDataDescriptor(undef(), true, true, deletable))
	}
	return nil
}

// CreateGlobalFunctionBinding implements CreateGlobalFunctionBinding
// (§4.4): installs fn as the named global property (configurable per
// deletable), overwriting whatever was previously there, and marks name
// as a known var name.
func (g *Global) CreateGlobalFunctionBinding(name string, fn Value, deletable bool) error {
	g.varNames[name] = true
	g.objectRecord.bindingObject.DefineOwnProperty(objects.StringKey(name),
		objects.NewDataDescriptor(fn, true, true, deletable))
	return nil
}

func (g *Global) CreateMutableBinding(name string, deletable bool) error {
	return g.declarative.CreateMutableBinding(name, deletable)
}

func (g *Global) CreateImmutableBinding(name string, strict bool) error {
	return g.declarative.CreateImmutableBinding(name, strict)
}

func (g *Global) InitializeBinding(name string, v Value) error {
	if g.declarative.HasBinding(name) {
		return g.declarative.InitializeBinding(name, v)
	}
	return g.objectRecord.InitializeBinding(name, v)
}

func (g *Global) SetMutableBinding(name string, v Value, strict bool) error {
	if g.declarative.HasBinding(name) {
		return g.declarative.SetMutableBinding(name, v, strict)
	}
	return g.objectRecord.SetMutableBinding(name, v, strict)
}

func (g *Global) GetBindingValue(name string, strict bool) (Value, error) {
	if g.declarative.HasBinding(name) {
		return g.declarative.GetBindingValue(name, strict)
	}
	return g.objectRecord.GetBindingValue(name, strict)
}

func (g *Global) DeleteBinding(name string) (bool, error) {
	if g.declarative.HasBinding(name) {
		return g.declarative.DeleteBinding(name)
	}
	ok, err := g.objectRecord.DeleteBinding(name)
	if ok {
		delete(g.varNames, name)
	}
	return ok, err
}
