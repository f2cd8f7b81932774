package environment

import "github.com/cwbudde/ecmacore/internal/objects"

// ObjectRecord is the ObjectEnvironmentRecord of §4.4: bindings are
// backed by an object's own+inherited properties rather than a private
// table — used for the global object's var bindings and for `with`
// statement scopes. withEnvironment enables unscopables filtering for
// `with` (§4.4 "with-statement scopes consult @@unscopables").
type ObjectRecord struct {
	bindingObject   *objects.Object
	withEnvironment bool
	outer           Record
}

// NewObjectRecord wraps obj as an environment record enclosed by outer.
func NewObjectRecord(obj *objects.Object, withEnvironment bool, outer Record) *ObjectRecord {
	return &ObjectRecord{bindingObject: obj, withEnvironment: withEnvironment, outer: outer}
}

func (r *ObjectRecord) Outer() Record                      { return r.outer }
func (r *ObjectRecord) BindingObject() *objects.Object      { return r.bindingObject }
func (r *ObjectRecord) WithBaseObject() *objects.Object {
	if r.withEnvironment {
		return r.bindingObject
	}
	return nil
}

func (r *ObjectRecord) HasBinding(name string) bool {
	key := objects.StringKey(name)
	if !r.bindingObject.HasProperty(key) {
		return false
	}
	if !r.withEnvironment {
		return true
	}
	return !r.unscopable(name)
}

// unscopable implements the `with`-scope @@unscopables filter: a
// property is excluded from the with-scope's bindings when the bound
// object's @@unscopables blocklist marks it truthy.
func (r *ObjectRecord) unscopable(name string) bool {
	unscopables := r.bindingObject.Get(objects.SymbolKey(unscopablesSymbol()), r.bindingObject)
	blocklist, ok := unscopables.(*objects.Object)
	if !ok {
		return false
	}
	v := blocklist.Get(objects.StringKey(name), blocklist)
	return toBool(v)
}

func (r *ObjectRecord) CreateMutableBinding(name string, deletable bool) error {
	r.bindingObject.DefineOwnProperty(objects.StringKey(name),
		objects.NewDataDescriptor(undef(), true, true, deletable))
	return nil
}

func (r *ObjectRecord) CreateImmutableBinding(name string, strict bool) error {
	// Object environment records never host immutable bindings in the
	// spec (only declarative/module records do); included for interface
	// completeness, treated as a mutable non-deletable binding.
	return r.CreateMutableBinding(name, false)
}

func (r *ObjectRecord) InitializeBinding(name string, v Value) error {
	return r.SetMutableBinding(name, v, false)
}

func (r *ObjectRecord) SetMutableBinding(name string, v Value, strict bool) error {
	key := objects.StringKey(name)
	if !r.bindingObject.HasProperty(key) {
		if strict {
			return &UnresolvableReferenceError{Name: name}
		}
		r.bindingObject.Set(key, v, r.bindingObject)
		return nil
	}
	r.bindingObject.Set(key, v, r.bindingObject)
	return nil
}

func (r *ObjectRecord) GetBindingValue(name string, strict bool) (Value, error) {
	key := objects.StringKey(name)
	if !r.bindingObject.HasProperty(key) {
		if strict {
			return nil, &UnresolvableReferenceError{Name: name}
		}
		return undef(), nil
	}
	return r.bindingObject.Get(key, r.bindingObject), nil
}

func (r *ObjectRecord) DeleteBinding(name string) (bool, error) {
	return r.bindingObject.Delete(objects.StringKey(name)), nil
}

func (r *ObjectRecord) HasThisBinding() bool  { return false }
func (r *ObjectRecord) HasSuperBinding() bool { return false }
