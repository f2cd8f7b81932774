package objects

import (
	"sort"

	"github.com/cwbudde/ecmacore/internal/values"
)

// NewModuleNamespaceObject builds the Module Namespace Exotic Object
// (§4.6: "produces a Module Namespace Exotic Object whose own keys are
// the sorted export names plus @@toStringTag"). bindingGetters supplies
// one live-binding accessor per export name; the module linker owns
// ensuring each accessor reads the current value of the live binding
// (including raising on a still-TDZ binding the way any other access to
// an uninitialized lexical binding does).
func NewModuleNamespaceObject(exportNames []string, bindingGetters map[string]func() Value) *Object {
	sorted := append([]string(nil), exportNames...)
	sort.Strings(sorted)

	o := &Object{
		Slots: make(map[string]any),
		Class: "Module",
	}
	o.Slots["exportNames"] = sorted
	o.Slots["bindingGetters"] = bindingGetters
	o.Methods = MethodTable{
		GetPrototypeOf:    func(*Object) Value { return values.TheNull },
		SetPrototypeOf:    moduleNSSetPrototypeOf,
		IsExtensible:      func(*Object) bool { return false },
		PreventExtensions: func(*Object) bool { return true },
		GetOwnProperty:    moduleNSGetOwnProperty,
		DefineOwnProperty: moduleNSDefineOwnProperty,
		HasProperty:       moduleNSHasProperty,
		Get:               moduleNSGet,
		Set:               func(*Object, PropertyKey, Value, Value) bool { return false },
		Delete:            moduleNSDelete,
		OwnPropertyKeys:   moduleNSOwnPropertyKeys,
	}
	return o
}

func moduleNSExportNames(o *Object) []string { return o.Slots["exportNames"].([]string) }
func moduleNSGetters(o *Object) map[string]func() Value {
	return o.Slots["bindingGetters"].(map[string]func() Value)
}

func moduleNSSetPrototypeOf(o *Object, proto Value) bool {
	return values.SameValue(proto, values.TheNull)
}

func moduleNSGetOwnProperty(o *Object, key PropertyKey) (*PropertyDescriptor, bool) {
	if key.IsSymbol() {
		if key.Symbol() == values.SymbolToStringTag {
			return NewDataDescriptor(values.NewString("Module"), false, false, false), true
		}
		return nil, false
	}
	name := key.String()
	for _, n := range moduleNSExportNames(o) {
		if n == name {
			getter := moduleNSGetters(o)[name]
			var v Value = values.TheUndefined
			if getter != nil {
				v = getter()
			}
			return NewDataDescriptor(v, true, true, false), true
		}
	}
	return nil, false
}

func moduleNSDefineOwnProperty(o *Object, key PropertyKey, desc *PropertyDescriptor) bool {
	current, ok := moduleNSGetOwnProperty(o, key)
	if !ok {
		return false
	}
	if desc.hasConfigurable && desc.Configurable {
		return false
	}
	if desc.hasEnumerable && !desc.Enumerable {
		return false
	}
	if desc.IsAccessor() {
		return false
	}
	if desc.hasWritable && !desc.Writable {
		return false
	}
	if desc.hasValue {
		return values.SameValue(desc.Value, current.Value)
	}
	return true
}

func moduleNSHasProperty(o *Object, key PropertyKey) bool {
	_, ok := moduleNSGetOwnProperty(o, key)
	return ok
}

func moduleNSGet(o *Object, key PropertyKey, receiver Value) Value {
	d, ok := moduleNSGetOwnProperty(o, key)
	if !ok {
		return values.TheUndefined
	}
	return d.Value
}

func moduleNSDelete(o *Object, key PropertyKey) bool {
	_, ok := moduleNSGetOwnProperty(o, key)
	return !ok
}

func moduleNSOwnPropertyKeys(o *Object) []PropertyKey {
	names := moduleNSExportNames(o)
	keys := make([]PropertyKey, 0, len(names)+1)
	for _, n := range names {
		keys = append(keys, StringKey(n))
	}
	keys = append(keys, SymbolKey(values.SymbolToStringTag))
	return keys
}
