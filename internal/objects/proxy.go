package objects

import "github.com/cwbudde/ecmacore/internal/values"

// ProxyCall is the engine-supplied hook for invoking a trap function with
// a thisArg and argument list, the Proxy counterpart to GetAccessorCall/
// SetAccessorCall. Registered once at realm-init time.
var ProxyCall func(fn Value, thisArg Value, args []Value) (Value, error)

// NewProxyObject builds a Proxy exotic object (§4.2: "every internal
// method is forwarded to a handler trap... Missing traps delegate to
// target"). Traps that the spec defines to surface exceptions (e.g. a
// getPrototypeOf trap returning a non-object) cannot propagate those
// through this package's error-free MethodTable signatures for the non-
// Call/Construct methods. On a trap error, getPrototypeOf and
// isExtensible fall back to the target's behavior; the other traps report
// failure instead (false, undefined, no own property, or no keys). This
// is a documented simplification (see DESIGN.md) — Call and Construct,
// which already return error, propagate faithfully.
func NewProxyObject(target, handler *Object) *Object {
	o := &Object{
		Slots: make(map[string]any),
		Class: "Proxy",
	}
	o.Slots["proxyTarget"] = target
	o.Slots["proxyHandler"] = handler
	o.Methods = MethodTable{
		GetPrototypeOf:    proxyGetPrototypeOf,
		SetPrototypeOf:    proxySetPrototypeOf,
		IsExtensible:      proxyIsExtensible,
		PreventExtensions: proxyPreventExtensions,
		GetOwnProperty:    proxyGetOwnProperty,
		DefineOwnProperty: proxyDefineOwnProperty,
		HasProperty:       proxyHasProperty,
		Get:               proxyGet,
		Set:               proxySet,
		Delete:            proxyDelete,
		OwnPropertyKeys:   proxyOwnPropertyKeys,
	}
	if target.Methods.Call != nil || target.Class == "Function" {
		o.Methods.Call = proxyCallTrap
	}
	if target.Methods.Construct != nil {
		o.Methods.Construct = proxyConstructTrap
	}
	return o
}

func proxyTarget(o *Object) *Object  { return o.Slots["proxyTarget"].(*Object) }
func proxyHandler(o *Object) *Object { return o.Slots["proxyHandler"].(*Object) }

func keyToValue(key PropertyKey) Value {
	if key.IsSymbol() {
		return key.Symbol()
	}
	return values.NewString(key.String())
}

// trapFn looks up a named trap on handler, returning ok=false when the
// trap is absent, null, or undefined — the "no trap: delegate to target"
// case every Proxy internal method shares.
func trapFn(handler *Object, name string) (Value, bool) {
	v := handler.Get(StringKey(name), handler)
	if v == nil {
		return nil, false
	}
	switch v.ValueKind() {
	case values.KindUndefined, values.KindNull:
		return nil, false
	}
	fnObj, ok := v.(*Object)
	if !ok || (fnObj.Methods.Call == nil && fnObj.Class != "Function") {
		return nil, false
	}
	return v, true
}

func proxyGetPrototypeOf(o *Object) Value {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "getPrototypeOf")
	if !ok || ProxyCall == nil {
		return target.GetPrototypeOf()
	}
	res, err := ProxyCall(fn, handler, []Value{target})
	if err != nil {
		return target.GetPrototypeOf()
	}
	return res
}

func proxySetPrototypeOf(o *Object, proto Value) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "setPrototypeOf")
	if !ok || ProxyCall == nil {
		return target.SetPrototypeOf(proto)
	}
	res, err := ProxyCall(fn, handler, []Value{target, proto})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyIsExtensible(o *Object) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "isExtensible")
	if !ok || ProxyCall == nil {
		return target.IsExtensible()
	}
	res, err := ProxyCall(fn, handler, []Value{target})
	if err != nil {
		return target.IsExtensible()
	}
	return bool(values.ToBoolean(res))
}

func proxyPreventExtensions(o *Object) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "preventExtensions")
	if !ok || ProxyCall == nil {
		return target.PreventExtensions()
	}
	res, err := ProxyCall(fn, handler, []Value{target})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyGetOwnProperty(o *Object, key PropertyKey) (*PropertyDescriptor, bool) {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "getOwnPropertyDescriptor")
	if !ok || ProxyCall == nil {
		return target.GetOwnProperty(key)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key)})
	if err != nil || res == nil || res.ValueKind() == values.KindUndefined {
		return nil, false
	}
	obj, ok := res.(*Object)
	if !ok {
		return target.GetOwnProperty(key)
	}
	return descriptorFromObject(obj), true
}

func proxyDefineOwnProperty(o *Object, key PropertyKey, desc *PropertyDescriptor) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "defineProperty")
	if !ok || ProxyCall == nil {
		return target.DefineOwnProperty(key, desc)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key), descriptorToObject(desc)})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyHasProperty(o *Object, key PropertyKey) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "has")
	if !ok || ProxyCall == nil {
		return target.HasProperty(key)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key)})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyGet(o *Object, key PropertyKey, receiver Value) Value {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "get")
	if !ok || ProxyCall == nil {
		return target.Get(key, receiver)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key), receiver})
	if err != nil {
		return values.TheUndefined
	}
	return res
}

func proxySet(o *Object, key PropertyKey, v Value, receiver Value) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "set")
	if !ok || ProxyCall == nil {
		return target.Set(key, v, receiver)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key), v, receiver})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyDelete(o *Object, key PropertyKey) bool {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "deleteProperty")
	if !ok || ProxyCall == nil {
		return target.Delete(key)
	}
	res, err := ProxyCall(fn, handler, []Value{target, keyToValue(key)})
	if err != nil {
		return false
	}
	return bool(values.ToBoolean(res))
}

func proxyOwnPropertyKeys(o *Object) []PropertyKey {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "ownKeys")
	if !ok || ProxyCall == nil {
		return target.OwnPropertyKeys()
	}
	res, err := ProxyCall(fn, handler, []Value{target})
	if err != nil {
		return nil
	}
	arr, ok := res.(*Object)
	if !ok {
		return target.OwnPropertyKeys()
	}
	n := ArrayLength(arr)
	keys := make([]PropertyKey, 0, n)
	for i := uint32(0); i < n; i++ {
		v := arr.GetOwn(StringKey(uitoa(uint64(i))))
		if sym, ok := v.(*values.Symbol); ok {
			keys = append(keys, SymbolKey(sym))
			continue
		}
		keys = append(keys, StringKey(values.Utf16ToUtf8(values.ToStringPrimitive(v))))
	}
	return keys
}

func proxyCallTrap(o *Object, thisArg Value, args []Value) (Value, error) {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "apply")
	if !ok {
		return target.Methods.Call(target, thisArg, args)
	}
	argsArray := NewArrayObject(values.TheNull, args)
	return ProxyCall(fn, handler, []Value{target, thisArg, argsArray})
}

func proxyConstructTrap(o *Object, args []Value, newTarget Value) (Value, error) {
	target, handler := proxyTarget(o), proxyHandler(o)
	fn, ok := trapFn(handler, "construct")
	if !ok {
		return target.Methods.Construct(target, args, newTarget)
	}
	argsArray := NewArrayObject(values.TheNull, args)
	return ProxyCall(fn, handler, []Value{target, argsArray, newTarget})
}

// descriptorFromObject implements a simplified ToPropertyDescriptor,
// reading the standard descriptor-shape fields off a plain object
// returned by a getOwnPropertyDescriptor trap.
func descriptorFromObject(obj *Object) *PropertyDescriptor {
	d := &PropertyDescriptor{}
	if obj.HasOwn(StringKey("get")) || obj.HasOwn(StringKey("set")) {
		d.Kind = AccessorDescriptor
		if obj.HasOwn(StringKey("get")) {
			d.Get, d.hasGet = obj.GetOwn(StringKey("get")), true
		}
		if obj.HasOwn(StringKey("set")) {
			d.Set, d.hasSet = obj.GetOwn(StringKey("set")), true
		}
	} else {
		d.Kind = DataDescriptor
		if obj.HasOwn(StringKey("value")) {
			d.Value, d.hasValue = obj.GetOwn(StringKey("value")), true
		}
		if obj.HasOwn(StringKey("writable")) {
			d.Writable, d.hasWritable = bool(values.ToBoolean(obj.GetOwn(StringKey("writable")))), true
		}
	}
	if obj.HasOwn(StringKey("enumerable")) {
		d.Enumerable, d.hasEnumerable = bool(values.ToBoolean(obj.GetOwn(StringKey("enumerable")))), true
	}
	if obj.HasOwn(StringKey("configurable")) {
		d.Configurable, d.hasConfigurable = bool(values.ToBoolean(obj.GetOwn(StringKey("configurable")))), true
	}
	return d
}

// descriptorToObject is the inverse of descriptorFromObject, used to pass
// a PropertyDescriptor to a defineProperty trap as a plain object.
func descriptorToObject(desc *PropertyDescriptor) *Object {
	obj := NewObject(values.TheNull)
	if desc.IsAccessor() {
		if desc.hasGet {
			obj.FastDefineEnumerable("get", desc.Get)
		}
		if desc.hasSet {
			obj.FastDefineEnumerable("set", desc.Set)
		}
	} else {
		if desc.hasValue {
			obj.FastDefineEnumerable("value", desc.Value)
		}
		if desc.hasWritable {
			obj.FastDefineEnumerable("writable", values.Boolean(desc.Writable))
		}
	}
	if desc.hasEnumerable {
		obj.FastDefineEnumerable("enumerable", values.Boolean(desc.Enumerable))
	}
	if desc.hasConfigurable {
		obj.FastDefineEnumerable("configurable", values.Boolean(desc.Configurable))
	}
	return obj
}
