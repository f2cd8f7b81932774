package objects

// GetOwn is a convenience wrapper for [[Get]] with the object itself as
// the receiver, the overwhelmingly common case outside of Reflect.get
// and Proxy forwarding.
func (o *Object) GetOwn(key PropertyKey) Value { return o.Get(key, o) }

// SetOwn is the [[Set]] convenience counterpart to GetOwn.
func (o *Object) SetOwn(key PropertyKey, v Value) bool { return o.Set(key, v, o) }

// FastDefine installs a non-enumerable, writable, configurable data
// property — the shape realm bootstrap uses for most built-in methods
// (§4.3 "Realm initialization wires the canonical prototype graph").
func (o *Object) FastDefine(name string, v Value) {
	o.DefineOwnProperty(StringKey(name), NewDataDescriptor(v, true, false, true))
}

// FastDefineEnumerable installs a standard enumerable+writable+
// configurable data property, the shape of an ordinary script-created
// property.
func (o *Object) FastDefineEnumerable(name string, v Value) {
	o.DefineOwnProperty(StringKey(name), NewDataDescriptor(v, true, true, true))
}

// HasOwn reports whether key is an own property, without walking the
// prototype chain — the primitive behind Object.prototype.hasOwnProperty.
func (o *Object) HasOwn(key PropertyKey) bool {
	_, ok := o.GetOwnProperty(key)
	return ok
}

// Proto is a typed convenience accessor over GetPrototypeOf for callers
// that only deal in ordinary (non-Proxy) chains.
func (o *Object) Proto() *Object {
	if p, ok := o.GetPrototypeOf().(*Object); ok {
		return p
	}
	return nil
}

// WalkPrototypeChain invokes f for o and then each prototype in turn,
// stopping when f returns false or the chain reaches null. Used by
// for-in enumeration (§4.2 "Object... Iteration order") and instanceof.
func WalkPrototypeChain(o *Object, f func(*Object) bool) {
	cur := o
	for cur != nil {
		if !f(cur) {
			return
		}
		cur = cur.Proto()
	}
}

// SameValue-by-identity for object references: two *Object pointers are
// the same value iff they are the same pointer. Exposed as a helper
// because values.SameValue's default branch only has a generic Value
// interface to work with.
func Identical(a, b *Object) bool { return a == b }
