package objects

import (
	"fmt"

	"github.com/cwbudde/ecmacore/internal/values"
)

// NativeFunc is the Go-side signature every built-in (and host-provided
// FFI-bound) function implements: thisArg plus the argument list in,
// a Value or error out (§4.5 "a callable object... [[Call]]").
type NativeFunc func(thisArg Value, args []Value) (Value, error)

// NewNativeFunction builds a callable ordinary function object wrapping
// a Go implementation — the shape every L3 built-in (Object.keys,
// Array.prototype.map, Math.abs, ...) is installed as. Grounded on the
// teacher's pattern of registering a Go func under a name in
// internal/interp/builtins/registry.go, generalized so the wrapper is
// itself a first-class ECMAScript function object rather than a
// name-keyed dispatch table entry.
func NewNativeFunction(proto Value, name string, length int, fn NativeFunc) *Object {
	o := NewObject(proto)
	o.Class = "Function"
	o.Slots["NativeFunc"] = fn
	o.Methods.Call = func(_ *Object, thisArg Value, args []Value) (Value, error) {
		return fn(thisArg, args)
	}
	o.FastDefine("name", values.NewString(name))
	o.FastDefine("length", values.Number(float64(length)))
	return o
}

// NewNativeConstructor is NewNativeFunction plus a [[Construct]] slot,
// for built-ins callable both as `Foo()` and `new Foo()` (Array, Error,
// Map, ...) where the two forms share one Go implementation but differ
// in how the `this`/newTarget plumbing is handled by construct.
func NewNativeConstructor(proto Value, name string, length int, call NativeFunc, construct func(args []Value, newTarget Value) (Value, error)) *Object {
	o := NewNativeFunction(proto, name, length, call)
	o.Methods.Construct = func(_ *Object, args []Value, newTarget Value) (Value, error) {
		return construct(args, newTarget)
	}
	return o
}

// IsCallable reports whether v is an object with a [[Call]] internal
// method (§4.5).
func IsCallable(v Value) bool {
	o, ok := v.(*Object)
	return ok && o.Methods.Call != nil
}

// Call invokes o as a function, failing if it has no [[Call]] slot.
// Callers that already know o is callable (IsCallable checked, or a
// built-in constructor) can call o.Methods.Call directly instead. The
// engine layer is responsible for turning the returned plain error into
// a positioned TypeError (§4.5, §7) — this package has no source
// position to attach.
func Call(o *Object, thisArg Value, args []Value) (Value, error) {
	if o.Methods.Call == nil {
		return nil, fmt.Errorf("value is not callable")
	}
	return o.Methods.Call(o, thisArg, args)
}
