package builtins

import (
	"fmt"

	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/internal/values"
)

// BuildFunctionPrototype constructs %Function.prototype% eagerly (every
// other built-in needs it to exist before it can install its own
// methods). It builds only the prototype object; %Function% itself is
// not created here. Grounded on §4.3a "Function constructor,
// Function.prototype.{call,apply,bind,toString}".
func BuildFunctionPrototype() *objects.Object {
	proto := objects.NewObject(values.TheNull)
	proto.Class = "Function"
	// The prototype object is itself callable-but-a-no-op, per spec
	// (%Function.prototype% accepts any arguments and returns undefined).
	proto.Methods.Call = func(_ *objects.Object, _ objects.Value, _ []objects.Value) (objects.Value, error) {
		return values.TheUndefined, nil
	}
	return proto
}

// WireFunctionPrototypeMethods installs call/apply/bind/toString once
// funcProto (== itself) is available to parent them under.
func WireFunctionPrototypeMethods(proto objects.Value) {
	p, ok := proto.(*objects.Object)
	if !ok {
		return
	}
	p.FastDefine("call", objects.NewNativeFunction(proto, "call", 1, functionCall))
	p.FastDefine("apply", objects.NewNativeFunction(proto, "apply", 2, functionApply))
	p.FastDefine("bind", objects.NewNativeFunction(proto, "bind", 1, bindFunc(p)))
	p.FastDefine("toString", objects.NewNativeFunction(proto, "toString", 0, functionToString))
}

// BuildFunctionConstructor builds the `Function` global, which creates
// a callable object from a parameters+body string at runtime (dynamic
// `new Function(...)`). Dynamic function source compilation requires
// the engine's parser and is therefore only wired up once internal/
// engine registers a compile callback here; until then `new Function`
// raises rather than silently no-oping.
var CompileDynamicFunction func(params []string, body string) (*objects.Object, error)

func BuildFunctionConstructor(funcProto objects.Value) *objects.Object {
	construct := func(args []objects.Value, _ objects.Value) (objects.Value, error) {
		if CompileDynamicFunction == nil {
			return nil, fmt.Errorf("Function constructor is not available in this host")
		}
		params := make([]string, 0, maxInt(0, len(args)-1))
		body := ""
		if len(args) > 0 {
			body = values.Utf16ToUtf8(values.ToStringPrimitive(args[len(args)-1]))
			for _, a := range args[:len(args)-1] {
				params = append(params, values.Utf16ToUtf8(values.ToStringPrimitive(a)))
			}
		}
		return CompileDynamicFunction(params, body)
	}
	call := func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return construct(args, nil)
	}
	ctor := objects.NewNativeConstructor(funcProto, "Function", 1, call, construct)
	ctor.FastDefine("prototype", funcProto)
	return ctor
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func functionCall(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
	fn, ok := thisArg.(*objects.Object)
	if !ok || fn.Methods.Call == nil {
		return nil, notCallableErr(thisArg)
	}
	var callThis objects.Value = values.TheUndefined
	var rest []objects.Value
	if len(args) > 0 {
		callThis = args[0]
		rest = args[1:]
	}
	return fn.Methods.Call(fn, callThis, rest)
}

func functionApply(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
	fn, ok := thisArg.(*objects.Object)
	if !ok || fn.Methods.Call == nil {
		return nil, notCallableErr(thisArg)
	}
	var callThis objects.Value = values.TheUndefined
	if len(args) > 0 {
		callThis = args[0]
	}
	var rest []objects.Value
	if len(args) > 1 {
		rest = spreadArrayLike(args[1])
	}
	return fn.Methods.Call(fn, callThis, rest)
}

func bindFunc(funcProto *objects.Object) objects.NativeFunc {
	return func(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
		target, ok := thisArg.(*objects.Object)
		if !ok || target.Methods.Call == nil {
			return nil, notCallableErr(thisArg)
		}
		var boundThis objects.Value = values.TheUndefined
		var boundArgs []objects.Value
		if len(args) > 0 {
			boundThis = args[0]
			boundArgs = append(boundArgs, args[1:]...)
		}
		bound := objects.NewNativeFunction(funcProto, "bound", 0, func(_ objects.Value, callArgs []objects.Value) (objects.Value, error) {
			full := append(append([]objects.Value{}, boundArgs...), callArgs...)
			return target.Methods.Call(target, boundThis, full)
		})
		if target.Methods.Construct != nil {
			bound.Methods.Construct = func(_ *objects.Object, callArgs []objects.Value, newTarget objects.Value) (objects.Value, error) {
				full := append(append([]objects.Value{}, boundArgs...), callArgs...)
				return target.Methods.Construct(target, full, newTarget)
			}
		}
		return bound, nil
	}
}

func functionToString(thisArg objects.Value, _ []objects.Value) (objects.Value, error) {
	fn, ok := thisArg.(*objects.Object)
	if !ok {
		return values.NewString("function () {}"), nil
	}
	name := "anonymous"
	if s, ok := fn.Get(objects.StringKey("name"), fn).(values.String); ok && len(s) > 0 {
		name = values.Utf16ToUtf8(s)
	}
	return values.NewString("function " + name + "() { [native code] }"), nil
}

// notCallableErr is a plain Go error; the engine layer (which has a
// source position and the EngineError taxonomy) is responsible for
// turning this into a positioned TypeError before it reaches script
// try/catch (§4.5, §7) — this package has neither.
func notCallableErr(v objects.Value) error {
	return fmt.Errorf("%s is not a function", values.Utf16ToUtf8(values.ToStringPrimitive(v)))
}

// spreadArrayLike reads an array-like (array-indexed with a numeric
// length) argument list out of v, used by Function.prototype.apply's
// second argument (§4.3a).
func spreadArrayLike(v objects.Value) []objects.Value {
	o, ok := v.(*objects.Object)
	if !ok {
		return nil
	}
	lengthVal := o.Get(objects.StringKey("length"), o)
	length := int(values.ToNumberPrimitive(lengthVal))
	if length <= 0 {
		return nil
	}
	out := make([]objects.Value, length)
	for i := 0; i < length; i++ {
		out[i] = o.Get(objects.StringKey(values.Utf16ToUtf8(values.ToStringPrimitive(values.Number(i)))), o)
	}
	return out
}
