package builtins

import (
	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/internal/values"
)

// BuildObject constructs %Object% and %Object.prototype% (§4.3a): the
// constructor with statics keys, values, entries, assign, freeze,
// isFrozen, defineProperty, getOwnPropertyDescriptor, getPrototypeOf,
// setPrototypeOf and create (Object.defineProperties is not installed),
// and Object.prototype with hasOwnProperty, toString, valueOf and
// isPrototypeOf; grounded on the teacher's
// internal/interp/builtins/registry.go bulk-registration pattern,
// generalized from name-keyed RTL functions to own properties of the
// constructor/prototype pair.
func BuildObject(funcProto objects.Value) (ctor, proto *objects.Object) {
	proto = objects.NewObject(values.TheNull)
	proto.Class = "Object"

	proto.FastDefine("hasOwnProperty", objects.NewNativeFunction(funcProto, "hasOwnProperty", 1, objectHasOwnProperty))
	proto.FastDefine("isPrototypeOf", objects.NewNativeFunction(funcProto, "isPrototypeOf", 1, objectIsPrototypeOf))
	proto.FastDefine("toString", objects.NewNativeFunction(funcProto, "toString", 0, objectToString))
	proto.FastDefine("valueOf", objects.NewNativeFunction(funcProto, "valueOf", 0, objectValueOf))

	call := func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return objectConstruct(proto, args)
	}
	construct := func(args []objects.Value, _ objects.Value) (objects.Value, error) {
		return objectConstruct(proto, args)
	}
	ctor = objects.NewNativeConstructor(funcProto, "Object", 1, call, construct)
	ctor.FastDefine("prototype", proto)
	proto.FastDefine("constructor", ctor)

	ctor.FastDefine("keys", objects.NewNativeFunction(funcProto, "keys", 1, objectKeys))
	ctor.FastDefine("values", objects.NewNativeFunction(funcProto, "values", 1, objectValues))
	ctor.FastDefine("entries", objects.NewNativeFunction(funcProto, "entries", 1, objectEntries))
	ctor.FastDefine("assign", objects.NewNativeFunction(funcProto, "assign", 2, objectAssign))
	ctor.FastDefine("freeze", objects.NewNativeFunction(funcProto, "freeze", 1, objectFreeze))
	ctor.FastDefine("isFrozen", objects.NewNativeFunction(funcProto, "isFrozen", 1, objectIsFrozen))
	ctor.FastDefine("create", objects.NewNativeFunction(funcProto, "create", 2, objectCreate))
	ctor.FastDefine("getPrototypeOf", objects.NewNativeFunction(funcProto, "getPrototypeOf", 1, objectGetPrototypeOf))
	ctor.FastDefine("setPrototypeOf", objects.NewNativeFunction(funcProto, "setPrototypeOf", 2, objectSetPrototypeOf))
	ctor.FastDefine("defineProperty", objects.NewNativeFunction(funcProto, "defineProperty", 3, objectDefineProperty))
	ctor.FastDefine("getOwnPropertyDescriptor", objects.NewNativeFunction(funcProto, "getOwnPropertyDescriptor", 2, objectGetOwnPropertyDescriptor))
	return ctor, proto
}

func objectConstruct(proto objects.Value, args []objects.Value) (objects.Value, error) {
	if len(args) > 0 {
		if o, ok := args[0].(*objects.Object); ok {
			return o, nil
		}
	}
	return objects.NewObject(proto), nil
}

func argObject(args []objects.Value, i int) (*objects.Object, bool) {
	if i >= len(args) {
		return nil, false
	}
	o, ok := args[i].(*objects.Object)
	return o, ok
}

func enumerableOwnStringKeys(o *objects.Object) []string {
	var out []string
	for _, key := range o.OwnPropertyKeys() {
		if key.IsSymbol() {
			continue
		}
		if desc, ok := o.GetOwnProperty(key); ok && desc.Enumerable {
			out = append(out, key.String())
		}
	}
	return out
}

func objectKeys(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return objects.NewArrayObject(values.TheNull, nil), nil
	}
	names := enumerableOwnStringKeys(o)
	out := make([]objects.Value, len(names))
	for i, n := range names {
		out[i] = values.NewString(n)
	}
	return objects.NewArrayObject(values.TheNull, out), nil
}

func objectValues(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return objects.NewArrayObject(values.TheNull, nil), nil
	}
	names := enumerableOwnStringKeys(o)
	out := make([]objects.Value, len(names))
	for i, n := range names {
		out[i] = o.Get(objects.StringKey(n), o)
	}
	return objects.NewArrayObject(values.TheNull, out), nil
}

func objectEntries(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return objects.NewArrayObject(values.TheNull, nil), nil
	}
	names := enumerableOwnStringKeys(o)
	out := make([]objects.Value, len(names))
	for i, n := range names {
		pair := objects.NewArrayObject(values.TheNull, []objects.Value{values.NewString(n), o.Get(objects.StringKey(n), o)})
		out[i] = pair
	}
	return objects.NewArrayObject(values.TheNull, out), nil
}

func objectAssign(_ objects.Value, args []objects.Value) (objects.Value, error) {
	target, ok := argObject(args, 0)
	if !ok {
		return values.TheUndefined, nil
	}
	for i := 1; i < len(args); i++ {
		src, ok := args[i].(*objects.Object)
		if !ok {
			continue
		}
		for _, name := range enumerableOwnStringKeys(src) {
			target.SetOwn(objects.StringKey(name), src.Get(objects.StringKey(name), src))
		}
	}
	return target, nil
}

func objectFreeze(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		if len(args) > 0 {
			return args[0], nil
		}
		return values.TheUndefined, nil
	}
	o.PreventExtensions()
	for _, key := range o.OwnPropertyKeys() {
		desc, _ := o.GetOwnProperty(key)
		c := desc.Clone()
		c.Configurable = false
		if !c.IsAccessor() {
			c.Writable = false
		}
		o.OrdinaryDefineOwnProperty(key, c)
	}
	return o, nil
}

func objectIsFrozen(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return values.Boolean(true), nil
	}
	if o.IsExtensible() {
		return values.Boolean(false), nil
	}
	for _, key := range o.OwnPropertyKeys() {
		desc, _ := o.GetOwnProperty(key)
		if desc.Configurable {
			return values.Boolean(false), nil
		}
		if !desc.IsAccessor() && desc.Writable {
			return values.Boolean(false), nil
		}
	}
	return values.Boolean(true), nil
}

func objectCreate(_ objects.Value, args []objects.Value) (objects.Value, error) {
	var proto objects.Value = values.TheNull
	if len(args) > 0 {
		proto = args[0]
	}
	o := objects.NewObject(proto)
	if props, ok := argObject(args, 1); ok {
		for _, name := range enumerableOwnStringKeys(props) {
			descObj, ok := props.Get(objects.StringKey(name), props).(*objects.Object)
			if !ok {
				continue
			}
			applyDescriptorObject(o, objects.StringKey(name), descObj)
		}
	}
	return o, nil
}

func objectGetPrototypeOf(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return values.TheNull, nil
	}
	return o.GetPrototypeOf(), nil
}

func objectSetPrototypeOf(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		if len(args) > 0 {
			return args[0], nil
		}
		return values.TheUndefined, nil
	}
	if len(args) > 1 {
		o.SetPrototypeOf(args[1])
	}
	return o, nil
}

func objectDefineProperty(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return values.TheUndefined, nil
	}
	if len(args) < 3 {
		return o, nil
	}
	key := objects.ToPropertyKey(args[1])
	descObj, ok := args[2].(*objects.Object)
	if !ok {
		return o, nil
	}
	applyDescriptorObject(o, key, descObj)
	return o, nil
}

// applyDescriptorObject converts a plain { value, writable, get, set,
// enumerable, configurable } object into a PropertyDescriptor and
// installs it — the ToPropertyDescriptor abstract operation (§3),
// merged with whatever own property already exists for default-field
// inheritance (an omitted field keeps the existing value, or falls back
// to all-false/undefined for a brand-new property).
func applyDescriptorObject(o *objects.Object, key objects.PropertyKey, descObj *objects.Object) {
	existing, hasExisting := o.GetOwnProperty(key)
	desc := &objects.PropertyDescriptor{}
	if hasExisting {
		desc = existing.Clone()
	}
	if descObj.HasOwn(objects.StringKey("value")) {
		desc.Kind = objects.DataDescriptor
		desc.Value = descObj.Get(objects.StringKey("value"), descObj)
	}
	if descObj.HasOwn(objects.StringKey("writable")) {
		desc.Writable = bool(values.ToBoolean(descObj.Get(objects.StringKey("writable"), descObj)))
	}
	if descObj.HasOwn(objects.StringKey("get")) {
		desc.Kind = objects.AccessorDescriptor
		desc.Get = descObj.Get(objects.StringKey("get"), descObj)
	}
	if descObj.HasOwn(objects.StringKey("set")) {
		desc.Kind = objects.AccessorDescriptor
		desc.Set = descObj.Get(objects.StringKey("set"), descObj)
	}
	if descObj.HasOwn(objects.StringKey("enumerable")) {
		desc.Enumerable = bool(values.ToBoolean(descObj.Get(objects.StringKey("enumerable"), descObj)))
	}
	if descObj.HasOwn(objects.StringKey("configurable")) {
		desc.Configurable = bool(values.ToBoolean(descObj.Get(objects.StringKey("configurable"), descObj)))
	}
	o.DefineOwnProperty(key, desc)
}

func objectGetOwnPropertyDescriptor(_ objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := argObject(args, 0)
	if !ok {
		return values.TheUndefined, nil
	}
	if len(args) < 2 {
		return values.TheUndefined, nil
	}
	desc, ok := o.GetOwnProperty(objects.ToPropertyKey(args[1]))
	if !ok {
		return values.TheUndefined, nil
	}
	return descriptorToPlainObject(desc), nil
}

func descriptorToPlainObject(desc *objects.PropertyDescriptor) *objects.Object {
	out := objects.NewObject(values.TheNull)
	if desc.IsAccessor() {
		out.FastDefineEnumerable("get", nonNilOrUndefined(desc.Get))
		out.FastDefineEnumerable("set", nonNilOrUndefined(desc.Set))
	} else {
		out.FastDefineEnumerable("value", nonNilOrUndefined(desc.Value))
		out.FastDefineEnumerable("writable", values.Boolean(desc.Writable))
	}
	out.FastDefineEnumerable("enumerable", values.Boolean(desc.Enumerable))
	out.FastDefineEnumerable("configurable", values.Boolean(desc.Configurable))
	return out
}

func nonNilOrUndefined(v objects.Value) objects.Value {
	if v == nil {
		return values.TheUndefined
	}
	return v
}

func objectHasOwnProperty(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
	o, ok := thisArg.(*objects.Object)
	if !ok || len(args) == 0 {
		return values.Boolean(false), nil
	}
	return values.Boolean(o.HasOwn(objects.ToPropertyKey(args[0]))), nil
}

func objectIsPrototypeOf(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
	self, ok := thisArg.(*objects.Object)
	if !ok || len(args) == 0 {
		return values.Boolean(false), nil
	}
	target, ok := args[0].(*objects.Object)
	if !ok {
		return values.Boolean(false), nil
	}
	found := false
	for cur := target.Proto(); cur != nil; cur = cur.Proto() {
		if cur == self {
			found = true
			break
		}
	}
	return values.Boolean(found), nil
}

func objectToString(thisArg objects.Value, _ []objects.Value) (objects.Value, error) {
	switch v := thisArg.(type) {
	case values.Undefined:
		return values.NewString("[object Undefined]"), nil
	case values.Null:
		return values.NewString("[object Null]"), nil
	case *objects.Object:
		return values.NewString("[object " + v.Class + "]"), nil
	default:
		return values.NewString("[object Object]"), nil
	}
}

func objectValueOf(thisArg objects.Value, _ []objects.Value) (objects.Value, error) {
	return thisArg, nil
}
