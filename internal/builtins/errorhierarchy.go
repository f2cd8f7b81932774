// Package builtins implements the L3 intrinsic objects (§4.3/§4.3a): the
// global `Object`/`Function`/`Array`/`Error`/`Math`/... constructors and
// their prototype methods, wired onto a realm's prototype graph by
// internal/realm at bootstrap.
//
// Grounded on the teacher's internal/interp/builtins/*.go split-by-
// concern file layout (one file per built-in namespace), generalized
// from DWScript's RTL functions to ECMAScript's built-in objects.
package builtins

import (
	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/internal/values"
)

// ErrorKind names the native error constructor being built — the seven
// catchable kinds of §7 sharing one prototype-chain builder (§4.3a
// "Error, TypeError, RangeError, ReferenceError, SyntaxError, URIError,
// EvalError constructors sharing one prototype-chain builder").
type ErrorKind string

const (
	KindError          ErrorKind = "Error"
	KindTypeError      ErrorKind = "TypeError"
	KindRangeError     ErrorKind = "RangeError"
	KindReferenceError ErrorKind = "ReferenceError"
	KindSyntaxError    ErrorKind = "SyntaxError"
	KindURIError       ErrorKind = "URIError"
	KindEvalError      ErrorKind = "EvalError"
)

// allErrorKinds lists every subclass built alongside the base Error
// constructor, in the order %Error% wiring conventionally installs them.
var allErrorKinds = []ErrorKind{
	KindTypeError, KindRangeError, KindReferenceError,
	KindSyntaxError, KindURIError, KindEvalError,
}

// NewErrorObject builds an Error instance (§3 "Error carries [[ErrorData]]
// plus name/message/stack own properties"). `proto` selects the
// subclass (its chain supplies "name" unless overridden on the
// instance); "message" and "stack" are always own properties.
func NewErrorObject(proto objects.Value, message, stack string) *objects.Object {
	o := objects.NewObject(proto)
	o.Class = "Error"
	o.Slots["ErrorData"] = struct{}{}
	o.FastDefineEnumerable("message", values.NewString(message))
	o.FastDefine("stack", values.NewString(stack))
	return o
}

// BuildErrorHierarchy creates %Error.prototype% plus each subclass's
// prototype chained to it, and the seven constructor function objects,
// returning them keyed by kind so realm bootstrap can both install them
// as globals and register them in Realm.Intrinsics under
// "%<Kind>%"/"%<Kind>.prototype%".
//
// funcProto is %Function.prototype%, objectProto is %Object.prototype%
// — both must already exist (§4.3 "Realm initialization wires the
// canonical prototype graph first").
func BuildErrorHierarchy(objectProto, funcProto objects.Value) (constructors map[ErrorKind]*objects.Object, prototypes map[ErrorKind]*objects.Object) {
	constructors = make(map[ErrorKind]*objects.Object, len(allErrorKinds)+1)
	prototypes = make(map[ErrorKind]*objects.Object, len(allErrorKinds)+1)

	errorProto := objects.NewObject(objectProto)
	errorProto.Class = "Error"
	errorProto.FastDefine("name", values.NewString(string(KindError)))
	errorProto.FastDefine("message", values.NewString(""))
	errorProto.FastDefine("toString", objects.NewNativeFunction(funcProto, "toString", 0, errorToString))
	prototypes[KindError] = errorProto
	constructors[KindError] = newErrorConstructor(KindError, funcProto, errorProto)

	for _, kind := range allErrorKinds {
		proto := objects.NewObject(errorProto)
		proto.Class = "Error"
		proto.FastDefine("name", values.NewString(string(kind)))
		prototypes[kind] = proto
		constructors[kind] = newErrorConstructor(kind, funcProto, proto)
	}
	return constructors, prototypes
}

func newErrorConstructor(kind ErrorKind, funcProto, proto objects.Value) *objects.Object {
	name := string(kind)
	call := func(thisArg objects.Value, args []objects.Value) (objects.Value, error) {
		return buildErrorInstance(proto, args), nil
	}
	construct := func(args []objects.Value, newTarget objects.Value) (objects.Value, error) {
		return buildErrorInstance(proto, args), nil
	}
	ctor := objects.NewNativeConstructor(funcProto, name, 1, call, construct)
	if protoObj, ok := proto.(*objects.Object); ok {
		ctor.FastDefine("prototype", protoObj)
		protoObj.FastDefine("constructor", ctor)
	}
	return ctor
}

func buildErrorInstance(proto objects.Value, args []objects.Value) *objects.Object {
	message := ""
	if len(args) > 0 {
		if _, isUndef := args[0].(values.Undefined); !isUndef {
			message = values.Utf16ToUtf8(values.ToStringPrimitive(args[0]))
		}
	}
	return NewErrorObject(proto, message, "")
}

func errorToString(thisArg objects.Value, _ []objects.Value) (objects.Value, error) {
	o, ok := thisArg.(*objects.Object)
	if !ok {
		return values.NewString("Error"), nil
	}
	name := "Error"
	if s, ok := o.Get(objects.StringKey("name"), o).(values.String); ok {
		name = values.Utf16ToUtf8(s)
	}
	message := ""
	if s, ok := o.Get(objects.StringKey("message"), o).(values.String); ok {
		message = values.Utf16ToUtf8(s)
	}
	if message == "" {
		return values.NewString(name), nil
	}
	return values.NewString(name + ": " + message), nil
}
