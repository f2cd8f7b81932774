package objects

import (
	"sort"

	"github.com/cwbudde/ecmacore/internal/values"
	"github.com/cwbudde/ecmacore/pkg/orderedmap"
)

// MethodTable is the "capability vtable for internal methods" of design
// note §9: exotic objects override selected entries and delegate the
// remainder to OrdinaryGet/OrdinarySet/etc. A nil entry always means
// "use the ordinary algorithm" — Object never has to special-case a
// half-initialized vtable.
type MethodTable struct {
	GetPrototypeOf     func(o *Object) Value
	SetPrototypeOf     func(o *Object, proto Value) bool
	IsExtensible       func(o *Object) bool
	PreventExtensions  func(o *Object) bool
	GetOwnProperty     func(o *Object, key PropertyKey) (*PropertyDescriptor, bool)
	DefineOwnProperty  func(o *Object, key PropertyKey, desc *PropertyDescriptor) bool
	HasProperty        func(o *Object, key PropertyKey) bool
	Get                func(o *Object, key PropertyKey, receiver Value) Value
	Set                func(o *Object, key PropertyKey, v Value, receiver Value) bool
	Delete             func(o *Object, key PropertyKey) bool
	OwnPropertyKeys    func(o *Object) []PropertyKey
	// Call/Construct are present only on callable exotic objects
	// (ordinary function objects, bound functions, proxies wrapping a
	// callable target); nil means "not callable"/"not a constructor".
	Call      func(o *Object, thisArg Value, args []Value) (Value, error)
	Construct func(o *Object, args []Value, newTarget Value) (Value, error)
}

// Value is an alias so this package reads naturally against spec prose
// ("a Value is ... an Object-reference") without re-exporting the whole
// values package surface at every call site.
type Value = values.Value

// Object is the runtime representation of every ordinary and exotic
// object (§3 "Object carries: a property table...; a prototype
// reference...; an [[Extensible]] flag; an internal slot bag...; and a
// set of virtualizable internal methods").
type Object struct {
	props       *orderedmap.Map[*PropertyDescriptor]
	intKeys     map[uint32]struct{} // tracks which stored keys are array indices, for OrdinaryOwnPropertyKeys ordering
	symbolOrder []*values.Symbol    // insertion order of symbol-keyed properties (mapKey erases the *Symbol pointer)
	proto       Value               // *Object or values.Null; nil means "not yet set" (treated as null)
	extensible  bool

	// Slots holds internal slots private to exotic subclasses
	// ([[ArrayLength]], [[DateValue]], [[PromiseState]], [[ErrorData]],
	// typed-array backing buffer, etc). Keyed by slot name rather than
	// a closed struct so every exotic kind can share the one Object type.
	Slots map[string]any

	// Class is the internal [[Class]]-like tag used by Object.prototype
	// .toString and by diagnostics; e.g. "Array", "Error", "RegExp".
	Class string

	Methods MethodTable
}

// NewObject creates a plain ordinary object with the given prototype
// (pass values.TheNull for Object.prototype-less objects, or the actual
// %Object.prototype% Value otherwise). Realm intrinsics wiring happens
// one layer up, in the realm bootstrap code.
func NewObject(proto Value) *Object {
	o := &Object{
		props:      orderedmap.New[*PropertyDescriptor](),
		intKeys:    make(map[uint32]struct{}),
		proto:      proto,
		extensible: true,
		Slots:      make(map[string]any),
		Class:      "Object",
	}
	return o
}

func (o *Object) ValueKind() values.Kind { return values.KindObject }
func (o *Object) DisplayString() string  { return "[object " + o.Class + "]" }

// ---- Ordinary internal methods (§4.2) ----

func (o *Object) GetPrototypeOf() Value {
	if o.Methods.GetPrototypeOf != nil {
		return o.Methods.GetPrototypeOf(o)
	}
	return o.OrdinaryGetPrototypeOf()
}

func (o *Object) OrdinaryGetPrototypeOf() Value {
	if o.proto == nil {
		return values.TheNull
	}
	return o.proto
}

func (o *Object) SetPrototypeOf(proto Value) bool {
	if o.Methods.SetPrototypeOf != nil {
		return o.Methods.SetPrototypeOf(o, proto)
	}
	return o.OrdinarySetPrototypeOf(proto)
}

// OrdinarySetPrototypeOf implements OrdinaryObject.[[SetPrototypeOf]],
// including the cycle check the spec's algorithm requires.
func (o *Object) OrdinarySetPrototypeOf(proto Value) bool {
	current := o.OrdinaryGetPrototypeOf()
	if values.SameValue(proto, current) {
		return true
	}
	if !o.extensible {
		return false
	}
	p := proto
	for {
		obj, ok := p.(*Object)
		if !ok {
			break // null or a Proxy target the caller already resolved
		}
		if obj == o {
			return false // would create a prototype cycle
		}
		if obj.Methods.GetPrototypeOf != nil {
			break // exotic GetPrototypeOf (e.g. Proxy): stop the ordinary cycle check
		}
		p = obj.OrdinaryGetPrototypeOf()
	}
	o.proto = proto
	return true
}

func (o *Object) IsExtensible() bool {
	if o.Methods.IsExtensible != nil {
		return o.Methods.IsExtensible(o)
	}
	return o.extensible
}

func (o *Object) PreventExtensions() bool {
	if o.Methods.PreventExtensions != nil {
		return o.Methods.PreventExtensions(o)
	}
	o.extensible = false
	return true
}

func (o *Object) GetOwnProperty(key PropertyKey) (*PropertyDescriptor, bool) {
	if o.Methods.GetOwnProperty != nil {
		return o.Methods.GetOwnProperty(o, key)
	}
	return o.OrdinaryGetOwnProperty(key)
}

func (o *Object) OrdinaryGetOwnProperty(key PropertyKey) (*PropertyDescriptor, bool) {
	d, ok := o.props.Get(key.mapKey())
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// DefineOwnProperty implements [[DefineOwnProperty]], dispatching to the
// exotic override when present, else OrdinaryDefineOwnProperty.
func (o *Object) DefineOwnProperty(key PropertyKey, desc *PropertyDescriptor) bool {
	if o.Methods.DefineOwnProperty != nil {
		return o.Methods.DefineOwnProperty(o, key, desc)
	}
	return o.OrdinaryDefineOwnProperty(key, desc)
}

// OrdinaryDefineOwnProperty implements ValidateAndApplyPropertyDescriptor
// (§3 invariants: "a non-configurable data descriptor cannot be turned
// into an accessor and cannot have its writable raised; reconfiguration
// failures raise TypeError only in strict contexts where the spec
// requires it" — the TypeError-raising happens one layer up in the
// engine's [[Set]]/Object.defineProperty wrappers; this method only
// reports success/failure).
func (o *Object) OrdinaryDefineOwnProperty(key PropertyKey, desc *PropertyDescriptor) bool {
	current, exists := o.props.Get(key.mapKey())
	if !exists {
		if !o.extensible {
			return false
		}
		merged := defaultedDescriptor(desc)
		o.storeProperty(key, merged)
		return true
	}
	if !current.Configurable {
		if desc.hasConfigurable && desc.Configurable {
			return false
		}
		if desc.hasEnumerable && desc.Enumerable != current.Enumerable {
			return false
		}
		if !desc.IsGenericDescriptor() && desc.IsAccessor() != current.IsAccessor() {
			return false
		}
		if current.IsAccessor() {
			if desc.hasGet && !sameFunc(desc.Get, current.Get) {
				return false
			}
			if desc.hasSet && !sameFunc(desc.Set, current.Set) {
				return false
			}
		} else {
			if !current.Writable {
				if desc.hasWritable && desc.Writable {
					return false
				}
				if desc.hasValue && !values.SameValue(desc.Value, current.Value) {
					return false
				}
			}
		}
	}
	merged := mergeDescriptor(current, desc)
	o.storeProperty(key, merged)
	return true
}

func sameFunc(a, b values.Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func defaultedDescriptor(desc *PropertyDescriptor) *PropertyDescriptor {
	if desc.IsAccessor() || desc.hasGet || desc.hasSet {
		d := &PropertyDescriptor{Kind: AccessorDescriptor}
		if desc.hasGet {
			d.Get = desc.Get
		}
		if desc.hasSet {
			d.Set = desc.Set
		}
		d.Enumerable = desc.hasEnumerable && desc.Enumerable
		d.Configurable = desc.hasConfigurable && desc.Configurable
		return d
	}
	d := &PropertyDescriptor{Kind: DataDescriptor}
	if desc.hasValue {
		d.Value = desc.Value
	} else {
		d.Value = values.TheUndefined
	}
	d.Writable = desc.hasWritable && desc.Writable
	d.Enumerable = desc.hasEnumerable && desc.Enumerable
	d.Configurable = desc.hasConfigurable && desc.Configurable
	return d
}

func mergeDescriptor(current, desc *PropertyDescriptor) *PropertyDescriptor {
	merged := current.Clone()
	if !desc.IsGenericDescriptor() && desc.IsAccessor() != current.IsAccessor() {
		// Converting data<->accessor: spec clears the fields of the old kind.
		if desc.IsAccessor() {
			merged.Kind = AccessorDescriptor
			merged.Value, merged.Writable = nil, false
			merged.Get, merged.Set = values.TheUndefined, values.TheUndefined
		} else {
			merged.Kind = DataDescriptor
			merged.Get, merged.Set = nil, nil
			merged.Value, merged.Writable = values.TheUndefined, false
		}
	}
	if desc.hasValue {
		merged.Value = desc.Value
	}
	if desc.hasWritable {
		merged.Writable = desc.Writable
	}
	if desc.hasGet {
		merged.Get = desc.Get
	}
	if desc.hasSet {
		merged.Set = desc.Set
	}
	if desc.hasEnumerable {
		merged.Enumerable = desc.Enumerable
	}
	if desc.hasConfigurable {
		merged.Configurable = desc.Configurable
	}
	merged.hasValue, merged.hasWritable = true, true
	merged.hasGet, merged.hasSet = true, true
	merged.hasEnumerable, merged.hasConfigurable = true, true
	return merged
}

func (o *Object) storeProperty(key PropertyKey, desc *PropertyDescriptor) {
	mk := key.mapKey()
	_, existed := o.props.Get(mk)
	o.props.Set(mk, desc)
	if key.IsSymbol() {
		if !existed {
			o.symbolOrder = append(o.symbolOrder, key.Symbol())
		}
		return
	}
	if idx, ok := IsArrayIndex(key.String()); ok {
		o.intKeys[idx] = struct{}{}
	}
}

func (o *Object) HasProperty(key PropertyKey) bool {
	if o.Methods.HasProperty != nil {
		return o.Methods.HasProperty(o, key)
	}
	return o.OrdinaryHasProperty(key)
}

func (o *Object) OrdinaryHasProperty(key PropertyKey) bool {
	if _, ok := o.GetOwnProperty(key); ok {
		return true
	}
	proto := o.GetPrototypeOf()
	if parent, ok := proto.(*Object); ok {
		return parent.HasProperty(key)
	}
	return false
}

func (o *Object) Get(key PropertyKey, receiver Value) Value {
	if o.Methods.Get != nil {
		return o.Methods.Get(o, key, receiver)
	}
	return o.OrdinaryGet(key, receiver)
}

// OrdinaryGet implements [[Get]]. Accessor invocation is delegated to an
// engine-supplied callback registered at realm-init time (GetAccessorCall)
// because invoking a getter may run arbitrary user code, which this
// package — kept free of the evaluator — cannot do on its own.
var GetAccessorCall func(getter Value, thisArg Value) Value

func (o *Object) OrdinaryGet(key PropertyKey, receiver Value) Value {
	desc, ok := o.GetOwnProperty(key)
	if !ok {
		proto := o.GetPrototypeOf()
		if parent, ok := proto.(*Object); ok {
			return parent.Get(key, receiver)
		}
		return values.TheUndefined
	}
	if desc.IsAccessor() {
		if desc.Get == nil || desc.Get.ValueKind() == values.KindUndefined {
			return values.TheUndefined
		}
		if GetAccessorCall != nil {
			return GetAccessorCall(desc.Get, receiver)
		}
		return values.TheUndefined
	}
	return desc.Value
}

// SetAccessorCall mirrors GetAccessorCall for [[Set]] invocation of a
// setter function; registered once by the engine at startup.
var SetAccessorCall func(setter Value, thisArg Value, arg Value)

func (o *Object) Set(key PropertyKey, v Value, receiver Value) bool {
	if o.Methods.Set != nil {
		return o.Methods.Set(o, key, v, receiver)
	}
	return o.OrdinarySet(key, v, receiver)
}

func (o *Object) OrdinarySet(key PropertyKey, v Value, receiver Value) bool {
	own, ok := o.GetOwnProperty(key)
	if !ok {
		proto := o.GetPrototypeOf()
		if parent, ok := proto.(*Object); ok {
			return parent.Set(key, v, receiver)
		}
		own = NewDataDescriptor(values.TheUndefined, true, true, true)
	}
	if own.IsAccessor() {
		if own.Set == nil || own.Set.ValueKind() == values.KindUndefined {
			return false
		}
		if SetAccessorCall != nil {
			SetAccessorCall(own.Set, receiver, v)
		}
		return true
	}
	if !own.Writable {
		return false
	}
	recvObj, ok := receiver.(*Object)
	if !ok {
		return false
	}
	existing, has := recvObj.GetOwnProperty(key)
	if has {
		if existing.IsAccessor() || !existing.Writable {
			return false
		}
		return recvObj.DefineOwnProperty(key, NewDataDescriptor(v, existing.Writable, existing.Enumerable, existing.Configurable))
	}
	return recvObj.DefineOwnProperty(key, NewDataDescriptor(v, true, true, true))
}

func (o *Object) Delete(key PropertyKey) bool {
	if o.Methods.Delete != nil {
		return o.Methods.Delete(o, key)
	}
	return o.OrdinaryDelete(key)
}

func (o *Object) OrdinaryDelete(key PropertyKey) bool {
	desc, ok := o.GetOwnProperty(key)
	if !ok {
		return true
	}
	if !desc.Configurable {
		return false
	}
	o.props.Delete(key.mapKey())
	if !key.IsSymbol() {
		if idx, ok := IsArrayIndex(key.String()); ok {
			delete(o.intKeys, idx)
		}
	} else {
		id := key.Symbol().ID()
		for i, s := range o.symbolOrder {
			if s.ID() == id {
				o.symbolOrder = append(o.symbolOrder[:i], o.symbolOrder[i+1:]...)
				break
			}
		}
	}
	return true
}

// OwnPropertyKeys implements [[OwnPropertyKeys]] (§3, §4.2 "Iteration
// order: integer-indexed keys ascending, then other string keys in
// insertion order, then symbol keys in insertion order").
func (o *Object) OwnPropertyKeys() []PropertyKey {
	if o.Methods.OwnPropertyKeys != nil {
		return o.Methods.OwnPropertyKeys(o)
	}
	return o.OrdinaryOwnPropertyKeys()
}

func (o *Object) OrdinaryOwnPropertyKeys() []PropertyKey {
	var intKeys []uint32
	var strKeys []string

	for idx := range o.intKeys {
		intKeys = append(intKeys, idx)
	}
	sort.Slice(intKeys, func(i, j int) bool { return intKeys[i] < intKeys[j] })

	seenInt := make(map[uint32]bool, len(intKeys))
	for _, i := range intKeys {
		seenInt[i] = true
	}

	o.props.Range(func(mk string, _ *PropertyDescriptor) bool {
		if len(mk) > 0 && mk[0] == '$' {
			s := mk[1:]
			if idx, ok := IsArrayIndex(s); ok && seenInt[idx] {
				return true
			}
			strKeys = append(strKeys, s)
		}
		return true
	})

	// Symbol keys need their original *Symbol pointer, which mapKey
	// erases; the object keeps a side list to preserve their insertion
	// order instead of trying to recover it from the string map.
	symKeys := o.symbolOrder

	keys := make([]PropertyKey, 0, len(intKeys)+len(strKeys)+len(symKeys))
	for _, i := range intKeys {
		keys = append(keys, StringKey(uitoa(uint64(i))))
	}
	for _, s := range strKeys {
		keys = append(keys, StringKey(s))
	}
	for _, s := range symKeys {
		keys = append(keys, SymbolKey(s))
	}
	return keys
}
