// Package objects implements the L2 object model (spec §3, §4.2): the
// ordinary object algorithm, property descriptors, and the exotic-object
// overrides for arrays, arguments objects, and proxies.
//
// Grounded on the teacher's internal/interp/runtime/object.go,
// property.go, and array.go — one struct per runtime "shape" with a
// shared descriptor type — generalized from DWScript's class-instance/
// record/set value model to the ECMAScript ordinary+exotic object model.
package objects

import "github.com/cwbudde/ecmacore/internal/values"

// PropertyKey is either a string or a symbol (§3). Array-index keys are
// strings whose normalized form is a non-negative integer < 2^32-1; see
// IsArrayIndex.
type PropertyKey struct {
	str    string
	sym    *values.Symbol
	symbol bool
}

// StringKey builds a PropertyKey from a property name.
func StringKey(s string) PropertyKey { return PropertyKey{str: s} }

// SymbolKey builds a PropertyKey from a Symbol.
func SymbolKey(s *values.Symbol) PropertyKey { return PropertyKey{sym: s, symbol: true} }

// IsSymbol reports whether the key is a symbol key.
func (k PropertyKey) IsSymbol() bool { return k.symbol }

// String returns the string form of a non-symbol key; callers must check
// IsSymbol first.
func (k PropertyKey) String() string { return k.str }

// Symbol returns the symbol form of a symbol key; callers must check
// IsSymbol first.
func (k PropertyKey) Symbol() *values.Symbol { return k.sym }

// mapKey is the comparable form used to index the underlying ordered map:
// symbol keys are disambiguated by their unique id so two different
// symbols with the same description never collide.
func (k PropertyKey) mapKey() string {
	if k.symbol {
		return "@@sym:" + k.sym.DisplayString() + "#" + symbolIDString(k.sym)
	}
	return "$" + k.str // '$' prefix keeps string keys from colliding with the symbol namespace
}

func symbolIDString(s *values.Symbol) string {
	// A monotonic counter rendered as decimal is enough to disambiguate;
	// avoids importing strconv twice across files.
	return uitoa(s.ID())
}

func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// ToPropertyKey implements the ToPropertyKey abstract operation (§3):
// symbols pass through, everything else converts via ToString. Object
// arguments should already have been reduced to a primitive by the
// engine's ToPrimitive(hint=string) before reaching here.
func ToPropertyKey(v values.Value) PropertyKey {
	if sym, ok := v.(*values.Symbol); ok {
		return SymbolKey(sym)
	}
	return StringKey(values.Utf16ToUtf8(values.ToStringPrimitive(v)))
}

// IsArrayIndex reports whether a string key is a canonical array index:
// its decimal form with no leading zeros (except "0" itself) and value
// strictly less than 2^32-1 (§3).
func IsArrayIndex(s string) (uint32, bool) {
	if s == "" || len(s) > 10 {
		return 0, false
	}
	if s == "0" {
		return 0, true
	}
	if s[0] == '0' {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
		if n >= 4294967295 {
			return 0, false
		}
	}
	return uint32(n), true
}

// DescriptorKind distinguishes a data property descriptor from an
// accessor property descriptor (§3).
type DescriptorKind uint8

const (
	DataDescriptor DescriptorKind = iota
	AccessorDescriptor
)

// PropertyDescriptor is the tagged {data, accessor} variant of §3,
// collapsed into one struct with a Kind discriminant — "collapse the two
// into a uniform slot when writability and flags agree, for space" (§9)
// is realized here by reusing the same struct rather than an interface,
// so an all-default accessor descriptor costs no more than a data one.
type PropertyDescriptor struct {
	Kind DescriptorKind

	// Data descriptor fields.
	Value    values.Value
	Writable bool

	// Accessor descriptor fields. Get/Set are engine-level callables;
	// the objects package treats them as opaque values.Value so it does
	// not need to import the engine's function representation.
	Get values.Value
	Set values.Value

	// Shared fields.
	Enumerable   bool
	Configurable bool

	// present tracks which fields were explicitly supplied to
	// DefineOwnProperty, needed for descriptor-merge semantics when a
	// partial descriptor is layered onto an existing property.
	hasValue, hasWritable, hasGet, hasSet, hasEnumerable, hasConfigurable bool
}

// NewDataDescriptor builds a fully-specified data descriptor, as used for
// implicit property creation (e.g. an ordinary assignment).
func NewDataDescriptor(v values.Value, writable, enumerable, configurable bool) *PropertyDescriptor {
	return &PropertyDescriptor{
		Kind: DataDescriptor, Value: v, Writable: writable,
		Enumerable: enumerable, Configurable: configurable,
		hasValue: true, hasWritable: true, hasEnumerable: true, hasConfigurable: true,
	}
}

// NewAccessorDescriptor builds a fully-specified accessor descriptor.
func NewAccessorDescriptor(get, set values.Value, enumerable, configurable bool) *PropertyDescriptor {
	return &PropertyDescriptor{
		Kind: AccessorDescriptor, Get: get, Set: set,
		Enumerable: enumerable, Configurable: configurable,
		hasGet: true, hasSet: true, hasEnumerable: true, hasConfigurable: true,
	}
}

// IsAccessor reports whether this is an accessor descriptor.
func (d *PropertyDescriptor) IsAccessor() bool { return d.Kind == AccessorDescriptor }

// IsGenericDescriptor reports whether the descriptor specifies neither a
// value/writable pair nor a get/set pair — used by ValidateAndApply*
// merge logic in the spec's ValidateAndApplyPropertyDescriptor algorithm.
func (d *PropertyDescriptor) IsGenericDescriptor() bool {
	return !d.hasValue && !d.hasWritable && !d.hasGet && !d.hasSet
}

// Clone returns a shallow copy, used when GetOwnPropertyDescriptor hands
// a descriptor out to script code (mutating the returned descriptor must
// never affect the stored one).
func (d *PropertyDescriptor) Clone() *PropertyDescriptor {
	c := *d
	return &c
}
