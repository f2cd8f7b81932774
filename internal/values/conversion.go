package values

import (
	"math"
	"strconv"
	"strings"
)

// ToBoolean implements the abstract operation of the same name (§3) for
// every primitive kind. Object references are always truthy; the engine
// package never calls ToBoolean on an object-wrapped primitive without
// first unwrapping, so this function does not need to know about objects.
func ToBoolean(v Value) Boolean {
	switch x := v.(type) {
	case Undefined:
		return False
	case Null:
		return False
	case Boolean:
		return x
	case Number:
		f := float64(x)
		return Boolean(f != 0 && !math.IsNaN(f))
	case BigInt:
		return Boolean(x.V != nil && x.V.Sign() != 0)
	case String:
		return Boolean(len(x) > 0)
	case *Symbol:
		return True
	default:
		// Object references and anything else reaching here are truthy.
		return True
	}
}

// ToNumberPrimitive implements ToNumber (§3) for the primitive subset of
// Value. Object references require [[Get]]/Symbol.toPrimitive calls the
// engine package mediates; this function panics if handed an object so
// that a caller forgetting to pre-convert fails loudly in tests rather
// than silently miscomputing.
func ToNumberPrimitive(v Value) Number {
	switch x := v.(type) {
	case Undefined:
		return Number(math.NaN())
	case Null:
		return 0
	case Boolean:
		if x {
			return 1
		}
		return 0
	case Number:
		return x
	case String:
		return stringToNumber(x)
	case BigInt:
		panic("ToNumber: implicit BigInt-to-Number conversion is a TypeError, caller must check first")
	default:
		panic("ToNumberPrimitive called with a non-primitive value")
	}
}

// stringToNumber implements the StringToNumber grammar: optional
// whitespace, then a numeric literal (decimal, hex/octal/binary with a
// `0x`/`0o`/`0b` prefix, `Infinity`/`-Infinity`), or NaN for anything else.
// An all-whitespace or empty string is 0.
func stringToNumber(s String) Number {
	str := strings.TrimSpace(Utf16ToUtf8(s))
	if str == "" {
		return 0
	}
	switch str {
	case "Infinity", "+Infinity":
		return Number(math.Inf(1))
	case "-Infinity":
		return Number(math.Inf(-1))
	}
	lower := strings.ToLower(str)
	neg := false
	unsigned := lower
	if strings.HasPrefix(unsigned, "+") {
		unsigned = unsigned[1:]
	} else if strings.HasPrefix(unsigned, "-") {
		neg = true
		unsigned = unsigned[1:]
	}
	base := 0
	switch {
	case strings.HasPrefix(unsigned, "0x"):
		base = 16
		unsigned = unsigned[2:]
	case strings.HasPrefix(unsigned, "0o"):
		base = 8
		unsigned = unsigned[2:]
	case strings.HasPrefix(unsigned, "0b"):
		base = 2
		unsigned = unsigned[2:]
	}
	if base != 0 {
		n, err := strconv.ParseUint(unsigned, base, 64)
		if err != nil || unsigned == "" {
			return Number(math.NaN())
		}
		f := float64(n)
		if neg {
			f = -f
		}
		return Number(f)
	}
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return Number(math.NaN())
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return Number(math.NaN())
	}
	return Number(f)
}

// ToStringPrimitive implements ToString (§3) for the primitive subset.
// Object references go through the engine's ToPrimitive + method-call
// machinery instead.
func ToStringPrimitive(v Value) String {
	switch x := v.(type) {
	case Undefined:
		return NewString("undefined")
	case Null:
		return NewString("null")
	case Boolean:
		return NewString(x.DisplayString())
	case Number:
		return NewString(x.DisplayString())
	case BigInt:
		return NewString(x.DisplayString())
	case String:
		return x
	case *Symbol:
		panic("ToString: implicit Symbol-to-string conversion is a TypeError")
	default:
		panic("ToStringPrimitive called with a non-primitive value")
	}
}

// ToInt32 implements the ToInt32 abstract operation: ToNumber, then
// truncate toward zero modulo 2^32, reinterpreted as signed (§4.1).
func ToInt32(n Number) int32 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	m := math.Trunc(f)
	m = math.Mod(m, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	u := uint32(m)
	return int32(u)
}

// ToUint32 implements ToUint32 (§4.1).
func ToUint32(n Number) uint32 {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0
	}
	m := math.Trunc(f)
	m = math.Mod(m, 4294967296)
	if m < 0 {
		m += 4294967296
	}
	return uint32(m)
}

// ToInteger implements ToIntegerOrInfinity: ToNumber, then truncate
// toward zero (NaN becomes 0, infinities pass through) (§4.1).
func ToInteger(n Number) float64 {
	f := float64(n)
	if math.IsNaN(f) {
		return 0
	}
	if math.IsInf(f, 0) {
		return f
	}
	return math.Trunc(f)
}

// ToLength clamps ToInteger to [0, 2^53-1], the canonical "array-like
// length" coercion used by e.g. Array.prototype methods on arraylikes.
func ToLength(n Number) int64 {
	f := ToInteger(n)
	if f <= 0 {
		return 0
	}
	const maxLength = 1<<53 - 1
	if f > maxLength {
		return maxLength
	}
	return int64(f)
}
