package values

import "math"

// SameValue implements the SameValue algorithm: like strict equality
// except NaN equals itself and +0 is distinct from -0 (§4.1, §8 property 5
// is about strict equality specifically; SameValue is the stricter sibling
// used by e.g. Object.is and property-key comparison).
func SameValue(a, b Value) bool {
	if a.ValueKind() != b.ValueKind() {
		return false
	}
	switch x := a.(type) {
	case Undefined, Null:
		return true
	case Boolean:
		return x == b.(Boolean)
	case Number:
		y := b.(Number)
		if x.IsNaN() && y.IsNaN() {
			return true
		}
		if float64(x) == 0 && float64(y) == 0 {
			return math.Signbit(float64(x)) == math.Signbit(float64(y))
		}
		return x == y
	case BigInt:
		y := b.(BigInt)
		return bigIntEqual(x, y)
	case String:
		return utf16Equal(x, b.(String))
	case *Symbol:
		return x.ID() == b.(*Symbol).ID()
	default:
		// Object references (e.g. *objects.Object) and any other pointer
		// kind: compared by interface equality, i.e. pointer identity.
		return a == b
	}
}

// SameValueZero is SameValue except +0 and -0 are considered equal
// (used by Array.prototype.includes, Map/Set key comparison, §3).
func SameValueZero(a, b Value) bool {
	if an, ok := a.(Number); ok {
		if bn, ok := b.(Number); ok {
			if an.IsNaN() && bn.IsNaN() {
				return true
			}
			return float64(an) == float64(bn)
		}
		return false
	}
	return SameValue(a, b)
}

// StrictEquals implements `===`: SameValue except +0 === -0 and
// NaN !== NaN (§3, §8 property 5).
func StrictEquals(a, b Value) bool {
	if a.ValueKind() != b.ValueKind() {
		return false
	}
	switch x := a.(type) {
	case Number:
		y := b.(Number)
		return float64(x) == float64(y) // Go's == already gives NaN!=NaN, +0==-0
	default:
		return SameValue(a, b)
	}
}

func utf16Equal(a, b String) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bigIntEqual(a, b BigInt) bool {
	if a.V == nil || b.V == nil {
		return a.V == b.V
	}
	return a.V.Cmp(b.V) == 0
}
