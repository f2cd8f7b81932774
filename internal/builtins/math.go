package builtins

import (
	"math"
	"math/rand"

	"github.com/cwbudde/ecmacore/internal/objects"
	"github.com/cwbudde/ecmacore/internal/values"
)

// BuildMath constructs the `Math` namespace object (§4.3a "abs, floor,
// ceil, round, trunc, sign, pow, sqrt, cbrt, min, max, random, log*,
// trig"), grounded on the teacher's internal/interp/builtins/math*.go
// one-function-per-operation split, generalized from DWScript free
// functions to properties of a single namespace object.
func BuildMath(objectProto, funcProto objects.Value) *objects.Object {
	m := objects.NewObject(objectProto)
	m.Class = "Math"

	m.FastDefine("E", values.Number(math.E))
	m.FastDefine("PI", values.Number(math.Pi))
	m.FastDefine("LN2", values.Number(math.Ln2))
	m.FastDefine("LN10", values.Number(math.Log(10)))
	m.FastDefine("LOG2E", values.Number(1/math.Ln2))
	m.FastDefine("LOG10E", values.Number(1/math.Log(10)))
	m.FastDefine("SQRT2", values.Number(math.Sqrt2))
	m.FastDefine("SQRT1_2", values.Number(math.Sqrt(0.5)))

	unary := map[string]func(float64) float64{
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"trunc": math.Trunc,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"asinh": math.Asinh,
		"acosh": math.Acosh,
		"atanh": math.Atanh,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"log1p": math.Log1p,
		"exp":   math.Exp,
		"expm1": math.Expm1,
		"round": mathRound,
		"sign":  mathSign,
	}
	for name, fn := range unary {
		fn := fn
		m.FastDefine(name, objects.NewNativeFunction(funcProto, name, 1, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
			return values.Number(fn(float64(argNumber(args, 0)))), nil
		}))
	}

	m.FastDefine("pow", objects.NewNativeFunction(funcProto, "pow", 2, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return values.Number(math.Pow(float64(argNumber(args, 0)), float64(argNumber(args, 1)))), nil
	}))
	m.FastDefine("atan2", objects.NewNativeFunction(funcProto, "atan2", 2, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return values.Number(math.Atan2(float64(argNumber(args, 0)), float64(argNumber(args, 1)))), nil
	}))
	m.FastDefine("hypot", objects.NewNativeFunction(funcProto, "hypot", 2, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		sum := 0.0
		for i := range args {
			v := float64(argNumber(args, i))
			sum += v * v
		}
		return values.Number(math.Sqrt(sum)), nil
	}))
	m.FastDefine("min", objects.NewNativeFunction(funcProto, "min", 2, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return mathExtreme(args, false), nil
	}))
	m.FastDefine("max", objects.NewNativeFunction(funcProto, "max", 2, func(_ objects.Value, args []objects.Value) (objects.Value, error) {
		return mathExtreme(args, true), nil
	}))
	m.FastDefine("random", objects.NewNativeFunction(funcProto, "random", 0, func(_ objects.Value, _ []objects.Value) (objects.Value, error) {
		return values.Number(rand.Float64()), nil
	}))

	return m
}

func mathRound(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return math.Floor(f + 0.5)
}

func mathSign(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return f
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return f // preserves -0
	}
}

func mathExtreme(args []objects.Value, wantMax bool) values.Number {
	if len(args) == 0 {
		if wantMax {
			return values.Number(math.Inf(-1))
		}
		return values.Number(math.Inf(1))
	}
	best := float64(argNumber(args, 0))
	for i := 1; i < len(args); i++ {
		v := float64(argNumber(args, i))
		if math.IsNaN(v) || math.IsNaN(best) {
			return values.Number(math.NaN())
		}
		if (wantMax && v > best) || (!wantMax && v < best) {
			best = v
		}
	}
	return values.Number(best)
}

// argNumber reads args[i] coerced via ToNumberPrimitive, defaulting to
// NaN (the `undefined` coercion) when i is out of range.
func argNumber(args []objects.Value, i int) values.Number {
	if i >= len(args) {
		return values.Number(math.NaN())
	}
	return values.ToNumberPrimitive(args[i])
}
