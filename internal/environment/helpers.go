package environment

import "github.com/cwbudde/ecmacore/internal/values"

func undef() Value { return values.TheUndefined }

func toBool(v Value) bool {
	if v == nil {
		return false
	}
	return bool(values.ToBoolean(v))
}

func unscopablesSymbol() *values.Symbol { return values.SymbolUnscopables }
