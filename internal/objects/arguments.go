package objects

import "github.com/cwbudde/ecmacore/internal/values"

// NewArgumentsObject builds the `arguments` exotic object available in
// non-arrow, non-strict function bodies (§4.5 "binds parameters...
// arguments object for non-arrow non-strict"). Strict-mode and arrow
// functions never create one; the engine simply does not call this.
//
// The unmapped (strict-like) form is used uniformly here: indexed
// properties are ordinary data properties copied from args rather than
// live aliases into the parameter bindings. Full spec compliance maps
// simple (non-destructured, non-default, non-rest) parameter lists onto
// live bindings; this engine accepts the unmapped-arguments simplification
// as a documented deviation (see DESIGN.md) since mapped arguments are a
// legacy sloppy-mode-only feature most hosts never rely on.
func NewArgumentsObject(proto Value, args []values.Value, calleeFn Value, iteratorFn Value) *Object {
	o := NewObject(proto)
	o.Class = "Arguments"
	for i, a := range args {
		o.OrdinaryDefineOwnProperty(StringKey(uitoa(uint64(i))), NewDataDescriptor(a, true, true, true))
	}
	o.storeProperty(StringKey(lengthKey), NewDataDescriptor(values.Number(float64(len(args))), true, false, true))
	o.storeProperty(StringKey("callee"), NewDataDescriptor(calleeFn, true, false, true))
	if iteratorFn != nil {
		o.storeProperty(SymbolKey(values.SymbolIterator), NewDataDescriptor(iteratorFn, true, false, true))
	}
	return o
}
