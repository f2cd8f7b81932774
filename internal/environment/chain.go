package environment

// ResolveBinding implements the GetIdentifierReference algorithm (§4.4):
// walk the lexical environment chain from env outward, returning the
// first record that has name bound. Returns nil if no record in the
// chain has the binding — the caller (the engine) then raises the
// spec's unresolvable-reference ReferenceError.
func ResolveBinding(env Record, name string) Record {
	for cur := env; cur != nil; cur = cur.Outer() {
		if cur.HasBinding(name) {
			return cur
		}
	}
	return nil
}

// GetValue resolves name starting at env and reads its value, raising
// UnresolvableReferenceError if no record in the chain binds it.
func GetValue(env Record, name string, strict bool) (Value, error) {
	rec := ResolveBinding(env, name)
	if rec == nil {
		if strict {
			return nil, &UnresolvableReferenceError{Name: name}
		}
		return nil, &UnresolvableReferenceError{Name: name}
	}
	return rec.GetBindingValue(name, strict)
}

// SetValue resolves name starting at env and assigns v. An unresolvable
// name returns UnresolvableReferenceError in both strict and sloppy mode;
// for sloppy mode the engine creates the implicit global by falling back
// to the global record's object-record SetMutableBinding, which never
// reports missing as an error when strict is false.
func SetValue(env Record, name string, v Value, strict bool) error {
	rec := ResolveBinding(env, name)
	if rec == nil {
		if strict {
			return &UnresolvableReferenceError{Name: name}
		}
		return &UnresolvableReferenceError{Name: name}
	}
	return rec.SetMutableBinding(name, v, strict)
}

// ThisEnvironment implements GetThisEnvironment (§4.4): walk outward
// until a record reports HasThisBinding, used to resolve `this`/`super`/
// `new.target` lookups. Every environment record chain terminates in
// either a Function, Global, or Module record, all of which bind `this`,
// so the walk always succeeds for a well-formed chain.
func ThisEnvironment(env Record) Record {
	for cur := env; cur != nil; cur = cur.Outer() {
		if cur.HasThisBinding() {
			return cur
		}
	}
	return nil
}
