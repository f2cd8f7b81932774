package execctx

import (
	"github.com/cwbudde/ecmacore/internal/ast"
	"github.com/cwbudde/ecmacore/internal/environment"
	"github.com/cwbudde/ecmacore/internal/objects"
)

// Realm is the spec's Realm record (§3): `{ intrinsics, globalObject,
// globalEnv, templateMap }`. Multiple realms can coexist; cross-realm
// references are allowed but identity comparisons follow strict
// equality per value (§3) — nothing in this struct special-cases that,
// since values.SameValue/StrictEquals already only compare by pointer
// identity regardless of which realm an object came from.
type Realm struct {
	// Intrinsics maps well-known intrinsic names ("%Object.prototype%",
	// "%Array%", "%TypeError%", ...) to their realm-scoped object. Filled
	// in by the realm bootstrap code at realm creation time (§4.3 "Realm
	// initialization wires the canonical prototype graph first...").
	Intrinsics map[string]*objects.Object

	GlobalObject *objects.Object
	GlobalEnv    *environment.Global

	// TemplateMap caches the unique template object produced per
	// (lexically distinct) tagged template literal, as required by
	// GetTemplateObject (§4.1 tagged templates: "the same template
	// object is returned for repeated evaluations of the same literal").
	TemplateMap map[*ast.TaggedTemplateExpression]*objects.Object

	// CallStack is shared by every execution context running in this
	// realm, since the spec's "at most one [context] is active
	// (single-threaded model)" (§3) means only one call chain is ever
	// live per realm at a time.
	CallStack *CallStack
}

// NewRealm creates a realm around an already-constructed global object
// and global environment; the realm bootstrap code builds those and
// populates Intrinsics before handing the realm to the engine.
func NewRealm(globalObject *objects.Object, globalEnv *environment.Global, maxCallDepth int) *Realm {
	return &Realm{
		Intrinsics:   make(map[string]*objects.Object),
		GlobalObject: globalObject,
		GlobalEnv:    globalEnv,
		TemplateMap:  make(map[*ast.TaggedTemplateExpression]*objects.Object),
		CallStack:    NewCallStack(maxCallDepth),
	}
}

// Intrinsic looks up a well-known intrinsic by name, panicking if the
// realm was not fully initialized — every caller inside the engine runs
// only after intrinsics wiring completes, so a miss here means a
// genuine bootstrap bug rather than a recoverable runtime condition.
func (r *Realm) Intrinsic(name string) *objects.Object {
	obj, ok := r.Intrinsics[name]
	if !ok {
		panic("execctx: unknown intrinsic " + name)
	}
	return obj
}
