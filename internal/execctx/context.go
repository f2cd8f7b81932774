// Package execctx implements the L5-adjacent execution-context and realm
// machinery (§3): ExecutionContext, the per-engine context stack, and
// Realm. Grounded on the teacher's internal/interp/evaluator/context.go
// ExecutionContext (env/envStack/callStack/controlFlow fields, push/pop
// scope methods) and CallStack abstraction, generalized from DWScript's
// single environment-plus-flags model into the spec's
// `{ lexicalEnv, variableEnv, privateEnv, realm, function?, scriptOrModule? }`
// record (§3 "Execution Context").
package execctx

import (
	"github.com/cwbudde/ecmacore/internal/environment"
	"github.com/cwbudde/ecmacore/internal/objects"
)

// Value aliases the runtime value type.
type Value = objects.Value

// ExecutionContext is the spec's Execution Context record (§3):
// `{ lexicalEnv, variableEnv, privateEnv, realm, function?, scriptOrModule? }`.
// Pushed on call/eval, popped on return/throw.
type ExecutionContext struct {
	LexicalEnv    environment.Record
	VariableEnv   environment.Record
	PrivateEnv    *PrivateEnvironment
	Realm         *Realm
	Function      Value // nil for the top-level script/module context
	ScriptOrModule any  // *ast.Program or a module record; opaque here to avoid an import cycle with internal/modules
}

// PrivateEnvironment tracks private class field/method names (#x) visible
// to the currently executing code (§4.5 private fields/methods scoping).
// Kept minimal: a set of names plus an outer link, since private name
// resolution only ever needs membership testing.
type PrivateEnvironment struct {
	Names map[string]struct{}
	Outer *PrivateEnvironment
}

// NewPrivateEnvironment creates a private environment enclosed by outer.
func NewPrivateEnvironment(outer *PrivateEnvironment) *PrivateEnvironment {
	return &PrivateEnvironment{Names: make(map[string]struct{}), Outer: outer}
}

// Resolve reports whether name (without its leading '#') is visible from
// this private environment or any of its outer links.
func (p *PrivateEnvironment) Resolve(name string) bool {
	for cur := p; cur != nil; cur = cur.Outer {
		if _, ok := cur.Names[name]; ok {
			return true
		}
	}
	return false
}

// Stack is the per-engine execution context stack (§3 "A context stack
// is maintained per engine; at most one is active"). Grounded on the
// teacher's envStack push/pop pattern in ExecutionContext, lifted one
// layer up to stack whole contexts rather than just environments.
type Stack struct {
	frames []*ExecutionContext
}

// NewStack creates an empty execution context stack.
func NewStack() *Stack { return &Stack{} }

// Push makes ctx the active (running) execution context.
func (s *Stack) Push(ctx *ExecutionContext) { s.frames = append(s.frames, ctx) }

// Pop removes and returns the currently active execution context.
func (s *Stack) Pop() *ExecutionContext {
	if len(s.frames) == 0 {
		return nil
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top
}

// Current returns the active execution context, or nil if the stack is
// empty.
func (s *Stack) Current() *ExecutionContext {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Depth reports how many contexts are currently stacked, used to
// enforce the engine's call-depth quota (§2 "a quota budget (time, call
// depth, memory, statement count)").
func (s *Stack) Depth() int { return len(s.frames) }
