package execctx

import (
	"fmt"

	"github.com/cwbudde/ecmacore/internal/errors"
	"github.com/cwbudde/ecmacore/pkg/source"
)

// DefaultMaxCallDepth bounds recursion when no quota override is
// configured (§2 "a quota budget (time, call depth, memory, statement
// count)").
const DefaultMaxCallDepth = 1024

// CallStack tracks the chain of active function invocations, grounded on
// the teacher's internal/interp/evaluator/callstack.go: a bounded frame
// slice with push/pop and stack-overflow detection.
//
// Frames are errors.StackFrame values so a thrown error's `stack` can be
// synthesized directly from a snapshot of this stack (§3 "a synthesized
// call stack built by snapshotting the execution-context chain at throw
// time") without re-deriving a parallel frame type.
type CallStack struct {
	frames   errors.StackTrace
	maxDepth int
}

// NewCallStack creates a call stack with the given maximum depth; 0 or
// negative selects DefaultMaxCallDepth.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}
	return &CallStack{frames: errors.NewStackTrace(), maxDepth: maxDepth}
}

// Push adds a frame, reporting a stack-overflow error (the engine raises
// this as a RangeError, §6 "Maximum call stack size exceeded") instead
// of pushing past maxDepth.
func (cs *CallStack) Push(functionName, sourceFile string, pos source.Position) error {
	if len(cs.frames) >= cs.maxDepth {
		return fmt.Errorf("Maximum call stack size exceeded")
	}
	cs.frames = append(cs.frames, errors.NewStackFrame(functionName, sourceFile, pos))
	return nil
}

func (cs *CallStack) Pop() {
	if len(cs.frames) > 0 {
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
}

func (cs *CallStack) Depth() int { return len(cs.frames) }

// Frames returns a defensive copy, oldest call first.
func (cs *CallStack) Frames() errors.StackTrace {
	out := make(errors.StackTrace, len(cs.frames))
	copy(out, cs.frames)
	return out
}

// Snapshot returns the current frames as a StackTrace suitable for
// attaching to an EngineError via EngineError.WithStack.
func (cs *CallStack) Snapshot() errors.StackTrace { return cs.Frames() }

// String renders the frames top-of-stack first, the conventional
// `Error.prototype.stack` rendering order.
func (cs *CallStack) String() string { return cs.frames.String() }

func (cs *CallStack) Clear() { cs.frames = nil }
