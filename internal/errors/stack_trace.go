package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ecmacore/pkg/source"
)

// StackFrame is a single call-stack entry, captured when a function
// invocation begins and rendered into a thrown error's `stack` string
// if the invocation is still active at throw time (§3, §7 "stack... a
// synthesized call stack built by snapshotting the execution-context
// chain at throw time").
//
// Grounded on the teacher's internal/errors/stack_trace.go StackFrame,
// generalized from a *lexer.Position pointer to the value-typed
// pkg/source.Position this module uses throughout.
type StackFrame struct {
	FunctionName string
	FileName     string
	Position     source.Position
}

// NewStackFrame creates a stack frame for functionName at position in
// fileName.
func NewStackFrame(functionName, fileName string, position source.Position) StackFrame {
	return StackFrame{FunctionName: functionName, FileName: fileName, Position: position}
}

// String renders "functionName (file:line:column)", the conventional
// V8-style stack line.
func (sf StackFrame) String() string {
	file := sf.FileName
	if file == "" {
		file = "<anonymous>"
	}
	return fmt.Sprintf("%s (%s:%d:%d)", sf.FunctionName, file, sf.Position.Line, sf.Position.Column)
}

// StackTrace is a complete call stack, oldest frame (bottom) first.
type StackTrace []StackFrame

// NewStackTrace creates an empty stack trace.
func NewStackTrace() StackTrace { return make(StackTrace, 0) }

// String renders frames most-recent-first, the order
// `Error.prototype.stack` conventionally uses, each on its own
// "    at ..." line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		b.WriteString("    at ")
		b.WriteString(st[i].String())
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

func (st StackTrace) Bottom() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[0]
}

func (st StackTrace) Depth() int { return len(st) }

// Reverse returns a copy with frames most-recent-first.
func (st StackTrace) Reverse() StackTrace {
	reversed := make(StackTrace, len(st))
	for i, frame := range st {
		reversed[len(st)-1-i] = frame
	}
	return reversed
}
