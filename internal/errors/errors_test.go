package errors

import (
	"testing"

	"github.com/cwbudde/ecmacore/pkg/source"
)

func TestKind_IsHostFatal(t *testing.T) {
	fatal := []Kind{QuotaExceededKind, HostReflectionForbiddenKind, InternalInvariantFailureKind}
	for _, k := range fatal {
		if !k.IsHostFatal() {
			t.Errorf("expected %s to be host-fatal", k)
		}
	}

	catchable := []Kind{SyntaxErrorKind, TypeErrorKind, ReferenceErrorKind, RangeErrorKind, URIErrorKind, EvalErrorKind}
	for _, k := range catchable {
		if k.IsHostFatal() {
			t.Errorf("expected %s to be catchable, not host-fatal", k)
		}
	}
}

func TestEngineError_Error(t *testing.T) {
	e := NewTypeError(source.Position{Line: 3, Column: 7}, "%s is not a function", "foo")
	want := "TypeError: foo is not a function (3:7)"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	noPos := NewQuotaExceeded("callDepth")
	want = "QuotaExceeded: quota exceeded: callDepth"
	if got := noPos.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEngineError_WithStack(t *testing.T) {
	base := NewRangeError(source.Position{}, "boom")
	trace := StackTrace{NewStackFrame("f", "a.js", source.Position{Line: 1, Column: 1})}
	withStack := base.WithStack(trace)

	if len(base.Stack) != 0 {
		t.Error("WithStack must not mutate the receiver")
	}
	if len(withStack.Stack) != 1 || withStack.Stack[0].FunctionName != "f" {
		t.Errorf("unexpected stack on copy: %+v", withStack.Stack)
	}
}

func TestErrAlreadyDeclared(t *testing.T) {
	e := ErrAlreadyDeclared(source.Position{Line: 1, Column: 1}, "x")
	if e.Kind != SyntaxErrorKind {
		t.Errorf("expected SyntaxError, got %s", e.Kind)
	}
	if e.Message != "x has already been declared" {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

func TestErrNotDefined(t *testing.T) {
	e := ErrNotDefined(source.Position{}, "y")
	if e.Kind != ReferenceErrorKind || e.Message != "y is not defined" {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestErrCannotAccessBeforeInit(t *testing.T) {
	e := ErrCannotAccessBeforeInit(source.Position{}, "z")
	want := "Cannot access 'z' before initialization"
	if e.Kind != ReferenceErrorKind || e.Message != want {
		t.Errorf("got %+v, want message %q", e, want)
	}
}

func TestErrAssignmentToConstant(t *testing.T) {
	e := ErrAssignmentToConstant(source.Position{})
	if e.Kind != TypeErrorKind || e.Message != "Assignment to constant variable." {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestErrNotCallable(t *testing.T) {
	e := ErrNotCallable(source.Position{}, "undefined")
	if e.Kind != TypeErrorKind || e.Message != "undefined is not a function" {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestErrMaxCallStackExceeded(t *testing.T) {
	e := ErrMaxCallStackExceeded()
	if e.Kind != RangeErrorKind || e.Message != "Maximum call stack size exceeded" {
		t.Errorf("unexpected error: %+v", e)
	}
}

func TestNewHostReflectionForbidden(t *testing.T) {
	e := NewHostReflectionForbidden()
	if e.Kind != HostReflectionForbiddenKind || !e.Kind.IsHostFatal() {
		t.Error("expected host-fatal HostReflectionForbidden kind")
	}
	if e.Message != ReflectionSandboxMessage {
		t.Errorf("got %q, want verbatim %q", e.Message, ReflectionSandboxMessage)
	}
}
