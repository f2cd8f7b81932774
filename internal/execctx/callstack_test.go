package execctx

import (
	"testing"

	"github.com/cwbudde/ecmacore/pkg/source"
)

func TestCallStackPushPop(t *testing.T) {
	cs := NewCallStack(4)
	if err := cs.Push("foo", "main.js", source.Position{Line: 1, Column: 1}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if cs.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", cs.Depth())
	}
	cs.Pop()
	if cs.Depth() != 0 {
		t.Errorf("expected depth 0 after pop, got %d", cs.Depth())
	}
}

func TestCallStackOverflow(t *testing.T) {
	cs := NewCallStack(2)
	cs.Push("a", "main.js", source.Position{})
	cs.Push("b", "main.js", source.Position{})
	if err := cs.Push("c", "main.js", source.Position{}); err == nil {
		t.Fatal("expected stack overflow error on third push past maxDepth=2")
	}
}

func TestCallStackDefaultMaxDepth(t *testing.T) {
	cs := NewCallStack(0)
	if cs.maxDepth != DefaultMaxCallDepth {
		t.Errorf("expected default max depth %d, got %d", DefaultMaxCallDepth, cs.maxDepth)
	}
}

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack()
	a := &ExecutionContext{}
	b := &ExecutionContext{}
	s.Push(a)
	s.Push(b)

	if s.Current() != b {
		t.Fatal("expected most recently pushed context to be current")
	}
	if s.Pop() != b {
		t.Fatal("expected Pop to return b first")
	}
	if s.Current() != a {
		t.Fatal("expected a to be current after popping b")
	}
	if s.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", s.Depth())
	}
}
