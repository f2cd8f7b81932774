package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/ecmacore/pkg/source"
)

func TestStackFrame_String(t *testing.T) {
	tests := []struct {
		name     string
		frame    StackFrame
		expected string
	}{
		{
			name: "frame with position",
			frame: StackFrame{
				FunctionName: "myFunction",
				FileName:     "test.js",
				Position:     source.Position{Line: 10, Column: 5},
			},
			expected: "myFunction (test.js:10:5)",
		},
		{
			name: "frame with method name",
			frame: StackFrame{
				FunctionName: "MyClass.myMethod",
				FileName:     "test.js",
				Position:     source.Position{Line: 42, Column: 15},
			},
			expected: "MyClass.myMethod (test.js:42:15)",
		},
		{
			name: "frame with no file name falls back to anonymous",
			frame: StackFrame{
				FunctionName: "<anonymous>",
				Position:     source.Position{Line: 7, Column: 1},
			},
			expected: "<anonymous> (<anonymous>:7:1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.frame.String(); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestStackTrace_String(t *testing.T) {
	trace := StackTrace{
		{FunctionName: "main", FileName: "main.js", Position: source.Position{Line: 20, Column: 1}},
		{FunctionName: "processData", FileName: "main.js", Position: source.Position{Line: 30, Column: 5}},
		{FunctionName: "validateInput", FileName: "main.js", Position: source.Position{Line: 10, Column: 3}},
	}

	result := trace.String()
	lines := strings.Split(result, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), result)
	}
	if !strings.Contains(lines[0], "validateInput") {
		t.Errorf("expected most recent frame first, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "main") {
		t.Errorf("expected oldest frame last, got %q", lines[2])
	}
}

func TestStackTrace_EmptyString(t *testing.T) {
	if s := (StackTrace{}).String(); s != "" {
		t.Errorf("expected empty string for empty trace, got %q", s)
	}
}

func TestStackTrace_Reverse(t *testing.T) {
	original := StackTrace{
		{FunctionName: "first"},
		{FunctionName: "second"},
		{FunctionName: "third"},
	}
	reversed := original.Reverse()

	if reversed[0].FunctionName != "third" || reversed[2].FunctionName != "first" {
		t.Errorf("unexpected reversed order: %+v", reversed)
	}
	if original[0].FunctionName != "first" {
		t.Error("Reverse must not mutate the original trace")
	}
}

func TestStackTrace_TopAndBottom(t *testing.T) {
	empty := StackTrace{}
	if empty.Top() != nil || empty.Bottom() != nil {
		t.Error("expected nil Top/Bottom on empty trace")
	}

	trace := StackTrace{{FunctionName: "main"}, {FunctionName: "callee"}}
	if trace.Top().FunctionName != "callee" {
		t.Errorf("expected Top to be the most recently pushed frame, got %q", trace.Top().FunctionName)
	}
	if trace.Bottom().FunctionName != "main" {
		t.Errorf("expected Bottom to be the original caller, got %q", trace.Bottom().FunctionName)
	}
}

func TestStackTrace_Depth(t *testing.T) {
	if (StackTrace{}).Depth() != 0 {
		t.Error("expected depth 0 for empty trace")
	}
	trace := StackTrace{{}, {}, {}}
	if trace.Depth() != 3 {
		t.Errorf("expected depth 3, got %d", trace.Depth())
	}
}

func TestNewStackFrameAndTrace(t *testing.T) {
	frame := NewStackFrame("testFunc", "test.js", source.Position{Line: 42, Column: 13})
	if frame.FunctionName != "testFunc" || frame.FileName != "test.js" || frame.Position.Line != 42 {
		t.Errorf("unexpected frame: %+v", frame)
	}

	trace := NewStackTrace()
	if trace == nil || len(trace) != 0 {
		t.Error("expected a non-nil empty trace")
	}
}
