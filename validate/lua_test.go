package validate

import (
	"testing"
)

func TestScript_StringLength(t *testing.T) {
	fn, err := Script("#value > 0 and #value <= 5")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	mustAccept(t, fn, "abc")
	mustReject(t, fn, "")
	mustReject(t, fn, "toolong")
}

func TestScript_Numeric(t *testing.T) {
	fn, err := Script("value >= 1 and value <= 10")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	mustAccept(t, fn, 5)
	mustAccept(t, fn, 10.0)
	mustReject(t, fn, 0)
}

func TestScript_Table(t *testing.T) {
	fn, err := Script(`value.max ~= nil and value.max > 0`)
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	mustAccept(t, fn, map[string]any{"max": 10})
	mustReject(t, fn, map[string]any{"min": 1})
}

func TestScript_CompileError(t *testing.T) {
	if _, err := Script("((("); err == nil {
		t.Error("expected compile error")
	}
}

func TestScript_RuntimeError(t *testing.T) {
	fn, err := Script("value + 1 > 0")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	// Arithmetic on a non-numeric string fails at runtime
	if _, err := fn("abc"); err == nil {
		t.Error("expected runtime error")
	}
}

func TestScript_UnsupportedValue(t *testing.T) {
	fn, err := Script("value ~= nil")
	if err != nil {
		t.Fatalf("Script failed: %v", err)
	}

	if _, err := fn(make(chan int)); err == nil {
		t.Error("expected error for unsupported value type")
	}
}
