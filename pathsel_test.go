package jsondec_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	jsondec "github.com/reoring/jsondec"
)

// TestAtPath_Select runs an inner decoder against the first query match.
func TestAtPath_Select(t *testing.T) {
	tree := map[string]any{
		"items": []any{
			map[string]any{"id": json.Number("1")},
			map[string]any{"id": json.Number("2")},
		},
	}
	d, err := jsondec.AtPath("$.items[1].id", jsondec.Int())
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}

	n, derr := d.Decode(context.Background(), tree)
	if derr != nil || n != 2 {
		t.Fatalf("expected 2, got v=%v err=%v", n, derr)
	}
}

// TestAtPath_NoMatch expects missing_key when the query selects nothing.
func TestAtPath_NoMatch(t *testing.T) {
	d := jsondec.MustAtPath("$.absent", jsondec.String())

	_, err := d.Decode(context.Background(), map[string]any{"present": "x"})
	derr, ok := jsondec.AsDecodeError(err)
	if !ok || derr.Code != jsondec.CodeMissingKey {
		t.Fatalf("expected missing_key, got %v", err)
	}
	if !strings.Contains(derr.Cause, "no value at path [$.absent]") {
		t.Fatalf("unexpected cause: %q", derr.Cause)
	}
}

// TestAtPath_InnerFailureWrapped checks that an inner failure gains a frame
// holding the queried value.
func TestAtPath_InnerFailureWrapped(t *testing.T) {
	tree := map[string]any{"n": "not-a-number"}
	d := jsondec.MustAtPath("$.n", jsondec.Int())

	_, err := d.Decode(context.Background(), tree)
	derr, ok := jsondec.AsDecodeError(err)
	if !ok || derr.Code != jsondec.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
	outer := derr.Frames[len(derr.Frames)-1]
	if _, ok := outer.Value.(map[string]any); !ok {
		t.Fatalf("expected outer frame to hold the queried value, got %#v", outer)
	}
}

// TestAtPath_InvalidExpression covers compile-time rejection and the panic
// variant.
func TestAtPath_InvalidExpression(t *testing.T) {
	if _, err := jsondec.AtPath("$[", jsondec.String()); err == nil {
		t.Fatalf("expected compile error for invalid expression")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustAtPath to panic on invalid expression")
		}
	}()
	jsondec.MustAtPath("$[", jsondec.String())
}
