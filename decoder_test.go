package jsondec_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	jsondec "github.com/reoring/jsondec"
)

// TestMap_Infallible covers the infallible post-conversion path.
func TestMap_Infallible(t *testing.T) {
	ctx := context.Background()
	upper := jsondec.Map(jsondec.Int(), func(i int64) string { return strconv.FormatInt(i*2, 10) })

	if v, err := upper.Decode(ctx, json.Number("21")); err != nil || v != "42" {
		t.Fatalf("map ok expected, got v=%v err=%v", v, err)
	}
	if _, err := upper.Decode(ctx, "nope"); err == nil {
		t.Fatalf("expected base failure to propagate through Map")
	}
}

// TestThen_ConversionFailure checks that a failing user conversion produces
// conversion_failed with the function's message as cause and a single root
// frame holding the raw value that was fed to it.
func TestThen_ConversionFailure(t *testing.T) {
	ctx := context.Background()
	positive := jsondec.Then(jsondec.Int(), func(_ context.Context, i int64) (int64, error) {
		if i <= 0 {
			return 0, fmt.Errorf("value must be positive, got %d", i)
		}
		return i, nil
	})

	if v, err := positive.Decode(ctx, json.Number("3")); err != nil || v != 3 {
		t.Fatalf("conversion ok expected, got v=%v err=%v", v, err)
	}

	_, err := positive.Decode(ctx, json.Number("-1"))
	derr, ok := jsondec.AsDecodeError(err)
	if !ok || derr.Code != jsondec.CodeConversionFailed {
		t.Fatalf("expected conversion_failed, got %v", err)
	}
	if derr.Cause != "value must be positive, got -1" {
		t.Fatalf("unexpected cause: %q", derr.Cause)
	}
	if len(derr.Frames) != 1 || derr.Frames[0].Value != int64(-1) {
		t.Fatalf("expected single root frame holding the raw scalar, got %#v", derr.Frames)
	}
}

// TestThen_BaseFailurePropagates checks that the conversion never runs on an
// already-failed path.
func TestThen_BaseFailurePropagates(t *testing.T) {
	calls := 0
	d := jsondec.Then(jsondec.String(), func(_ context.Context, s string) (string, error) {
		calls++
		return s, nil
	})

	_, err := d.Decode(context.Background(), true)
	derr, ok := jsondec.AsDecodeError(err)
	if !ok || derr.Code != jsondec.CodeTypeMismatch {
		t.Fatalf("expected base type_mismatch, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("conversion ran on a failed path: %d calls", calls)
	}
}

// TestRecover_PanickingConversion adapts a legacy raising function into the
// explicit outcome contract.
func TestRecover_PanickingConversion(t *testing.T) {
	ctx := context.Background()
	parse := jsondec.Recover(func(s string) int64 {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic("not a decimal: " + s)
		}
		return i
	})
	d := jsondec.Then(jsondec.String(), parse)

	if v, err := d.Decode(ctx, "42"); err != nil || v != 42 {
		t.Fatalf("recovered conversion ok expected, got v=%v err=%v", v, err)
	}

	_, err := d.Decode(ctx, "oops")
	derr, ok := jsondec.AsDecodeError(err)
	if !ok || derr.Code != jsondec.CodeConversionFailed {
		t.Fatalf("expected conversion_failed from recovered panic, got %v", err)
	}
	if derr.Cause != "not a decimal: oops" {
		t.Fatalf("unexpected cause: %q", derr.Cause)
	}
}

// TestNewDecoder_Extension covers the raw extension point.
func TestNewDecoder_Extension(t *testing.T) {
	always := jsondec.NewDecoder(func(_ context.Context, v any) (string, *jsondec.DecodeError) {
		return "ok", nil
	})
	if v, err := always.Decode(context.Background(), nil); err != nil || v != "ok" {
		t.Fatalf("extension decode ok expected, got v=%v err=%v", v, err)
	}
}

// TestDecode_Determinism decodes the same immutable tree twice and expects
// equal results and equal errors.
func TestDecode_Determinism(t *testing.T) {
	ctx := context.Background()
	tree := map[string]any{"a": json.Number("1"), "b": []any{"x", true}}
	d := jsondec.Object().
		Field("a", jsondec.Any(jsondec.Int())).
		Field("b", jsondec.Any(jsondec.Array(jsondec.Value()))).
		Decoder()

	v1, err1 := d.Decode(ctx, tree)
	v2, err2 := d.Decode(ctx, tree)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errs: %v %v", err1, err2)
	}
	if !reflect.DeepEqual(v1, v2) {
		t.Fatalf("non-deterministic results: %#v vs %#v", v1, v2)
	}

	bad := map[string]any{"a": "not-a-number"}
	_, e1 := d.Decode(ctx, bad)
	_, e2 := d.Decode(ctx, bad)
	if e1 == nil || e2 == nil || e1.Error() != e2.Error() {
		t.Fatalf("non-deterministic errors: %v vs %v", e1, e2)
	}
}

// TestFreeDecode_Wrapper checks the free-function entry point matches the
// method.
func TestFreeDecode_Wrapper(t *testing.T) {
	v, err := jsondec.Decode(context.Background(), jsondec.Bool(), true)
	if err != nil || v != true {
		t.Fatalf("free decode ok expected, got v=%v err=%v", v, err)
	}
	if _, err := jsondec.Decode(context.Background(), jsondec.Bool(), "x"); err == nil || !errorsIsDecode(err) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func errorsIsDecode(err error) bool {
	var de *jsondec.DecodeError
	return errors.As(err, &de)
}
