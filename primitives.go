package jsondec

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// String returns the minimal string decoder.
func String() Decoder[string] {
	return Decoder[string]{run: func(_ context.Context, v any) (string, *DecodeError) {
		s, ok := v.(string)
		if !ok {
			return "", fail(CodeTypeMismatch, fmt.Sprintf("expected string, got %s", snapshot(v)), v)
		}
		return s, nil
	}}
}

// Bool returns the minimal bool decoder.
func Bool() Decoder[bool] {
	return Decoder[bool]{run: func(_ context.Context, v any) (bool, *DecodeError) {
		b, ok := v.(bool)
		if !ok {
			return false, fail(CodeTypeMismatch, fmt.Sprintf("expected bool, got %s", snapshot(v)), v)
		}
		return b, nil
	}}
}

// Null succeeds only on JSON null and yields nil.
func Null() Decoder[any] {
	return Decoder[any]{run: func(_ context.Context, v any) (any, *DecodeError) {
		if v != nil {
			return nil, fail(CodeTypeMismatch, fmt.Sprintf("expected null, got %s", snapshot(v)), v)
		}
		return nil, nil
	}}
}

// Value is the identity decoder; it accepts any subtree unchanged.
func Value() Decoder[any] {
	return Decoder[any]{run: func(_ context.Context, v any) (any, *DecodeError) {
		return v, nil
	}}
}

// NumberJSON decodes a JSON number preserving its textual form. float64
// input is accepted and canonicalized through the shortest representation.
func NumberJSON() Decoder[json.Number] {
	return Decoder[json.Number]{run: func(_ context.Context, v any) (json.Number, *DecodeError) {
		switch n := v.(type) {
		case json.Number:
			return n, nil
		case float64:
			return json.Number(strconvFormatFloat(n)), nil
		default:
			return "", fail(CodeTypeMismatch, fmt.Sprintf("expected number, got %s", snapshot(v)), v)
		}
	}}
}

// Int decodes an integer-valued JSON number with integer-only semantics.
func Int() Decoder[int64] {
	return Decoder[int64]{run: func(_ context.Context, v any) (int64, *DecodeError) {
		switch n := v.(type) {
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return 0, fail(CodeTypeMismatch, fmt.Sprintf("expected int, got %s", snapshot(v)), v)
			}
			return i, nil
		case float64:
			if math.Trunc(n) != n {
				return 0, fail(CodeTypeMismatch, fmt.Sprintf("expected int, got %s", snapshot(v)), v)
			}
			return int64(n), nil
		case int:
			// Direct ints accepted for hand-built trees.
			return int64(n), nil
		case int64:
			return n, nil
		default:
			return 0, fail(CodeTypeMismatch, fmt.Sprintf("expected int, got %s", snapshot(v)), v)
		}
	}}
}

// Float64 decodes any JSON number as a float64.
func Float64() Decoder[float64] {
	return Decoder[float64]{run: func(_ context.Context, v any) (float64, *DecodeError) {
		switch n := v.(type) {
		case json.Number:
			f, err := strconv.ParseFloat(n.String(), 64)
			if err != nil {
				return 0, fail(CodeTypeMismatch, fmt.Sprintf("expected number, got %s", snapshot(v)), v)
			}
			return f, nil
		case float64:
			return n, nil
		default:
			return 0, fail(CodeTypeMismatch, fmt.Sprintf("expected number, got %s", snapshot(v)), v)
		}
	}}
}

// strconvFormatFloat renders a float64 using the shortest JSON-compatible representation.
func strconvFormatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
