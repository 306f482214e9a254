package jsondec

import (
	"context"
	"fmt"

	"github.com/theory/jsonpath"
)

// AtPath compiles a JSONPath expression and returns a decoder that runs
// inner against the first node the query selects. A query with no match
// fails with missing_key and a root frame holding the queried value.
func AtPath[T any](expr string, inner Decoder[T]) (Decoder[T], error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		var zero Decoder[T]
		return zero, fmt.Errorf("jsondec: invalid jsonpath %q: %w", expr, err)
	}
	return Decoder[T]{run: func(ctx context.Context, v any) (T, *DecodeError) {
		var zero T
		results := p.Select(v)
		if len(results) == 0 {
			return zero, fail(CodeMissingKey, fmt.Sprintf("no value at path [%s]", expr), v)
		}
		out, derr := inner.run(ctx, results[0])
		if derr != nil {
			return zero, PrependFrame(derr, Frame{Index: -1, Value: v})
		}
		return out, nil
	}}, nil
}

// MustAtPath is like AtPath but panics on an invalid expression.
func MustAtPath[T any](expr string, inner Decoder[T]) Decoder[T] {
	d, err := AtPath(expr, inner)
	if err != nil {
		panic(err)
	}
	return d
}
