package jsondec

import (
	"context"
	"fmt"
)

// Decoder is an immutable, reusable description of how to produce a T (or a
// DecodeError) from a JSON value tree. Decoders carry no per-call state and
// are safe to share across arbitrarily many concurrent decode calls.
type Decoder[T any] struct {
	run func(ctx context.Context, v any) (T, *DecodeError)
}

// NewDecoder wraps a raw decode function into a Decoder. It is the extension
// point for decoders that cannot be expressed through the built-in
// combinators.
func NewDecoder[T any](run func(ctx context.Context, v any) (T, *DecodeError)) Decoder[T] {
	return Decoder[T]{run: run}
}

// Decode runs the decoder against a value tree. On failure the returned error
// is a *DecodeError carrying the full traversal context.
func (d Decoder[T]) Decode(ctx context.Context, v any) (T, error) {
	out, derr := d.run(ctx, v)
	if derr != nil {
		var zero T
		return zero, derr
	}
	return out, nil
}

// Decode is a thin free-function wrapper around Decoder.Decode for call sites
// that read better with the decoder as an argument.
func Decode[T any](ctx context.Context, d Decoder[T], v any) (T, error) {
	return d.Decode(ctx, v)
}

// Map applies an infallible post-conversion to the decoded value.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return Decoder[B]{run: func(ctx context.Context, v any) (B, *DecodeError) {
		a, derr := d.run(ctx, v)
		if derr != nil {
			var zero B
			return zero, derr
		}
		return f(a), nil
	}}
}

// Then applies a fallible conversion to the decoded value. A base failure
// propagates unchanged; f never runs on an already-failed path. When f
// signals failure, the resulting error carries code conversion_failed, f's
// message as the cause, and a single root frame holding the raw value that
// was fed to f, ready to be wrapped by enclosing combinators like any other
// decode failure.
func Then[A, B any](d Decoder[A], f func(ctx context.Context, a A) (B, error)) Decoder[B] {
	return Decoder[B]{run: func(ctx context.Context, v any) (B, *DecodeError) {
		var zero B
		a, derr := d.run(ctx, v)
		if derr != nil {
			return zero, derr
		}
		b, err := f(ctx, a)
		if err != nil {
			return zero, fail(CodeConversionFailed, err.Error(), a)
		}
		return b, nil
	}}
}

// Recover adapts a legacy panicking conversion function into the explicit
// success/failure contract Then expects, so no fault ever reaches the engine.
func Recover[A, B any](f func(A) B) func(ctx context.Context, a A) (B, error) {
	return func(_ context.Context, a A) (out B, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero B
				out = zero
				err = fmt.Errorf("%v", r)
			}
		}()
		return f(a), nil
	}
}

// Any erases a typed decoder for heterogeneous composition in the object and
// tuple builders.
func Any[T any](d Decoder[T]) Decoder[any] {
	return Decoder[any]{run: func(ctx context.Context, v any) (any, *DecodeError) {
		out, derr := d.run(ctx, v)
		if derr != nil {
			return nil, derr
		}
		return out, nil
	}}
}
