package jsondec

import (
	"context"
	"fmt"
)

// Field requires the current value to be an object and runs inner against
// the value stored under key. A missing key fails with a single frame that
// records both the key name and the object snapshot. When inner fails, its
// error is wrapped with one outer frame annotating the key and holding the
// object, so the chain reads failure-site first, this field next, then
// whatever encloses the field.
func Field[T any](key string, inner Decoder[T]) Decoder[T] {
	return Decoder[T]{run: func(ctx context.Context, v any) (T, *DecodeError) {
		var zero T
		obj, ok := v.(map[string]any)
		if !ok {
			return zero, fail(CodeNotAnObject, "expected object", v)
		}
		sub, ok := obj[key]
		if !ok {
			derr := fail(CodeMissingKey, fmt.Sprintf("missing key [%s]", key), v)
			derr.Frames[0].Key = key
			return zero, derr
		}
		out, derr := inner.run(ctx, sub)
		if derr != nil {
			return zero, PrependFrame(derr, Frame{Key: key, Index: -1, Value: v})
		}
		return out, nil
	}}
}

// FieldOpt is like Field but decodes an absent key to nil instead of
// failing. Present keys decode through inner as usual, null included.
func FieldOpt[T any](key string, inner Decoder[T]) Decoder[*T] {
	return Decoder[*T]{run: func(ctx context.Context, v any) (*T, *DecodeError) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fail(CodeNotAnObject, "expected object", v)
		}
		sub, ok := obj[key]
		if !ok {
			return nil, nil
		}
		out, derr := inner.run(ctx, sub)
		if derr != nil {
			return nil, PrependFrame(derr, Frame{Key: key, Index: -1, Value: v})
		}
		return &out, nil
	}}
}

type objectField struct {
	name string
	dec  Decoder[any]
}

// ObjectBuilder accumulates named field decoders in declaration order.
type ObjectBuilder struct {
	fields []objectField
}

// Object creates a new object builder.
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field registers a field decoder under the given key.
func (b *ObjectBuilder) Field(name string, d Decoder[any]) *ObjectBuilder {
	b.fields = append(b.fields, objectField{name: name, dec: d})
	return b
}

// Decoder finishes the builder with an identity constructor, yielding the
// decoded fields keyed by name.
func (b *ObjectBuilder) Decoder() Decoder[map[string]any] {
	return Finish(b, func(m map[string]any) map[string]any { return m })
}

// Finish evaluates every declared field decoder against the same input in
// declaration order and calls ctor with the decoded values. Evaluation stops
// at the first failing field; that field's error is returned as-is and later
// decoders never run. ctor is a total function over already-validated
// inputs. (Free function for Go version compatibility.)
func Finish[T any](b *ObjectBuilder, ctor func(fields map[string]any) T) Decoder[T] {
	// Snapshot the declarations so later builder mutation cannot leak in.
	decs := make([]Decoder[any], len(b.fields))
	names := make([]string, len(b.fields))
	for i, f := range b.fields {
		decs[i] = Field(f.name, f.dec)
		names[i] = f.name
	}
	return Decoder[T]{run: func(ctx context.Context, v any) (T, *DecodeError) {
		var zero T
		out := make(map[string]any, len(decs))
		for i, d := range decs {
			fv, derr := d.run(ctx, v)
			if derr != nil {
				return zero, derr
			}
			out[names[i]] = fv
		}
		return ctor(out), nil
	}}
}
