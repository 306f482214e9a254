package jsondec

import "context"

// Array decodes a homogeneous array with the given element decoder. A
// failing element is wrapped with a frame recording its index and value.
func Array[T any](elem Decoder[T]) Decoder[[]T] {
	return Decoder[[]T]{run: func(ctx context.Context, v any) ([]T, *DecodeError) {
		elems, ok := v.([]any)
		if !ok {
			return nil, fail(CodeNotAnArray, "expected array", v)
		}
		out := make([]T, 0, len(elems))
		for i, e := range elems {
			ev, derr := elem.run(ctx, e)
			if derr != nil {
				return nil, PrependFrame(derr, Frame{Index: i, Value: e})
			}
			out = append(out, ev)
		}
		return out, nil
	}}
}

// Nullable decodes JSON null to nil and anything else through d.
func Nullable[T any](d Decoder[T]) Decoder[*T] {
	return Decoder[*T]{run: func(ctx context.Context, v any) (*T, *DecodeError) {
		if v == nil {
			return nil, nil
		}
		out, derr := d.run(ctx, v)
		if derr != nil {
			return nil, derr
		}
		return &out, nil
	}}
}
