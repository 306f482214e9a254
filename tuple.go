package jsondec

import (
	"context"
	"fmt"
)

// arrayCursor is the per-call position pointer into the array being decoded
// positionally. FinishTuple creates one for each decode invocation; it never
// escapes that call, so no locking is needed.
type arrayCursor struct {
	elems []any
	pos   int
}

// TupleBuilder accumulates positional element decoders (shift steps) in
// declaration order. Unlike object fields, which look up by name, shift
// steps consume a shared cursor and therefore must run in the order they
// were declared.
type TupleBuilder struct {
	steps    []Decoder[any]
	dropRest bool
}

// Tuple creates a new array-as-tuple builder.
func Tuple() *TupleBuilder { return &TupleBuilder{} }

// Shift appends a positional step that consumes the next array element.
func (b *TupleBuilder) Shift(d Decoder[any]) *TupleBuilder {
	b.steps = append(b.steps, d)
	return b
}

// DropRest permits trailing elements to remain unconsumed without failing.
func (b *TupleBuilder) DropRest() *TupleBuilder {
	b.dropRest = true
	return b
}

// Items finishes the builder with an identity constructor, yielding the
// consumed elements in shift order.
func (b *TupleBuilder) Items() Decoder[[]any] {
	return FinishTuple(b, func(items []any) []any { return items })
}

// FinishTuple requires the input to be an array and runs the declared shift
// steps in order against a fresh cursor. Evaluation stops at the first
// failing step. An exhausted cursor fails with array_exhausted; a failing
// element decoder is wrapped with a frame recording the consumed index and
// element. After all steps succeed, leftover elements fail with
// unparsed_elements unless DropRest was declared; the unconsumed elements
// are attached as the Leftover payload. (Free function for Go version
// compatibility.)
func FinishTuple[T any](b *TupleBuilder, ctor func(items []any) T) Decoder[T] {
	steps := append([]Decoder[any](nil), b.steps...)
	dropRest := b.dropRest
	return Decoder[T]{run: func(ctx context.Context, v any) (T, *DecodeError) {
		var zero T
		elems, ok := v.([]any)
		if !ok {
			return zero, fail(CodeNotAnArray, "expected array", v)
		}
		cur := arrayCursor{elems: elems}
		items := make([]any, 0, len(steps))
		for _, step := range steps {
			if cur.pos >= len(cur.elems) {
				return zero, fail(CodeArrayExhausted,
					fmt.Sprintf("expected at least %d elements, found %d", cur.pos+1, len(cur.elems)), v)
			}
			elem := cur.elems[cur.pos]
			cur.pos++
			out, derr := step.run(ctx, elem)
			if derr != nil {
				return zero, PrependFrame(derr, Frame{Index: cur.pos - 1, Value: elem})
			}
			items = append(items, out)
		}
		if !dropRest && cur.pos < len(cur.elems) {
			derr := fail(CodeUnparsedElements, "array_as_tuple has unparsed elements", v)
			derr.Leftover = append([]any(nil), cur.elems[cur.pos:]...)
			return zero, derr
		}
		return ctor(items), nil
	}}
}
