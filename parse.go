package jsondec

import (
	"context"
	"fmt"
	"io"

	jsonsrc "github.com/reoring/jsondec/source/json"
)

// ParseBytes builds the value tree from JSON bytes via source/json and runs
// the decoder against it. Duplicate object keys resolve first-occurrence-wins
// at the source layer; ParseOpt escalates them per Strictness (Ignore is the
// default, Warn forwards each duplicate to OnIssue, Error fails the parse
// with duplicate_key before the decoder runs).
func ParseBytes[T any](ctx context.Context, d Decoder[T], data []byte, opts ...ParseOpt) (T, error) {
	var zero T
	v, dups, err := jsonsrc.DecodeBytes(data)
	if err != nil {
		return zero, &DecodeError{Code: CodeParseError, Cause: err.Error()}
	}
	if err := applyStrictness(dups, opts); err != nil {
		return zero, err
	}
	return d.Decode(ctx, v)
}

// ParseReader is like ParseBytes but consumes an io.Reader.
func ParseReader[T any](ctx context.Context, d Decoder[T], r io.Reader, opts ...ParseOpt) (T, error) {
	var zero T
	v, dups, err := jsonsrc.DecodeReader(r)
	if err != nil {
		return zero, &DecodeError{Code: CodeParseError, Cause: err.Error()}
	}
	if err := applyStrictness(dups, opts); err != nil {
		return zero, err
	}
	return d.Decode(ctx, v)
}

func applyStrictness(dups []jsonsrc.Duplicate, opts []ParseOpt) error {
	if len(dups) == 0 {
		return nil
	}
	var opt ParseOpt
	if len(opts) > 0 {
		// Last option wins.
		opt = opts[len(opts)-1]
	}
	switch opt.Strictness.OnDuplicateKey {
	case Error:
		d := dups[0]
		return &DecodeError{Code: CodeDuplicateKey, Cause: fmt.Sprintf("duplicate key [%s] at %s", d.Key, d.Path)}
	case Warn:
		if opt.OnIssue != nil {
			for _, d := range dups {
				opt.OnIssue(SourceIssue{Code: CodeDuplicateKey, Path: d.Path, Key: d.Key})
			}
		}
	}
	return nil
}
