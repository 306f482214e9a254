package jsondec

import (
	"errors"
	"fmt"
	"strings"

	j "github.com/goccy/go-json"
)

// Failure codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch     = "type_mismatch"
	CodeMissingKey       = "missing_key"
	CodeConversionFailed = "conversion_failed"
	CodeArrayExhausted   = "array_exhausted"
	CodeUnparsedElements = "unparsed_elements"
	CodeNotAnObject      = "not_an_object"
	CodeNotAnArray       = "not_an_array"
	// Source-layer codes (byte-level parsing and strictness escalation)
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
)

// Frame records one step of the traversal path at which a decode failure is
// visible. Key is the object key crossed at this step ("" when none), Index
// is the array index consumed at this step (-1 when none), and Value is the
// JSON subtree snapshot at this depth.
type Frame struct {
	Depth int
	Key   string
	Index int
	Value any
}

// RootFrame returns the innermost frame for a failure observed directly at v.
func RootFrame(v any) Frame { return Frame{Index: -1, Value: v} }

// DecodeError is the structured failure value for a decode call. Frames are
// ordered innermost to outermost; Depth is 0 at the failure site and grows by
// one per enclosing combinator. Leftover carries the unconsumed elements for
// unparsed_elements failures. A DecodeError is never mutated after it has
// been returned; enclosing combinators build new values via PrependFrame.
type DecodeError struct {
	Code     string
	Cause    string
	Frames   []Frame
	Leftover []any
}

// PrependFrame returns a new error whose frame chain gains f as the new
// outermost entry, with Depth set to the previous maximum plus one. The input
// error is left untouched.
func PrependFrame(e *DecodeError, f Frame) *DecodeError {
	frames := make([]Frame, len(e.Frames), len(e.Frames)+1)
	copy(frames, e.Frames)
	f.Depth = 0
	if n := len(frames); n > 0 {
		f.Depth = frames[n-1].Depth + 1
	}
	frames = append(frames, f)
	return &DecodeError{Code: e.Code, Cause: e.Cause, Frames: frames, Leftover: e.Leftover}
}

// Error renders the frame chain outermost-first, each step as
// "json context [<depth>]" with key/index annotations and the subtree
// snapshot, terminating in the cause string. The structured Frames/Cause
// data is the contract; this layout is presentation.
func (e *DecodeError) Error() string {
	b := &strings.Builder{}
	for i := len(e.Frames) - 1; i >= 0; i-- {
		fr := e.Frames[i]
		fmt.Fprintf(b, "json context [%d]", fr.Depth)
		if fr.Key != "" {
			fmt.Fprintf(b, " at key [%s]", fr.Key)
		}
		if fr.Index >= 0 {
			fmt.Fprintf(b, " at index [%d]", fr.Index)
		}
		b.WriteString("\n  ")
		b.WriteString(snapshot(fr.Value))
		b.WriteString("\n")
	}
	b.WriteString(e.Cause)
	return b.String()
}

// AsDecodeError extracts a *DecodeError from an error using errors.As
// internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// fail builds a terminal error with a single root frame holding v.
func fail(code, cause string, v any) *DecodeError {
	return &DecodeError{Code: code, Cause: cause, Frames: []Frame{RootFrame(v)}}
}

// snapshot renders a value subtree for embedding in messages.
func snapshot(v any) string {
	data, err := j.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
