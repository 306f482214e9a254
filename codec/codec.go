// Package codec provides ready-made conversion decoders built on
// jsondec.Then for common wire-to-domain transformations.
package codec

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsondec "github.com/reoring/jsondec"
)

// TimeRFC3339 decodes an RFC3339 string into time.Time.
func TimeRFC3339() jsondec.Decoder[time.Time] {
	return jsondec.Then(jsondec.String(), func(_ context.Context, s string) (time.Time, error) {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid RFC3339 time %q", s)
		}
		return t, nil
	})
}

// UUID decodes a canonical UUID string.
func UUID() jsondec.Decoder[uuid.UUID] {
	return jsondec.Then(jsondec.String(), func(_ context.Context, s string) (uuid.UUID, error) {
		u, err := uuid.Parse(s)
		if err != nil {
			return uuid.UUID{}, fmt.Errorf("invalid UUID %q", s)
		}
		return u, nil
	})
}

// Enum decodes a string restricted to the allowed set.
func Enum[T ~string](allowed ...T) jsondec.Decoder[T] {
	set := make(map[string]T, len(allowed))
	for _, a := range allowed {
		set[string(a)] = a
	}
	return jsondec.Then(jsondec.String(), func(_ context.Context, s string) (T, error) {
		if v, ok := set[s]; ok {
			return v, nil
		}
		var zero T
		return zero, fmt.Errorf("expected one of %v, got %q", allowed, s)
	})
}
