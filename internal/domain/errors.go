package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProviderNotConfigured marks a missing server-side credential. It is
	// raised before any network call is attempted.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrProviderFailure marks a non-success response from an external provider.
	ErrProviderFailure = errors.New("provider failure")

	// ErrBadProviderPayload marks a provider response that parsed but did not
	// match the expected shape.
	ErrBadProviderPayload = errors.New("unexpected provider payload")
)

// ValidationError accumulates every violated field of an inbound payload so
// the caller sees all problems in one round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Add(field string) {
	e.Fields = append(e.Fields, field)
}

// OrNil returns the error only when at least one violation was recorded. The
// nil interface return matters: a typed nil pointer would compare non-nil.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsValidation unwraps an error into a *ValidationError when applicable.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
