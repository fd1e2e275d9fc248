package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"invalid course", ErrInvalidCourse},
		{"invalid lesson", ErrInvalidLesson},
		{"invalid user", ErrInvalidUser},
		{"invalid post", ErrInvalidPost},
		{"invalid action", ErrInvalidAction},
		{"nothing selected", ErrNothingSelected},
		{"duplicate request", ErrDuplicateRequest},
		{"already processed", ErrAlreadyProcessed},
		{"not approved", ErrNotApproved},
		{"forbidden", ErrForbidden},
		{"payment write", ErrPaymentWrite},
		{"ingestion fetch", ErrIngestionFetch},
		{"ingestion running", ErrIngestionRunning},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}
