package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"empty password", ErrEmptyPassword},
		{"empty avatar", ErrEmptyAvatar},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if stdErrors.Is(ErrNotFound, ErrInvalidCredentials) {
		t.Fatal("expected distinct sentinel errors")
	}
}
