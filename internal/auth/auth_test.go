package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
)

func TestTokenAuthorizer(t *testing.T) {

	authorizer := NewTokenAuthorizer("secret-token")

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"valid token", "Bearer secret-token", nil},
		{"missing header", "", ErrNoAuthHeader},
		{"wrong scheme", "Basic secret-token", ErrInvalidAuth},
		{"wrong token", "Bearer other-token", ErrInvalidAuth},
		{"token only, no scheme", "secret-token", ErrInvalidAuth},
		{"empty bearer token", "Bearer ", ErrInvalidAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/transcript", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			err := authorizer.Authorize(r)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The error messages surface verbatim in the 401 response bodies
func TestAuthErrorMessages(t *testing.T) {

	if got, want := ErrNoAuthHeader.Error(), "No authorization header"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got, want := ErrInvalidAuth.Error(), "Invalid authorization"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
