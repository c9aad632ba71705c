package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// Both failure modes surface verbatim as the 401 response body,
// hence the unusual capitalization.
var (
	ErrNoAuthHeader = errors.New("No authorization header")
	ErrInvalidAuth  = errors.New("Invalid authorization")
)

// Authorizer is the capability check guarding a route.
type Authorizer interface {
	// Authorize reports whether the request carries a valid credential
	Authorize(r *http.Request) error
}

// TokenAuthorizer checks requests against a static bearer token,
// established once at startup and never mutated.
type TokenAuthorizer struct {
	secret string
}

// Create new bearer token authorizer
func NewTokenAuthorizer(secret string) *TokenAuthorizer {
	return &TokenAuthorizer{secret: secret}
}

// Authorize expects an 'Authorization: Bearer <token>' header
// whose token equals the configured secret
func (a *TokenAuthorizer) Authorize(r *http.Request) error {

	header := r.Header.Get("Authorization")
	if header == "" {
		return ErrNoAuthHeader
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ErrInvalidAuth
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
		return ErrInvalidAuth
	}

	return nil
}
