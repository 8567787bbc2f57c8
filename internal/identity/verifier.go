// Package identity verifies bearer credentials against an external identity
// provider and reports who the caller is.
package identity

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is the authenticated caller.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// TokenFromHeader extracts the token from an "Authorization: Bearer <token>" value.
func TokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return parts[1], nil
}
