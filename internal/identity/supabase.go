package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseVerifier asks Supabase Auth who owns the access token.
type SupabaseVerifier struct {
	auth gotrue.Client
}

func NewSupabaseVerifier(client *supabase.Client) *SupabaseVerifier {
	return &SupabaseVerifier{auth: client.Auth}
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	user, err := v.auth.WithToken(token).GetUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if user == nil || user.Email == "" {
		return nil, fmt.Errorf("%w: user has no email", ErrInvalidToken)
	}

	return &Principal{UID: user.ID.String(), Email: user.Email}, nil
}
