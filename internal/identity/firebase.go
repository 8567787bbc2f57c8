package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

// FirebaseClaims are the claims of a Firebase ID token.
type FirebaseClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// FirebaseVerifier checks Firebase ID tokens locally against Google's
// published signing keys.
type FirebaseVerifier struct {
	projectID string
	keyfunc   jwt.Keyfunc
	jwks      *keyfunc.JWKS
}

func NewFirebaseVerifier(ctx context.Context, projectID, jwksURL string, logger *slog.Logger) (*FirebaseVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			logger.Error("Failed to refresh Firebase signing keys", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load Firebase JWKS: %v", err)
	}

	v := NewFirebaseVerifierWithKeyfunc(projectID, jwks.Keyfunc)
	v.jwks = jwks
	return v, nil
}

// NewFirebaseVerifierWithKeyfunc builds a verifier around a caller-supplied
// key lookup.
func NewFirebaseVerifierWithKeyfunc(projectID string, kf jwt.Keyfunc) *FirebaseVerifier {
	return &FirebaseVerifier{projectID: projectID, keyfunc: kf}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(token, &FirebaseClaims{}, v.keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*FirebaseClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrInvalidToken)
	}

	return &Principal{UID: claims.Subject, Email: claims.Email}, nil
}

// Close stops the background key refresh.
func (v *FirebaseVerifier) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}
