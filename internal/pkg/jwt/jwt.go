package jwt

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the identity data embedded
// in every access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"uid"`
	UserEmail string `json:"email"`
	Role      string `json:"role"`
}

// JWT generates and verifies signed access tokens.
type JWT interface {
	Generate(userID int64, email, role string) (string, error)
	Verify(token string) (*Claims, error)
}

type contextKey struct{}

// SetAuth returns a context carrying the verified claims.
func SetAuth(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// GetAuth extracts the claims stored by SetAuth, or nil when the
// request was not authenticated.
func GetAuth(ctx context.Context) *Claims {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
