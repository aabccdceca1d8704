package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sabhahq/sabha/internal/errors"
)

// TokenClaims is the subset of JWT claims the console cares about for
// display purposes. Validation is the server's business; this parse is
// unverified and only informs the user.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry claim has passed
func (c TokenClaims) Expired() bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(time.Now())
}

// ParseTokenClaims extracts claims from a bearer token without
// verifying the signature.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	if token == "" {
		return nil, errors.New(errors.ErrCodeSessionInvalid, "no token present")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSessionInvalid, "token is not a parseable JWT", err)
	}

	claims := &TokenClaims{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
