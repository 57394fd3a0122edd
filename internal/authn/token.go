package authn

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the session token carries an exp claim
// that is already in the past. The signature is not validated here;
// only the backend holds the signing key. A token that cannot be
// parsed, or one without an exp claim, is not treated as expired so the
// backend verify endpoint stays the authority.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
