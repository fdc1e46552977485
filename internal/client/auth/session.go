package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the token pair produced by a successful challenge-response
// exchange. Tokens live for the process lifetime; automatic refresh is NOT
// performed - an expired access token surfaces as an upstream 401/403. The
// refresh token is exposed so the caller can re-authenticate out-of-band.
type Session struct {
	access  string
	refresh string
}

// NewSession создает сессию из пары токенов
func NewSession(access, refresh string) *Session {
	return &Session{access: access, refresh: refresh}
}

// AccessToken returns the bearer access token
func (s *Session) AccessToken() string {
	return s.access
}

// RefreshToken returns the refresh token received at login.
// SDK сам его не использует; см. заметку в DESIGN.md.
func (s *Session) RefreshToken() string {
	return s.refresh
}

// AuthorizationHeader returns the header map for authenticated requests.
// Pure derivation, no mutation: repeated calls return identical maps.
func (s *Session) AuthorizationHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.access}
}

// ExpiresAt parses the access token without verifying the signature and
// returns its expiry claim. Best effort: ok is false when the token is not
// a JWT or carries no expiry.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(s.access, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
