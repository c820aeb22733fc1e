package session

import (
	"time"

	"vastra-store/internal/logger"
	"vastra-store/internal/storage"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys shared with the auth client.
const (
	AccessTokenKey = "access_token"
	UserEmailKey   = "user_email"
	UserDataKey    = "user_data"
)

// Navigator is the side effect fired when a gated action is attempted
// without a signed-in user.
type Navigator interface {
	RedirectToLogin()
}

// Gate answers "is the current user authenticated" from locally stored
// credentials. It never calls the network.
type Gate struct {
	kv  storage.Store
	now func() time.Time
}

func NewGate(kv storage.Store) *Gate {
	return &Gate{kv: kv, now: time.Now}
}

// IsAuthenticated reports whether a usable credential is present. A
// bearer token that parses as a JWT with an expiry in the past counts
// as absent; opaque tokens are trusted at face value.
func (g *Gate) IsAuthenticated() bool {
	token, ok := g.kv.Get(AccessTokenKey)
	if !ok || token == "" {
		return false
	}
	if expired, known := g.tokenExpired(token); known && expired {
		logger.L().Debug("stored access token expired")
		return false
	}
	return true
}

// UserEmail returns the signed-in user's email for display, empty when
// signed out.
func (g *Gate) UserEmail() string {
	email, _ := g.kv.Get(UserEmailKey)
	return email
}

// tokenExpired inspects the token without verifying its signature; the
// client holds no signing key and only needs the exp claim.
func (g *Gate) tokenExpired(tokenStr string) (expired, known bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return false, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, false
	}
	return exp.Before(g.now()), true
}
