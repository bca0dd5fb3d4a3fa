package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HTTP-only cookie carrying the signed session.
const SessionCookieName = "session"

var ErrInvalidSession = errors.New("invalid session token")

type SessionClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies session tokens. Expiry is purely
// time-based; there is no server-side revocation list.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), ttl: ttl}
}

func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

// Encode issues a fresh token for the caller, expiring TTL from now. The
// middleware calls this on every authenticated request so activity keeps a
// session alive.
func (c *SessionCodec) Encode(caller Caller) (string, time.Time, error) {
	expires := time.Now().Add(c.ttl)
	claims := &SessionClaims{
		UserID:   caller.ID,
		Username: caller.Username,
		IsAdmin:  caller.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

func (c *SessionCodec) Decode(token string) (Caller, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return c.secret, nil
	})
	if err != nil {
		return Caller{}, ErrInvalidSession
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return Caller{}, ErrInvalidSession
	}

	return Caller{ID: claims.UserID, Username: claims.Username, IsAdmin: claims.IsAdmin}, nil
}
