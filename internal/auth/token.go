package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// Claims is the identity payload carried by a session token. It is the
// whole session: nothing is stored server-side, and a new claim is minted
// only by a fresh login.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies session tokens. Verification accepts any
// key in the list so a secret rotation can run with the previous key still
// trusted; signing always uses the first (newest) key.
type TokenCodec struct {
	keys [][]byte
	ttl  time.Duration
}

// NewTokenCodec builds a codec from the active secret, an optional previous
// secret, and the validity window.
func NewTokenCodec(secret, previousSecret string, ttl time.Duration) *TokenCodec {
	keys := [][]byte{[]byte(secret)}
	if previousSecret != "" {
		keys = append(keys, []byte(previousSecret))
	}
	return &TokenCodec{keys: keys, ttl: ttl}
}

// TTL returns the validity window tokens are minted with.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Sign mints a token asserting the given identity, valid for the codec's
// window from now.
func (c *TokenCodec) Sign(userID, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.keys[0])
}

// Verify returns the claims asserted by token, or nil when the token is
// malformed, carries a bad signature, or has expired. The signature is
// checked before any payload field is trusted; an expired token is
// indistinguishable from an absent one to callers.
func (c *TokenCodec) Verify(token string) *Claims {
	for _, key := range c.keys {
		key := key
		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return key, nil
		})
		if err == nil && parsed.Valid {
			return claims
		}
	}
	return nil
}

// LooksLikeToken is the cheap structural pre-filter used by the admin edge
// guard: exactly three non-empty dot-separated segments. It proves nothing
// about authenticity — full verification still runs in every handler.
func LooksLikeToken(raw string) bool {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}
