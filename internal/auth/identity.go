package auth

import (
	"net/http"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
)

// Resolver turns an inbound request into an authenticated identity or nil.
// It is the single path by which the rest of the API learns who is
// calling; no alternate authentication mechanism exists.
type Resolver struct {
	codec *TokenCodec
}

func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// CurrentIdentity resolves the session cookie to a verified claim. A
// missing cookie, an invalid token, and an expired token all return nil
// and are indistinguishable to the caller.
func (r *Resolver) CurrentIdentity(req *http.Request) *Claims {
	token := ReadToken(req)
	if token == "" {
		return nil
	}
	return r.codec.Verify(token)
}

// IsAuthenticated reports whether the request carries any valid identity
// with a known role. Pure predicate: the caller decides how to deny.
func (r *Resolver) IsAuthenticated(req *http.Request) bool {
	claims := r.CurrentIdentity(req)
	return claims != nil && claims.Role.Valid()
}

// IsAdmin reports whether the request carries a valid ADMIN identity.
func (r *Resolver) IsAdmin(req *http.Request) bool {
	claims := r.CurrentIdentity(req)
	return claims != nil && claims.Role == domain.RoleAdmin
}
