package auth

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims accepted by the IBAN service. Subject identifies
// the calling client, Scopes lists the operations it may invoke.
type Claims struct {
	jwt.RegisteredClaims
	ClientID string   `json:"client_id,omitempty"`
	Scopes   []string `json:"scopes"`
}

// HasScope reports whether the claims grant scope. ScopeAdmin grants everything.
func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope) || slices.Contains(c.Scopes, ScopeAdmin)
}

// Scope constants
const (
	ScopeValidate = "iban:validate"
	ScopeRead     = "iban:read"
	ScopeAdmin    = "iban:admin"
)
