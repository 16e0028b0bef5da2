package server

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/sessions"
)

// decodeIdentityToken extracts identity claims from an ID token
// WITHOUT verifying its signature. Acceptable for a demo client;
// a production client must verify the token against the provider's
// JWKS before trusting any claim in it.
func decodeIdentityToken(rawIDToken string) (*sessions.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return nil, errors.Wrapf(err, "[decodeIdentityToken] malformed ID token")
	}

	identity := &sessions.Identity{}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if sub, ok := claims["sub"].(string); ok {
		identity.Subject = sub
	}

	return identity, nil
}
