package config

import (
	"strings"
	"time"
)

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetAuthorizationURL() string
	GetTokenURL() string
	GetIssuerURL() string
	GetScopes() []string
	GetStateLength() int
	GetExchangeTimeout() time.Duration
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetClientID() string {
	return GetEnv("CLIENT_ID", "")
}

func (OAuth) GetClientSecret() string {
	return GetEnv("CLIENT_SECRET", "")
}

func (o OAuth) GetRedirectURI() string {
	return GetEnv("REDIRECT_URI", EnvVars{}.GetBaseURL()+"/callback")
}

// GetAuthorizationURL returns the provider's authorization endpoint.
// Leave unset (together with TOKEN_URL) to resolve endpoints from
// ISSUER_URL via OIDC discovery instead.
func (OAuth) GetAuthorizationURL() string {
	return GetEnv("AUTHORIZATION_URL", "")
}

func (OAuth) GetTokenURL() string {
	return GetEnv("TOKEN_URL", "")
}

func (OAuth) GetIssuerURL() string {
	return GetEnv("ISSUER_URL", "")
}

func (OAuth) GetScopes() []string {
	scopes := GetEnv("SCOPES", "openid profile email")
	return strings.Fields(scopes)
}

func (OAuth) GetStateLength() int {
	return 32 // 32 bytes = 256 bits
}

func (OAuth) GetExchangeTimeout() time.Duration {
	return 10 * time.Second
}
