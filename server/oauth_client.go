package server

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"golang.org/x/oauth2"
)

// newOAuth2Config builds the oauth2 client configuration for the single
// configured provider. Endpoints come from AUTHORIZATION_URL/TOKEN_URL,
// or are resolved from ISSUER_URL via OIDC discovery when those are
// unset.
func newOAuth2Config(ctx context.Context, cfg config.Config) (*oauth2.Config, error) {
	endpoint := oauth2.Endpoint{
		AuthURL:  cfg.GetAuthorizationURL(),
		TokenURL: cfg.GetTokenURL(),
		// Client credentials travel form-encoded in the POST body,
		// alongside grant_type, code and redirect_uri
		AuthStyle: oauth2.AuthStyleInParams,
	}

	if endpoint.AuthURL == "" || endpoint.TokenURL == "" {
		issuer := cfg.GetIssuerURL()
		if issuer == "" {
			return nil, fmt.Errorf("[newOAuth2Config] set AUTHORIZATION_URL and TOKEN_URL, or ISSUER_URL for discovery")
		}

		provider, err := oidc.NewProvider(ctx, issuer)
		if err != nil {
			return nil, fmt.Errorf("[newOAuth2Config] OIDC discovery failed for %q: %w", issuer, err)
		}

		discovered := provider.Endpoint()
		endpoint.AuthURL = discovered.AuthURL
		endpoint.TokenURL = discovered.TokenURL
		endpoint.AuthStyle = oauth2.AuthStyleInParams
	}

	scopes := cfg.GetScopes()
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	return &oauth2.Config{
		ClientID:     cfg.GetClientID(),
		ClientSecret: cfg.GetClientSecret(),
		RedirectURL:  cfg.GetRedirectURI(),
		Endpoint:     endpoint,
		Scopes:       scopes,
	}, nil
}
