package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/rs/zerolog/log"
)

// exchangeFailureHints lists the usual suspects when the token
// endpoint rejects an exchange. Shown on the 500 page.
var exchangeFailureHints = []string{
	"Authorization code already used (codes are single-use)",
	"Authorization code expired (usually valid for 10 minutes)",
	"Invalid client credentials",
	"Redirect URI mismatch",
}

// CallbackHandler completes the authorization code flow (GET or POST
// /callback). Order matters: a provider-reported error is handled
// before any state or network work, the anti-forgery state is compared
// exactly once and consumed, and only then is the code exchanged for
// tokens over the back channel.
func (s *Server) CallbackHandler() http.HandlerFunc {
	errorTmpl, err := ParseTemplate("error.html")
	if err != nil {
		panic("Failed to parse error template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// r.FormValue works for both query params and POST form data
		// (form_post response mode)
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")
		errorDesc := r.FormValue("error_description")

		// Provider-reported authorization errors terminate the flow
		// before any state lookup or network call
		if errorParam != "" {
			if errorDesc == "" {
				errorDesc = "No description provided"
			}
			renderErrorPage(w, errorTmpl, http.StatusBadRequest, ErrorPageData{
				Title:   "Authorization Error",
				Message: fmt.Sprintf("Error: %s - %s", errorParam, errorDesc),
			})
			return
		}

		sessionID, session := s.sessionFromRequest(r)
		storedState := session.OAuthState

		// Consume the stored state before comparing: it is single-use
		// whether or not the comparison succeeds
		if sessionID != "" && storedState != "" {
			session.OAuthState = ""
			if err := s.sessions.Upsert(sessionID, session); err != nil {
				log.Err(err).Msg("Callback: failed to clear state")
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		if state == "" || storedState == "" || state != storedState {
			log.Warn().Err(errors.ErrStateMismatch).Msg("Callback: state validation failed")
			renderErrorPage(w, errorTmpl, http.StatusForbidden, ErrorPageData{
				Title:   "Invalid State Parameter",
				Message: "Possible CSRF attack detected. State mismatch.",
			})
			return
		}

		if code == "" {
			http.Error(w, "No authorization code received", http.StatusBadRequest)
			return
		}

		// Exchange the authorization code for tokens, server-side with
		// the client secret. The secret never reaches the browser.
		ctx, cancel := context.WithTimeout(r.Context(), s.config.GetExchangeTimeout())
		defer cancel()

		oauth2Token, err := s.oauth2Config.Exchange(ctx, code)
		if err != nil {
			log.Err(err).Msg("Callback: token exchange failed")
			renderErrorPage(w, errorTmpl, http.StatusInternalServerError, ErrorPageData{
				Title:   "Token Exchange Failed",
				Message: fmt.Sprintf("Error: %v", err),
				Hints:   exchangeFailureHints,
			})
			return
		}

		session.AccessToken = oauth2Token.AccessToken
		session.RefreshToken = oauth2Token.RefreshToken

		// Opportunistically decode the ID token if the provider sent
		// one. A missing or undecodable token leaves the session
		// authenticated but anonymous.
		if rawIDToken, ok := oauth2Token.Extra("id_token").(string); ok && rawIDToken != "" {
			identity, err := decodeIdentityToken(rawIDToken)
			if err != nil {
				log.Warn().Err(err).Msg("Callback: failed to decode ID token")
			} else {
				session.User = identity
			}
		}

		session.UpdatedAt = time.Now()
		if err := s.sessions.Upsert(sessionID, session); err != nil {
			log.Err(err).Msg("Callback: failed to store session")
			http.Error(w, "Failed to store session", http.StatusInternalServerError)
			return
		}
		s.SetSessionCookie(w, r, sessionID)

		http.Redirect(w, r, RouteHome, http.StatusFound)
	}
}
