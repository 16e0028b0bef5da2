package server

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/jrsteele09/go-oauth-client/sessions"
)

const (
	// sessionCookieName is the name of the cookie used to track the
	// browser's session across the authorization code flow
	sessionCookieName = "oauth_session_id"
)

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// signSessionID appends an HMAC-SHA256 signature so a tampered
// session cookie is rejected without a repo lookup
func signSessionID(sessionID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(sessionID))
	return sessionID + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// parseSessionCookie verifies the signature and returns the session ID
func parseSessionCookie(value string, secret []byte) (string, error) {
	sessionID, signature, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return "", errors.ErrInvalidSessionCookie
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(sessionID))
	expected := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return "", errors.ErrInvalidSessionCookie
	}

	return sessionID, nil
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signSessionID(sessionID, s.config.GetSessionSecret()),
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.config.GetMaxSessionAge().Seconds()),
	})
}

func (s *Server) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// sessionFromRequest resolves the browser's session from its cookie.
// An absent, unsigned or tampered cookie yields an empty session ID.
// A valid cookie whose session is gone (e.g. after a restart) yields
// the ID with a zero session, so the caller can start a fresh one.
func (s *Server) sessionFromRequest(r *http.Request) (string, sessions.Session) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", sessions.Session{}
	}

	sessionID, err := parseSessionCookie(cookie.Value, s.config.GetSessionSecret())
	if err != nil {
		return "", sessions.Session{}
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return sessionID, sessions.Session{}
	}

	return sessionID, session
}
