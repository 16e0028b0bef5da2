package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LoginHandler starts the authorization code flow (GET /login).
// It mints a random anti-forgery state, stores it in the browser's
// session and redirects to the provider's authorization endpoint with
// client_id, redirect_uri, response_type=code, scope and state
// attached.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := generateRandomString(s.config.GetStateLength())

		sessionID, session := s.sessionFromRequest(r)
		if sessionID == "" {
			sessionID = uuid.NewString()
			session.CreatedAt = time.Now()
		}
		session.OAuthState = state
		session.UpdatedAt = time.Now()

		if err := s.sessions.Upsert(sessionID, session); err != nil {
			log.Err(err).Msg("Login: failed to store session")
			http.Error(w, "Failed to start login", http.StatusInternalServerError)
			return
		}
		s.SetSessionCookie(w, r, sessionID)

		http.Redirect(w, r, s.oauth2Config.AuthCodeURL(state), http.StatusFound)
	}
}
