package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-oauth-client/sessions"
)

// ProfileResponse is the JSON body returned by GET /api/profile
type ProfileResponse struct {
	Message string             `json:"message"`
	User    *sessions.Identity `json:"user"`
}

// ProfileHandler is an example protected route (GET /api/profile).
// It returns 401 unless the session carries an access token, otherwise
// it echoes the stored identity claims.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session := s.sessionFromRequest(r)

		w.Header().Set("Content-Type", contentTypeJSON)

		if !session.LoggedIn() {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not authenticated"})
			return
		}

		_ = json.NewEncoder(w).Encode(ProfileResponse{
			Message: "This is a protected resource",
			User:    session.User,
		})
	}
}
