package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// LogoutHandler clears the whole session (GET /logout): the server-side
// record is deleted, the cookie is expired, and the browser is sent
// back to the home page.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, _ := s.sessionFromRequest(r)
		if sessionID != "" {
			if err := s.sessions.Delete(sessionID); err != nil {
				log.Err(err).Msg("Logout: failed to delete session")
			}
		}

		s.ClearSessionCookie(w, r)
		http.Redirect(w, r, RouteHome, http.StatusFound)
	}
}
