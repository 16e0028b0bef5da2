package server

import (
	"net/http"

	"github.com/jrsteele09/go-oauth-client/sessions"
	"github.com/rs/zerolog/log"
)

// IndexPageData contains data for rendering the home page
type IndexPageData struct {
	AppName string
	User    *sessions.Identity
}

// IndexHandler renders the home page (GET /). It shows a login link,
// or a welcome message when the session carries identity claims.
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		_, session := s.sessionFromRequest(r)

		data := IndexPageData{
			AppName: s.config.GetAppName(),
			User:    session.User,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render index template")
		}
	}
}
