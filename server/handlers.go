package server

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// ErrorPageData contains data for rendering a terminal error page
type ErrorPageData struct {
	Title   string
	Message string
	Hints   []string
}

// renderErrorPage writes a human-readable error page. All flow errors
// are terminal to the request; nothing is retried.
func renderErrorPage(w http.ResponseWriter, tmpl *template.Template, status int, data ErrorPageData) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Msg("Failed to render error template")
	}
}
