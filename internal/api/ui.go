package api

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed index.html.tmpl
var uiFS embed.FS

var uiTemplate = template.Must(template.ParseFS(uiFS, "index.html.tmpl"))

// handleIndex serves the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Themes          []string
		Templates       []string
		DefaultTheme    string
		DefaultTemplate string
	}{
		Themes:          s.themes.HTMLThemeIDs(),
		Templates:       s.themes.TemplateIDs(),
		DefaultTheme:    s.cfg.DefaultTheme,
		DefaultTemplate: s.cfg.DefaultTemplate,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := uiTemplate.Execute(w, data); err != nil {
		s.log.Error("render index", "error", err)
	}
}
