package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/gslides"
	"github.com/jmazur/slidegen/internal/parser"
	"github.com/jmazur/slidegen/internal/render"
)

// uploadedDeck is the outcome of parsing and mapping an uploaded file.
type uploadedDeck struct {
	Filename string
	Title    string
	Slides   []deck.Slide
}

// readUpload parses the multipart upload into a mapped slide deck.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*uploadedDeck, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, false
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	limited := io.LimitReader(file, s.cfg.MaxUploadBytes+1)
	outline, err := p.Parse(limited, filename)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return nil, false
	}

	opts := deck.Options{
		MaxBullets:      s.cfg.MaxBullets,
		MaxBulletLength: s.cfg.MaxBulletLength,
		Template:        formValue(r, "template", s.cfg.DefaultTemplate),
	}
	if v := r.FormValue("max_bullets"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.MaxBullets = n
		}
	}

	title := r.FormValue("title")
	if title == "" {
		title = outline.Title
	}

	return &uploadedDeck{
		Filename: filename,
		Title:    title,
		Slides:   deck.MapOutline(outline, opts),
	}, true
}

// handlePreview maps the upload and reports the structure without rendering.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename":    up.Filename,
		"title":       up.Title,
		"slides":      up.Slides,
		"stats":       deck.Analyze(up.Slides),
		"suggestions": deck.Suggest(up.Slides),
	})
}

// handleGenerate renders the upload. html mode streams the artifact as a
// download; google mode responds with the created presentation's links.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	mode, err := render.ParseMode(formValue(r, "mode", string(render.ModeHTML)))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	target := render.Target{
		Mode:     mode,
		Title:    up.Title,
		Theme:    formValue(r, "theme", s.cfg.DefaultTheme),
		Template: formValue(r, "template", s.cfg.DefaultTemplate),
	}

	switch mode {
	case render.ModeHTML:
		if _, ok := s.themes.HTMLTheme(target.Theme); !ok {
			jsonError(w, fmt.Sprintf("unknown theme: %q", target.Theme), http.StatusBadRequest)
			return
		}
		// Render fully into memory before committing any response headers,
		// so a renderer failure still reaches the client as an error.
		var buf bytes.Buffer
		if err := s.html.WriteTo(&buf, up.Slides, target); err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		name := strings.TrimSuffix(up.Filename, filepath.Ext(up.Filename)) + ".html"
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Write(buf.Bytes())

	case render.ModeGoogle:
		if _, ok := s.themes.Template(target.Template); !ok {
			jsonError(w, fmt.Sprintf("unknown template: %q", target.Template), http.StatusBadRequest)
			return
		}
		renderer, err := s.cloudRenderer()
		if err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		res, err := renderer.Render(r.Context(), up.Slides, target)
		if err != nil {
			jsonError(w, err.Error(), statusFor(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}

// handleThemes lists the selectable themes and templates.
func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"themes":    s.themes.HTMLThemeIDs(),
		"templates": s.themes.TemplateIDs(),
	})
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	var parseErr *parser.ParseError
	var authErr *gslides.AuthError
	var rateErr *gslides.RateLimitError
	var ioErr *render.IOError
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests
	case errors.As(err, &ioErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
