// Package htmlslides renders slide sequences into self-contained Reveal.js
// HTML presentations.
package htmlslides

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/theme"
)

//go:embed presentation.html.tmpl
var templateFS embed.FS

// Renderer writes Reveal.js presentations to the local filesystem.
type Renderer struct {
	themes *theme.Registry
	tmpl   *template.Template
}

// New creates an HTML renderer backed by the given theme registry.
func New(themes *theme.Registry) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "presentation.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse presentation template: %w", err)
	}
	return &Renderer{themes: themes, tmpl: tmpl}, nil
}

type slideView struct {
	Kind     string
	Title    string
	Subtitle string
	Body     []string
}

type pageView struct {
	Title      string
	Stylesheet string
	Transition string
	Slides     []slideView
}

// Render writes the presentation to target.OutputPath and reports the
// artifact. Write failures surface as *render.IOError.
func (r *Renderer) Render(ctx context.Context, slides []deck.Slide, target render.Target) (*render.Result, error) {
	var buf bytes.Buffer
	if err := r.WriteTo(&buf, slides, target); err != nil {
		return nil, err
	}

	out := target.OutputPath
	if out == "" {
		out = "presentation.html"
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &render.IOError{Path: out, Err: err}
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return nil, &render.IOError{Path: out, Err: err}
	}

	return &render.Result{
		Mode:       render.ModeHTML,
		Title:      target.Title,
		SlideCount: len(slides),
		OutputPath: out,
		FileSize:   int64(buf.Len()),
	}, nil
}

// WriteTo renders the presentation HTML to w without touching the
// filesystem. The web shell uses this for direct downloads.
func (r *Renderer) WriteTo(w io.Writer, slides []deck.Slide, target render.Target) error {
	th, ok := r.themes.HTMLTheme(target.Theme)
	if !ok {
		return fmt.Errorf("unknown theme: %q", target.Theme)
	}

	page := pageView{
		Title:      target.Title,
		Stylesheet: th.Stylesheet,
		Transition: th.Transition,
	}
	for _, s := range slides {
		view := slideView{
			Kind:  string(s.Kind),
			Title: s.Title,
			Body:  s.Body,
		}
		// Title slides show their first body line as a subtitle.
		if s.Kind == deck.KindTitle && len(s.Body) > 0 {
			view.Subtitle = s.Body[0]
			view.Body = nil
		}
		page.Slides = append(page.Slides, view)
	}

	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render presentation: %w", err)
	}
	return nil
}
