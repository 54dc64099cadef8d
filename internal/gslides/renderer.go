// Package gslides renders slide sequences into Google Slides presentations
// over the REST API.
package gslides

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/theme"
)

// Renderer creates cloud presentations from slide sequences.
type Renderer struct {
	client *Client
	themes *theme.Registry
	log    *slog.Logger
}

// NewRenderer wires a Slides API client and template registry.
func NewRenderer(client *Client, themes *theme.Registry, log *slog.Logger) *Renderer {
	return &Renderer{client: client, themes: themes, log: log}
}

// Render creates the presentation, removes the default slide, and fills in
// the mapped slides with one batch call. Slides already created before a
// failed batch stay behind in the cloud resource; there is no rollback.
func (r *Renderer) Render(ctx context.Context, slides []deck.Slide, target render.Target) (*render.Result, error) {
	tmpl, ok := r.themes.Template(target.Template)
	if !ok {
		return nil, fmt.Errorf("unknown template: %q", target.Template)
	}

	pres, err := r.client.CreatePresentation(ctx, target.Title)
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	r.log.Info("created presentation", "presentation_id", pres.PresentationID, "title", target.Title)

	defaultIDs := make([]string, 0, len(pres.Slides))
	for _, s := range pres.Slides {
		defaultIDs = append(defaultIDs, s.ObjectID)
	}

	reqs := BuildRequests(slides, tmpl, defaultIDs)
	if err := r.client.BatchUpdate(ctx, pres.PresentationID, reqs); err != nil {
		return nil, fmt.Errorf("populate presentation %s: %w", pres.PresentationID, err)
	}
	r.log.Info("populated presentation", "presentation_id", pres.PresentationID, "slides", len(slides))

	editLink := fmt.Sprintf("https://docs.google.com/presentation/d/%s/edit", pres.PresentationID)
	return &render.Result{
		Mode:           render.ModeGoogle,
		Title:          target.Title,
		SlideCount:     len(slides),
		PresentationID: pres.PresentationID,
		WebViewLink:    editLink + "?usp=sharing",
		EditLink:       editLink,
	}, nil
}
