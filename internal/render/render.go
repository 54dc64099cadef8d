package render

import (
	"context"
	"fmt"

	"github.com/jmazur/slidegen/internal/deck"
)

// Mode selects the output backend.
type Mode string

const (
	ModeGoogle Mode = "google"
	ModeHTML   Mode = "html"
)

// ParseMode validates a mode string from CLI args or form values.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGoogle, ModeHTML:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown render mode: %q (want google or html)", s)
	}
}

// Target is the immutable configuration for one generation run.
type Target struct {
	Mode       Mode
	Title      string
	Theme      string // HTML theme ID (html mode)
	Template   string // Cloud template ID (google mode)
	OutputPath string // Destination file (html mode)
}

// Result describes the produced artifact.
type Result struct {
	Mode       Mode   `json:"mode"`
	Title      string `json:"title"`
	SlideCount int    `json:"slides_count"`

	// Local mode.
	OutputPath string `json:"output_path,omitempty"`
	FileSize   int64  `json:"file_size,omitempty"`

	// Cloud mode.
	PresentationID string `json:"presentation_id,omitempty"`
	WebViewLink    string `json:"web_view_link,omitempty"`
	EditLink       string `json:"edit_link,omitempty"`
}

// Renderer turns a slide sequence into an output artifact.
type Renderer interface {
	Render(ctx context.Context, slides []deck.Slide, target Target) (*Result, error)
}

// IOError indicates a local artifact could not be written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
