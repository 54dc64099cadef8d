package deck

import (
	"unicode/utf8"

	"github.com/jmazur/slidegen/internal/outline"
)

// Kind classifies what a slide shows.
type Kind string

const (
	KindTitle   Kind = "title"
	KindSection Kind = "section"
	KindBullets Kind = "bullets"
	KindQuote   Kind = "quote"
)

// Slide is an abstract description of one slide, prior to rendering.
type Slide struct {
	Kind         Kind     `json:"kind"`
	Title        string   `json:"title"`
	Body         []string `json:"body,omitempty"`
	TemplateHint string   `json:"template_hint,omitempty"`
}

// Options controls outline-to-slide mapping.
type Options struct {
	MaxBullets      int    // Bullet lists longer than this split across slides.
	MaxBulletLength int    // Longer bullets are truncated with an ellipsis.
	Template        string // Template name recorded as TemplateHint.
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		MaxBullets:      7,
		MaxBulletLength: 120,
		Template:        "simple",
	}
}

// MapOutline converts an outline into an ordered slide sequence.
//
// The root heading becomes a title slide. A section with bullets becomes one
// or more bullets slides; a section without bullets becomes a divider slide.
// Quote sections become quote slides. Overflowing bullet lists split across
// consecutive slides without reordering.
func MapOutline(o *outline.Outline, opts Options) []Slide {
	if opts.MaxBullets <= 0 {
		opts.MaxBullets = 7
	}
	if opts.MaxBulletLength <= 0 {
		opts.MaxBulletLength = 120
	}

	var slides []Slide
	for _, node := range o.Nodes {
		slides = appendNode(slides, node, opts)
	}
	return slides
}

func appendNode(slides []Slide, node *outline.Node, opts Options) []Slide {
	bullets := cleanBullets(node.Bullets, opts.MaxBulletLength)

	switch {
	case node.Level <= 1:
		slides = append(slides, Slide{
			Kind:         KindTitle,
			Title:        node.Text,
			Body:         bullets,
			TemplateHint: opts.Template,
		})

	case node.Quote:
		slides = append(slides, Slide{
			Kind:         KindQuote,
			Title:        node.Text,
			Body:         bullets,
			TemplateHint: opts.Template,
		})

	case len(bullets) > 0:
		slides = append(slides, splitBullets(node.Text, bullets, opts)...)

	default:
		slides = append(slides, Slide{
			Kind:         KindSection,
			Title:        node.Text,
			TemplateHint: opts.Template,
		})
	}

	for _, child := range node.Children {
		slides = appendNode(slides, child, opts)
	}
	return slides
}

// splitBullets breaks an overflowing bullet list into consecutive slides,
// preserving the original bullet order.
func splitBullets(title string, bullets []string, opts Options) []Slide {
	var slides []Slide
	for start := 0; start < len(bullets); start += opts.MaxBullets {
		end := min(start+opts.MaxBullets, len(bullets))
		slides = append(slides, Slide{
			Kind:         KindBullets,
			Title:        title,
			Body:         bullets[start:end],
			TemplateHint: opts.Template,
		})
	}
	return slides
}

// cleanBullets drops empty entries and truncates overlong ones.
func cleanBullets(bullets []string, maxLen int) []string {
	var out []string
	for _, b := range bullets {
		if b == "" {
			continue
		}
		if len(b) > maxLen {
			b = truncate(b, maxLen)
		}
		out = append(out, b)
	}
	return out
}

// truncate cuts s to at most n bytes on a rune boundary and appends an
// ellipsis.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
