package gslides

import (
	"fmt"
	"strings"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/theme"
)

// Request is one entry of a batchUpdate request body. Exactly one field is
// set per request.
type Request struct {
	CreateSlide            *CreateSlideRequest            `json:"createSlide,omitempty"`
	DeleteObject           *DeleteObjectRequest           `json:"deleteObject,omitempty"`
	InsertText             *InsertTextRequest             `json:"insertText,omitempty"`
	UpdateTextStyle        *UpdateTextStyleRequest        `json:"updateTextStyle,omitempty"`
	CreateParagraphBullets *CreateParagraphBulletsRequest `json:"createParagraphBullets,omitempty"`
}

type CreateSlideRequest struct {
	ObjectID             string                 `json:"objectId"`
	InsertionIndex       int                    `json:"insertionIndex"`
	SlideLayoutReference LayoutReference        `json:"slideLayoutReference"`
	PlaceholderMappings  []PlaceholderIDMapping `json:"placeholderIdMappings,omitempty"`
}

type LayoutReference struct {
	PredefinedLayout string `json:"predefinedLayout"`
}

type PlaceholderIDMapping struct {
	LayoutPlaceholder Placeholder `json:"layoutPlaceholder"`
	ObjectID          string      `json:"objectId"`
}

type Placeholder struct {
	Type string `json:"type"`
}

type DeleteObjectRequest struct {
	ObjectID string `json:"objectId"`
}

type InsertTextRequest struct {
	ObjectID       string `json:"objectId"`
	InsertionIndex int    `json:"insertionIndex"`
	Text           string `json:"text"`
}

type UpdateTextStyleRequest struct {
	ObjectID string    `json:"objectId"`
	Style    TextStyle `json:"style"`
	Fields   string    `json:"fields"`
}

type TextStyle struct {
	Bold       bool       `json:"bold,omitempty"`
	Italic     bool       `json:"italic,omitempty"`
	FontFamily string     `json:"fontFamily,omitempty"`
	FontSize   *Dimension `json:"fontSize,omitempty"`
}

type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

type CreateParagraphBulletsRequest struct {
	ObjectID     string `json:"objectId"`
	BulletPreset string `json:"bulletPreset"`
}

// layoutFor maps a slide kind to a predefined Slides layout.
func layoutFor(kind deck.Kind) string {
	switch kind {
	case deck.KindTitle:
		return "TITLE"
	case deck.KindSection:
		return "SECTION_HEADER"
	default:
		return "TITLE_AND_BODY"
	}
}

// titlePlaceholderFor returns the placeholder type carrying the heading on
// the given layout.
func titlePlaceholderFor(kind deck.Kind) string {
	if kind == deck.KindTitle {
		return "CENTERED_TITLE"
	}
	return "TITLE"
}

// bodyPlaceholderFor returns the placeholder type carrying the body text, or
// "" when the layout has none.
func bodyPlaceholderFor(kind deck.Kind) string {
	switch kind {
	case deck.KindTitle:
		return "SUBTITLE"
	case deck.KindSection:
		return ""
	default:
		return "BODY"
	}
}

// BuildRequests translates a slide sequence into one batchUpdate request
// list: delete the default slide, then create and fill each slide in order.
// Slide object IDs are deterministic so reruns against a fresh presentation
// are reproducible.
func BuildRequests(slides []deck.Slide, tmpl theme.Template, defaultSlideIDs []string) []Request {
	var reqs []Request

	for _, id := range defaultSlideIDs {
		reqs = append(reqs, Request{DeleteObject: &DeleteObjectRequest{ObjectID: id}})
	}

	for i, slide := range slides {
		slideID := fmt.Sprintf("slide_%d", i)
		titleID := slideID + "_title"
		bodyID := slideID + "_body"

		create := &CreateSlideRequest{
			ObjectID:       slideID,
			InsertionIndex: i,
			SlideLayoutReference: LayoutReference{
				PredefinedLayout: layoutFor(slide.Kind),
			},
			PlaceholderMappings: []PlaceholderIDMapping{
				{LayoutPlaceholder: Placeholder{Type: titlePlaceholderFor(slide.Kind)}, ObjectID: titleID},
			},
		}
		bodyPlaceholder := bodyPlaceholderFor(slide.Kind)
		if bodyPlaceholder != "" {
			create.PlaceholderMappings = append(create.PlaceholderMappings,
				PlaceholderIDMapping{LayoutPlaceholder: Placeholder{Type: bodyPlaceholder}, ObjectID: bodyID})
		}
		reqs = append(reqs, Request{CreateSlide: create})

		if slide.Title != "" {
			reqs = append(reqs, Request{InsertText: &InsertTextRequest{
				ObjectID: titleID,
				Text:     slide.Title,
			}})
			reqs = append(reqs, Request{UpdateTextStyle: &UpdateTextStyleRequest{
				ObjectID: titleID,
				Style: TextStyle{
					Bold:       true,
					FontFamily: tmpl.TitleFont,
					FontSize:   &Dimension{Magnitude: 24, Unit: "PT"},
				},
				Fields: "bold,fontFamily,fontSize",
			}})
		}

		body := formatBody(slide)
		if body == "" || bodyPlaceholder == "" {
			continue
		}
		reqs = append(reqs, Request{InsertText: &InsertTextRequest{
			ObjectID: bodyID,
			Text:     body,
		}})

		style := TextStyle{
			FontFamily: tmpl.BodyFont,
			FontSize:   &Dimension{Magnitude: 14, Unit: "PT"},
		}
		if slide.Kind == deck.KindQuote {
			style.Italic = true
			style.FontSize = &Dimension{Magnitude: 16, Unit: "PT"}
		}
		fields := "fontFamily,fontSize"
		if style.Italic {
			fields = "italic,fontFamily,fontSize"
		}
		reqs = append(reqs, Request{UpdateTextStyle: &UpdateTextStyleRequest{
			ObjectID: bodyID,
			Style:    style,
			Fields:   fields,
		}})

		if slide.Kind == deck.KindBullets {
			reqs = append(reqs, Request{CreateParagraphBullets: &CreateParagraphBulletsRequest{
				ObjectID:     bodyID,
				BulletPreset: "BULLET_DISC_CIRCLE_SQUARE",
			}})
		}
	}

	return reqs
}

// formatBody renders a slide's body lines for its placeholder.
func formatBody(slide deck.Slide) string {
	if len(slide.Body) == 0 {
		return ""
	}
	switch slide.Kind {
	case deck.KindQuote:
		return "“" + slide.Body[0] + "”"
	case deck.KindTitle:
		return slide.Body[0]
	default:
		return strings.Join(slide.Body, "\n")
	}
}
