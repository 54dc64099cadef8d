package gslides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/theme"
)

func testTemplate() theme.Template {
	return theme.Template{Name: "Simple", TitleFont: "Arial", BodyFont: "Arial", Layout: "TITLE_AND_BODY"}
}

func TestBuildRequests_DeletesDefaultSlidesFirst(t *testing.T) {
	slides := []deck.Slide{{Kind: deck.KindTitle, Title: "T"}}
	reqs := BuildRequests(slides, testTemplate(), []string{"default_0"})

	require.NotEmpty(t, reqs)
	require.NotNil(t, reqs[0].DeleteObject)
	assert.Equal(t, "default_0", reqs[0].DeleteObject.ObjectID)
	require.NotNil(t, reqs[1].CreateSlide)
}

func TestBuildRequests_LayoutsPerKind(t *testing.T) {
	slides := []deck.Slide{
		{Kind: deck.KindTitle, Title: "T", Body: []string{"sub"}},
		{Kind: deck.KindSection, Title: "S"},
		{Kind: deck.KindBullets, Title: "B", Body: []string{"a", "b"}},
		{Kind: deck.KindQuote, Title: "Q", Body: []string{"words"}},
	}
	reqs := BuildRequests(slides, testTemplate(), nil)

	var layouts []string
	for _, r := range reqs {
		if r.CreateSlide != nil {
			layouts = append(layouts, r.CreateSlide.SlideLayoutReference.PredefinedLayout)
		}
	}
	assert.Equal(t, []string{"TITLE", "SECTION_HEADER", "TITLE_AND_BODY", "TITLE_AND_BODY"}, layouts)
}

func TestBuildRequests_InsertsTextInOrder(t *testing.T) {
	slides := []deck.Slide{
		{Kind: deck.KindBullets, Title: "Points", Body: []string{"a", "b", "c"}},
	}
	reqs := BuildRequests(slides, testTemplate(), nil)

	var inserts []*InsertTextRequest
	for _, r := range reqs {
		if r.InsertText != nil {
			inserts = append(inserts, r.InsertText)
		}
	}
	require.Len(t, inserts, 2)
	assert.Equal(t, "slide_0_title", inserts[0].ObjectID)
	assert.Equal(t, "Points", inserts[0].Text)
	assert.Equal(t, "slide_0_body", inserts[1].ObjectID)
	assert.Equal(t, "a\nb\nc", inserts[1].Text)
}

func TestBuildRequests_BulletsGetParagraphPreset(t *testing.T) {
	slides := []deck.Slide{
		{Kind: deck.KindBullets, Title: "B", Body: []string{"a"}},
		{Kind: deck.KindQuote, Title: "Q", Body: []string{"w"}},
	}
	reqs := BuildRequests(slides, testTemplate(), nil)

	var presets []string
	for _, r := range reqs {
		if r.CreateParagraphBullets != nil {
			presets = append(presets, r.CreateParagraphBullets.ObjectID)
		}
	}
	assert.Equal(t, []string{"slide_0_body"}, presets, "only bullets slides get a bullet preset")
}

func TestBuildRequests_QuoteStyling(t *testing.T) {
	slides := []deck.Slide{{Kind: deck.KindQuote, Title: "Q", Body: []string{"less is more"}}}
	reqs := BuildRequests(slides, testTemplate(), nil)

	var quoted, italic bool
	for _, r := range reqs {
		if r.InsertText != nil && strings.Contains(r.InsertText.Text, "less is more") {
			quoted = strings.HasPrefix(r.InsertText.Text, "“")
		}
		if r.UpdateTextStyle != nil && r.UpdateTextStyle.ObjectID == "slide_0_body" {
			italic = r.UpdateTextStyle.Style.Italic
		}
	}
	assert.True(t, quoted, "quote body should be wrapped in quotation marks")
	assert.True(t, italic, "quote body should be italic")
}

func TestBuildRequests_SectionHasNoBody(t *testing.T) {
	slides := []deck.Slide{{Kind: deck.KindSection, Title: "Part", Body: []string{"stray"}}}
	reqs := BuildRequests(slides, testTemplate(), nil)

	for _, r := range reqs {
		if r.InsertText != nil {
			assert.NotEqual(t, "slide_0_body", r.InsertText.ObjectID, "section layouts have no body placeholder")
		}
	}
}
