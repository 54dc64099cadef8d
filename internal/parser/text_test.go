package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTextParser_SectionsAndBullets(t *testing.T) {
	input := `QUARTERLY REVIEW

Highlights:
- revenue up
- churn down
* new hires

Next Steps:
- ship the beta
`
	p := &TextParser{}
	out, err := p.Parse(strings.NewReader(input), "review.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Title != "QUARTERLY REVIEW" {
		t.Errorf("expected title from first section, got %q", out.Title)
	}
	if len(out.Nodes) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(out.Nodes))
	}
	if out.Nodes[0].Level != 1 {
		t.Errorf("first section should be level 1, got %d", out.Nodes[0].Level)
	}
	if out.Nodes[1].Level != 2 || out.Nodes[1].Text != "Highlights" {
		t.Errorf("unexpected second section: %+v", out.Nodes[1])
	}

	want := []string{"revenue up", "churn down", "new hires"}
	if !reflect.DeepEqual(out.Nodes[1].Bullets, want) {
		t.Errorf("expected bullets %v, got %v", want, out.Nodes[1].Bullets)
	}
}

func TestTextParser_NumberedTitles(t *testing.T) {
	input := "1. Introduction\n- why we are here\n2. Agenda\n- item one\n"
	p := &TextParser{}
	out, err := p.Parse(strings.NewReader(input), "agenda.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Nodes) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out.Nodes))
	}
	if out.Nodes[0].Text != "Introduction" {
		t.Errorf("expected numbering stripped, got %q", out.Nodes[0].Text)
	}
	if out.Nodes[1].Text != "Agenda" {
		t.Errorf("expected numbering stripped, got %q", out.Nodes[1].Text)
	}
}

func TestTextParser_LongTitleTruncated(t *testing.T) {
	long := strings.Repeat("word ", 30) + "end:"
	p := &TextParser{}
	out, err := p.Parse(strings.NewReader(long+"\n- a\n"), "long.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	title := out.Nodes[0].Text
	if len(title) > maxTitleLength+3 {
		t.Errorf("title not truncated: %q (%d chars)", title, len(title))
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("expected ellipsis on truncated title, got %q", title)
	}
}

func TestTextParser_MultibyteTitleTruncated(t *testing.T) {
	// 81 bytes of title text with rune boundaries at odd offsets.
	input := "x" + strings.Repeat("Ж", 40) + ":\n- a\n"
	p := &TextParser{}
	out, err := p.Parse(strings.NewReader(input), "cyrillic.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	title := out.Nodes[0].Text
	if !utf8.ValidString(title) {
		t.Errorf("truncated title is not valid UTF-8: %q", title)
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("expected ellipsis on truncated title, got %q", title)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	_, err := p.Parse(strings.NewReader("\n   \n"), "empty.txt")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
