package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/jmazur/slidegen/internal/outline"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "slidegen-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	out := &outline.Outline{Title: baseTitle(filename)}

	type stackEntry struct {
		node  *outline.Node
		level int
	}
	root := &outline.Node{}
	stack := []stackEntry{{node: root, level: 0}}
	// Nodes with non-quote content; a quote-styled paragraph only marks a
	// section as a quote when it is the section's entire body.
	plain := make(map[*outline.Node]bool)

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		level := docxHeadingLevel(para)
		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		if level > 0 {
			if level == 1 && out.Title == baseTitle(filename) {
				out.Title = text
			}
			newNode := &outline.Node{Level: level, Text: text}
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, newNode)
			stack = append(stack, stackEntry{node: newNode, level: level})
			continue
		}

		top := stack[len(stack)-1].node
		top.Bullets = append(top.Bullets, text)
		if docxIsQuote(para) {
			top.Quote = true
		} else {
			plain[top] = true
		}
	}

	out.Nodes = root.Children
	if len(out.Nodes) == 0 && len(root.Bullets) > 0 {
		out.Nodes = []*outline.Node{{
			Level:   1,
			Text:    out.Title,
			Bullets: root.Bullets,
			Quote:   root.Quote && !plain[root],
		}}
	}
	out.Walk(func(n *outline.Node) {
		if n.Quote && plain[n] {
			n.Quote = false
		}
	})

	if out.Empty() {
		return nil, &ParseError{Filename: filename, Reason: "no usable content"}
	}
	return out, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	style := docxStyle(para)
	switch {
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	case strings.EqualFold(style, "Heading3") || strings.EqualFold(style, "heading 3"):
		return 3
	case strings.EqualFold(style, "Heading4") || strings.EqualFold(style, "heading 4"):
		return 4
	case strings.EqualFold(style, "Heading5") || strings.EqualFold(style, "heading 5"):
		return 5
	case strings.EqualFold(style, "Heading6") || strings.EqualFold(style, "heading 6"):
		return 6
	}
	return 0
}

func docxIsQuote(para *docx.Paragraph) bool {
	style := docxStyle(para)
	return strings.EqualFold(style, "Quote") || strings.EqualFold(style, "IntenseQuote")
}

func docxStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
