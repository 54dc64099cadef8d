package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/jmazur/slidegen/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, &ParseError{Filename: filename, Reason: "empty input"}
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	out := &outline.Outline{Title: baseTitle(filename)}

	// Walk the top-level blocks and build a tree keyed on heading levels.
	// A stack tracks the current nesting; the synthetic root sits at level 0.
	type stackEntry struct {
		node  *outline.Node
		level int
	}
	root := &outline.Node{}
	stack := []stackEntry{{node: root, level: 0}}
	// Nodes with non-quote content; a blockquote only marks a section as a
	// quote when it is the section's entire body.
	plain := make(map[*outline.Node]bool)

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		top := stack[len(stack)-1].node
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if out.Title == baseTitle(filename) && node.Level == 1 {
				out.Title = title
			}

			newNode := &outline.Node{Level: node.Level, Text: title}

			// Pop until the parent has a strictly lower level.
			for len(stack) > 1 && stack[len(stack)-1].level >= node.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, newNode)
			stack = append(stack, stackEntry{node: newNode, level: node.Level})

		case *ast.List:
			before := len(top.Bullets)
			collectListItems(node, src, top)
			if len(top.Bullets) > before {
				plain[top] = true
			}

		case *ast.Blockquote:
			if t := extractText(node, src); t != "" {
				top.Bullets = append(top.Bullets, t)
				top.Quote = true
			}

		default:
			// Plain paragraphs (and any other block) become single bullets.
			if t := extractText(n, src); t != "" {
				top.Bullets = append(top.Bullets, t)
				plain[top] = true
			}
		}
	}

	out.Nodes = root.Children
	// Headingless documents keep their content under one synthetic section.
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

// collectListItems appends each list item's text as a bullet, flattening
// nested lists in document order.
func collectListItems(list *ast.List, src []byte, node *outline.Node) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var itemText strings.Builder
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				if itemText.Len() > 0 {
					node.Bullets = append(node.Bullets, strings.TrimSpace(itemText.String()))
					itemText.Reset()
				}
				collectListItems(nested, src, node)
				continue
			}
			if t := extractText(c, src); t != "" {
				if itemText.Len() > 0 {
					itemText.WriteString(" ")
				}
				itemText.WriteString(t)
			}
		}
		if itemText.Len() > 0 {
			node.Bullets = append(node.Bullets, strings.TrimSpace(itemText.String()))
		}
	}
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		// Fall back to inline children for container blocks.
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(extractText(c, src))
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
