package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmazur/slidegen/internal/outline"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	out := &outline.Outline{Title: baseTitle(filename)}
	if title := findTitle(doc); title != "" {
		out.Title = title
	}

	type stackEntry struct {
		node  *outline.Node
		level int
	}
	root := &outline.Node{}
	stack := []stackEntry{{node: root, level: 0}}
	// Nodes with non-quote content; a blockquote only marks a section as a
	// quote when it is the section's entire body.
	plain := make(map[*outline.Node]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := textContent(n)
				newNode := &outline.Node{Level: level, Text: title}
				for len(stack) > 1 && stack[len(stack)-1].level >= level {
					stack = stack[:len(stack)-1]
				}
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, newNode)
				stack = append(stack, stackEntry{node: newNode, level: level})
				return
			}

			top := stack[len(stack)-1].node
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "li", "p", "td":
				if t := textContent(n); t != "" {
					top.Bullets = append(top.Bullets, t)
					plain[top] = true
				}
				return
			case "blockquote":
				if t := textContent(n); t != "" {
					top.Bullets = append(top.Bullets, t)
					top.Quote = true
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
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

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
