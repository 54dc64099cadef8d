package parser

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jmazur/slidegen/internal/outline"
)

// TextParser handles plain text files. Plain text has no markup, so section
// boundaries come from line-shape heuristics: ALL CAPS lines, lines ending
// with a colon, short standalone lines, and numbered lines start a new
// section; bullet markers attach to the current section.
type TextParser struct{}

const maxTitleLength = 60

var (
	numberedLineRe = regexp.MustCompile(`^\d+\.?\s+`)
	leadingNumRe   = regexp.MustCompile(`^\d+\.?\s*`)
)

func (p *TextParser) Parse(r io.Reader, filename string) (*outline.Outline, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	out := &outline.Outline{Title: baseTitle(filename)}

	var current *outline.Node
	sawContent := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sawContent = true

		switch {
		case isTitleLine(line):
			level := 2
			if len(out.Nodes) == 0 {
				// The first section doubles as the presentation title.
				level = 1
				out.Title = cleanTitle(line)
			}
			current = &outline.Node{Level: level, Text: cleanTitle(line)}
			out.Nodes = append(out.Nodes, current)

		case current != nil:
			if marker, ok := bulletText(line); ok {
				current.Bullets = append(current.Bullets, marker)
			} else {
				current.Bullets = append(current.Bullets, line)
			}

		default:
			// Content before any title: the line serves as both.
			current = &outline.Node{
				Level:   1,
				Text:    truncate(line, maxTitleLength),
				Bullets: []string{line},
			}
			out.Nodes = append(out.Nodes, current)
			out.Title = current.Text
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !sawContent {
		return nil, &ParseError{Filename: filename, Reason: "empty input"}
	}
	return out, nil
}

// isTitleLine decides whether a line starts a new section.
func isTitleLine(line string) bool {
	if isBulletLine(line) {
		return false
	}
	if line == strings.ToUpper(line) && line != strings.ToLower(line) && len(line) > 3 {
		return true
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	if numberedLineRe.MatchString(line) {
		return true
	}
	return len(line) <= maxTitleLength
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}

// bulletText strips a leading bullet marker, reporting whether one was found.
func bulletText(line string) (string, bool) {
	if !isBulletLine(line) {
		return line, false
	}
	return strings.TrimSpace(strings.TrimLeft(line, "-*•")), true
}

// cleanTitle normalizes a detected title line.
func cleanTitle(title string) string {
	title = strings.TrimSuffix(title, ":")
	title = leadingNumRe.ReplaceAllString(title, "")
	return truncate(strings.TrimSpace(title), maxTitleLength)
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
