package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jmazur/slidegen/internal/outline"
)

// Parser converts raw document bytes into an outline.
type Parser interface {
	Parse(r io.Reader, filename string) (*outline.Outline, error)
}

// ParseError indicates malformed or empty input that cannot produce slides.
type ParseError struct {
	Filename string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return "parse: " + e.Reason
	}
	return fmt.Sprintf("parse %s: %s", e.Filename, e.Reason)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ForFormat returns a parser for an explicit format hint ("txt" or "md").
func ForFormat(format string) (Parser, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "txt", "text":
		return &TextParser{}, nil
	case "md", "markdown":
		return &MarkdownParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format hint: %s", format)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// baseTitle strips the extension from a filename for use as a fallback title.
func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
