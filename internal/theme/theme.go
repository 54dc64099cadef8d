package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// HTMLTheme describes one Reveal.js theme and its presentation defaults.
type HTMLTheme struct {
	Name       string `yaml:"name" json:"name"`
	Stylesheet string `yaml:"stylesheet" json:"stylesheet"`
	Transition string `yaml:"transition" json:"transition"`
}

// Template describes a cloud presentation template's styling hints.
type Template struct {
	Name      string `yaml:"name" json:"name"`
	TitleFont string `yaml:"title_font" json:"title_font"`
	BodyFont  string `yaml:"body_font" json:"body_font"`
	Layout    string `yaml:"layout" json:"layout"`
}

// Registry holds the known HTML themes and cloud templates.
type Registry struct {
	htmlThemes map[string]HTMLTheme
	templates  map[string]Template
}

// NewRegistry returns a registry preloaded with the built-in themes and
// templates.
func NewRegistry() *Registry {
	r := &Registry{
		htmlThemes: make(map[string]HTMLTheme),
		templates:  make(map[string]Template),
	}
	for id, t := range builtinHTMLThemes {
		r.htmlThemes[id] = t
	}
	for id, t := range builtinTemplates {
		r.templates[id] = t
	}
	return r
}

// LoadDir merges YAML theme definitions from dir into the registry.
// Files named *.theme.yaml define HTML themes; *.template.yaml define cloud
// templates; the ID is the filename before the first dot. A missing
// directory is not an error.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading themes directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		id := strings.SplitN(name, ".", 2)[0]
		path := filepath.Join(dir, name)

		switch {
		case strings.HasSuffix(name, ".theme.yaml"), strings.HasSuffix(name, ".theme.yml"):
			var t HTMLTheme
			if err := unmarshalFile(path, &t); err != nil {
				return err
			}
			if t.Transition == "" {
				t.Transition = "slide"
			}
			r.htmlThemes[id] = t
		case strings.HasSuffix(name, ".template.yaml"), strings.HasSuffix(name, ".template.yml"):
			var t Template
			if err := unmarshalFile(path, &t); err != nil {
				return err
			}
			r.templates[id] = t
		}
	}
	return nil
}

func unmarshalFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// HTMLTheme looks up an HTML theme by ID.
func (r *Registry) HTMLTheme(id string) (HTMLTheme, bool) {
	t, ok := r.htmlThemes[id]
	return t, ok
}

// Template looks up a cloud template by ID.
func (r *Registry) Template(id string) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// HTMLThemeIDs returns the sorted HTML theme IDs.
func (r *Registry) HTMLThemeIDs() []string {
	ids := make([]string, 0, len(r.htmlThemes))
	for id := range r.htmlThemes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TemplateIDs returns the sorted cloud template IDs.
func (r *Registry) TemplateIDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// builtinHTMLThemes mirrors the stock Reveal.js theme set. The stylesheet
// name feeds the CDN URL in the HTML renderer.
var builtinHTMLThemes = map[string]HTMLTheme{
	"black":     {Name: "Black", Stylesheet: "black", Transition: "slide"},
	"white":     {Name: "White", Stylesheet: "white", Transition: "fade"},
	"league":    {Name: "League", Stylesheet: "league", Transition: "convex"},
	"beige":     {Name: "Beige", Stylesheet: "beige", Transition: "slide"},
	"sky":       {Name: "Sky", Stylesheet: "sky", Transition: "slide"},
	"night":     {Name: "Night", Stylesheet: "night", Transition: "concave"},
	"serif":     {Name: "Serif", Stylesheet: "serif", Transition: "slide"},
	"simple":    {Name: "Simple", Stylesheet: "simple", Transition: "slide"},
	"solarized": {Name: "Solarized", Stylesheet: "solarized", Transition: "slide"},
	"blood":     {Name: "Blood", Stylesheet: "blood", Transition: "slide"},
	"moon":      {Name: "Moon", Stylesheet: "moon", Transition: "slide"},
}

var builtinTemplates = map[string]Template{
	"simple":    {Name: "Simple", TitleFont: "Arial", BodyFont: "Arial", Layout: "TITLE_AND_BODY"},
	"modern":    {Name: "Modern Writer", TitleFont: "Roboto", BodyFont: "Open Sans", Layout: "TITLE_AND_BODY"},
	"focus":     {Name: "Focus", TitleFont: "Georgia", BodyFont: "Arial", Layout: "TITLE_AND_BODY"},
	"geometric": {Name: "Geometric", TitleFont: "Montserrat", BodyFont: "Source Sans Pro", Layout: "TITLE_AND_BODY"},
	"swiss":     {Name: "Swiss", TitleFont: "Helvetica", BodyFont: "Helvetica", Layout: "TITLE_AND_BODY"},
	"paradigm":  {Name: "Paradigm", TitleFont: "Oswald", BodyFont: "Lato", Layout: "TITLE_AND_BODY"},
}
