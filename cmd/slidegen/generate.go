package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmazur/slidegen/internal/deck"
	"github.com/jmazur/slidegen/internal/gslides"
	"github.com/jmazur/slidegen/internal/outline"
	"github.com/jmazur/slidegen/internal/parser"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/render/htmlslides"
	"github.com/jmazur/slidegen/internal/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate <google|html> <input-file>",
	Short: "Render a document into a presentation",
	Long: `Generate parses the input file into an outline, maps it onto slides, and
renders the result. Mode google creates a Google Slides presentation through
the cloud API (requires a credentials file or GOOGLE_ACCESS_TOKEN); mode html
writes a self-contained Reveal.js file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := render.ParseMode(args[0])
		if err != nil {
			return err
		}
		input := args[1]

		o, slides, err := buildDeck(cmd, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Mapped %d slides from %s\n", len(slides), input)
		for _, hint := range deck.Suggest(slides) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}

		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = o.Title
		}

		themes, err := loadThemes()
		if err != nil {
			return err
		}

		target := render.Target{
			Mode:     mode,
			Title:    title,
			Theme:    settingString(cmd, "theme", "theme"),
			Template: settingString(cmd, "template", "template"),
		}

		var renderer render.Renderer
		switch mode {
		case render.ModeHTML:
			target.OutputPath, _ = cmd.Flags().GetString("output")
			if target.OutputPath == "" {
				base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				target.OutputPath = filepath.Join(viper.GetString("output_dir"), base+".html")
			}
			renderer, err = htmlslides.New(themes)
			if err != nil {
				return err
			}

		case render.ModeGoogle:
			creds := settingString(cmd, "credentials", "credentials_file")
			token, err := gslides.LoadToken(creds)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			client := gslides.NewClient(os.Getenv("SLIDES_API_URL"), token, log)
			defer client.Close()
			renderer = gslides.NewRenderer(client, themes, log)
		}

		res, err := renderer.Render(cmd.Context(), slides, target)
		if err != nil {
			return err
		}

		switch mode {
		case render.ModeHTML:
			fmt.Printf("Wrote %s (%d slides, %d bytes)\n", res.OutputPath, res.SlideCount, res.FileSize)
		case render.ModeGoogle:
			fmt.Printf("Created presentation %s (%d slides)\n", res.PresentationID, res.SlideCount)
			fmt.Println("Edit:", res.EditLink)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("title", "", "presentation title (default: taken from the document)")
	generateCmd.Flags().String("template", "", "Google Slides template name")
	generateCmd.Flags().String("theme", "", "Reveal.js theme name")
	generateCmd.Flags().String("output", "", "output path for html mode")
	generateCmd.Flags().String("credentials", "", "credentials file for google mode")
	generateCmd.Flags().Int("max-bullets", 0, "split bullet lists longer than this across slides")
	generateCmd.Flags().String("format", "", "input format override: txt or md")

	rootCmd.AddCommand(generateCmd)
}

// buildDeck parses the input file and maps it onto slides, honoring the
// shared parsing flags.
func buildDeck(cmd *cobra.Command, input string) (*outline.Outline, []deck.Slide, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	var p parser.Parser
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		p, err = parser.ForFormat(format)
	} else {
		p, err = parser.ForFile(input)
	}
	if err != nil {
		return nil, nil, err
	}

	o, err := p.Parse(f, filepath.Base(input))
	if err != nil {
		return nil, nil, err
	}

	opts := deck.DefaultOptions()
	opts.Template = settingString(cmd, "template", "template")
	if n, _ := cmd.Flags().GetInt("max-bullets"); n > 0 {
		opts.MaxBullets = n
	} else if n := viper.GetInt("max_bullets"); n > 0 {
		opts.MaxBullets = n
	}

	return o, deck.MapOutline(o, opts), nil
}

// loadThemes builds the theme registry, merging any YAML definitions from
// the configured themes directory.
func loadThemes() (*theme.Registry, error) {
	registry := theme.NewRegistry()
	if err := registry.LoadDir(viper.GetString("themes_dir")); err != nil {
		return nil, err
	}
	return registry, nil
}

// settingString resolves a flag value with a viper-config fallback.
func settingString(cmd *cobra.Command, flag, viperKey string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(viperKey)
}
