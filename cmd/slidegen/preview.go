package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmazur/slidegen/internal/deck"
)

var previewCmd = &cobra.Command{
	Use:   "preview <input-file>",
	Short: "Show the slide structure a file would produce",
	Long: `Preview parses the input file and prints the slides it would generate,
along with structure statistics and suggestions, without rendering anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, slides, err := buildDeck(cmd, args[0])
		if err != nil {
			return err
		}

		fmt.Println("Title:", o.Title)
		fmt.Println()
		for i, s := range slides {
			fmt.Printf("%2d. [%s] %s\n", i+1, s.Kind, s.Title)
			for _, b := range s.Body {
				fmt.Println("      -", b)
			}
		}

		stats := deck.Analyze(slides)
		fmt.Println()
		fmt.Printf("Slides: %d (title %d, section %d, bullets %d, quote %d)\n",
			stats.TotalSlides,
			stats.Kinds[deck.KindTitle],
			stats.Kinds[deck.KindSection],
			stats.Kinds[deck.KindBullets],
			stats.Kinds[deck.KindQuote])
		fmt.Printf("Average bullets per slide: %.1f\n", stats.AvgBullets)

		for _, hint := range deck.Suggest(slides) {
			fmt.Println("Hint:", hint)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("template", "", "Google Slides template name")
	previewCmd.Flags().Int("max-bullets", 0, "split bullet lists longer than this across slides")
	previewCmd.Flags().String("format", "", "input format override: txt or md")

	rootCmd.AddCommand(previewCmd)
}
