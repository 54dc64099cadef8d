package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available HTML themes and Google Slides templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadThemes()
		if err != nil {
			return err
		}

		fmt.Println("HTML themes (Reveal.js):")
		for _, id := range registry.HTMLThemeIDs() {
			th, _ := registry.HTMLTheme(id)
			fmt.Printf("  %-12s transition=%s\n", id, th.Transition)
		}

		fmt.Println()
		fmt.Println("Google Slides templates:")
		for _, id := range registry.TemplateIDs() {
			tmpl, _ := registry.Template(id)
			fmt.Printf("  %-12s title=%s body=%s\n", id, tmpl.TitleFont, tmpl.BodyFont)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
