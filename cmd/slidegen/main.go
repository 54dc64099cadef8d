// Package main is the entry point for the slidegen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the slidegen CLI.
var rootCmd = &cobra.Command{
	Use:   "slidegen",
	Short: "Generate presentation slides from text and markdown files",
	Long: `slidegen converts text, markdown, and office documents into presentation
slides. Output goes either to a Google Slides presentation (cloud mode) or to
a self-contained Reveal.js HTML file (local mode).

Each step is a subcommand: preview shows the slide structure a file would
produce, generate renders it, serve starts the web upload form, and themes
lists the available styling options.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidegen.yaml or ~/.config/slidegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidegen"))
		}
	}

	viper.SetEnvPrefix("SLIDEGEN")
	viper.AutomaticEnv()

	viper.SetDefault("theme", "black")
	viper.SetDefault("template", "simple")
	viper.SetDefault("max_bullets", 7)
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("themes_dir", "themes")
	viper.SetDefault("credentials_file", "token.json")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
