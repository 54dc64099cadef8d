package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmazur/slidegen/internal/api"
	"github.com/jmazur/slidegen/internal/config"
	"github.com/jmazur/slidegen/internal/render/htmlslides"
	"github.com/jmazur/slidegen/internal/theme"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web upload form and HTTP API",
	Long: `Serve starts an HTTP server with a browser upload form plus JSON endpoints
for previewing and generating presentations. Server settings come from the
environment (PORT, SLIDEGEN_API_KEY, GOOGLE_CREDENTIALS_FILE, ...).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}

		registry := theme.NewRegistry()
		if err := registry.LoadDir(cfg.ThemesDir); err != nil {
			return err
		}

		html, err := htmlslides.New(registry)
		if err != nil {
			return err
		}

		srv := api.NewServer(cfg, registry, html, log)

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting slidegen", "port", cfg.Port, "version", version)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
