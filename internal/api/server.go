package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmazur/slidegen/internal/config"
	"github.com/jmazur/slidegen/internal/gslides"
	"github.com/jmazur/slidegen/internal/render"
	"github.com/jmazur/slidegen/internal/render/htmlslides"
	"github.com/jmazur/slidegen/internal/theme"
)

// Server is the HTTP shell around the slide generation pipeline.
type Server struct {
	router chi.Router
	log    *slog.Logger
	cfg    config.Config

	themes *theme.Registry
	html   *htmlslides.Renderer

	// cloud overrides the lazily constructed Google renderer; tests set it.
	cloud render.Renderer
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg config.Config, themes *theme.Registry, html *htmlslides.Renderer, log *slog.Logger) *Server {
	s := &Server{
		log:    log,
		cfg:    cfg,
		themes: themes,
		html:   html,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/preview", s.handlePreview)
		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/themes", s.handleThemes)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// cloudRenderer returns the injected renderer or builds one from the
// configured credentials.
func (s *Server) cloudRenderer() (render.Renderer, error) {
	if s.cloud != nil {
		return s.cloud, nil
	}
	token, err := gslides.LoadToken(s.cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}
	client := gslides.NewClient(s.cfg.SlidesAPIURL, token, s.log)
	return gslides.NewRenderer(client, s.themes, s.log), nil
}
