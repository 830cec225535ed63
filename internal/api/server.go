package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"virtual-ta/internal/config"
	"virtual-ta/internal/engine"
)

// Engine is the orchestrator surface the HTTP layer depends on.
type Engine interface {
	Status() engine.Status
	Answer(ctx context.Context, question, imageB64 string) (engine.Result, error)
}

// Server is the HTTP API for the virtual teaching assistant.
type Server struct {
	router chi.Router
	engine Engine
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(eng Engine, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		engine: eng,
		log:    log,
		cfg:    cfg,
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
	r.Use(RequestLogger(s.log, s.cfg.MaxResponseTime))

	r.Get("/health", s.handleHealth)
	r.Post("/", s.handleQuestion)

	s.router = r
}
