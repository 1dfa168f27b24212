package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docgen/internal/archive"
	"github.com/dgallion1/docgen/internal/config"
	"github.com/dgallion1/docgen/internal/stats"
	"github.com/dgallion1/docgen/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docgen.
type Server struct {
	router   chi.Router
	store    *store.Store
	archiver *archive.Archiver
	latency  *stats.Latency
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(st *store.Store, arch *archive.Archiver, latency *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    st,
		archiver: arch,
		latency:  latency,
		log:      log,
		cfg:      cfg,
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
	r.Get("/download/{filename}", s.handleDownload)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocgenAPIKey, s.log))

		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/archives", s.handleListArchives)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok","service":"docgen"}`))
}
