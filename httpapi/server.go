// Package httpapi exposes the résumé parser as a small HTTP service.
//
// POST /api/parse accepts a document as the raw request body or as the
// "file" field of a multipart form and returns the parsed résumé as
// JSON. With ?store=true the result is also persisted and the response
// carries its id. Stored résumés are served from /api/resumes.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsawler/vitae"
	"github.com/tsawler/vitae/store"
)

// Server is the HTTP front end for the parser.
type Server struct {
	router chi.Router
	store  *store.Store
	log    *slog.Logger
	cfg    Config
}

// NewServer creates and configures the HTTP server. st may be nil when
// persistence is disabled; the /api/resumes routes then answer 503.
func NewServer(st *store.Store, log *slog.Logger, cfg Config) *Server {
	s := &Server{
		store: st,
		log:   log,
		cfg:   cfg,
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

	r.Get("/health", s.handleHealth)

	r.Post("/api/parse", s.handleParse)
	r.Get("/api/resumes", s.handleListResumes)
	r.Get("/api/resumes/{id}", s.handleGetResume)
	r.Delete("/api/resumes/{id}", s.handleDeleteResume)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"setup":  vitae.CheckSetup(),
	})
}
