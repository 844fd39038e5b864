// Package server implements the local preview server: it serves the
// generated site, exposes a small JSON API over the loaded content,
// and pushes live-reload events to connected pages.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/filter"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the generated site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the preview server.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	hub        *reloadHub

	mu  sync.RWMutex
	lib *content.Library
}

// New creates a preview server over the given content library.
func New(cfg Config, lib *content.Library) *Server {
	s := &Server{
		cfg: cfg,
		lib: lib,
		hub: newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

// SetLibrary swaps in freshly loaded content after a rebuild.
func (s *Server) SetLibrary(lib *content.Library) {
	s.mu.Lock()
	s.lib = lib
	s.mu.Unlock()
}

func (s *Server) library() *content.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib
}

// NotifyReload tells every connected page to reload itself.
func (s *Server) NotifyReload() {
	s.hub.broadcast("reload")
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/projects", s.handleProjects)
	r.Get("/api/certificates", s.handleCertificates)
	r.Get("/api/tags", s.handleTags)
	r.Get("/ws", s.hub.handleWS)

	// Everything else is the generated site.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// handleProjects returns the project list, optionally narrowed by the
// q (search text) and tag query parameters.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	q := filter.Query{
		Text: r.URL.Query().Get("q"),
		Tag:  r.URL.Query().Get("tag"),
	}
	writeJSON(w, filter.Apply(s.library().Projects, q))
}

func (s *Server) handleCertificates(w http.ResponseWriter, r *http.Request) {
	certs := s.library().Certificates
	if certs == nil {
		certs = []content.Certificate{}
	}
	writeJSON(w, certs)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, filter.Tags(s.library().Projects))
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: writing response: %v", err)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio server listening on http://localhost:%d", s.cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
