// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/mobee/resume-tailor/internal/fitting"
	"github.com/mobee/resume-tailor/internal/llm"
	"github.com/mobee/resume-tailor/internal/store"
)

// defaultRenderSlots bounds concurrent page renders; each render spawns a
// browser process.
const defaultRenderSlots = 2

// Config holds server configuration.
type Config struct {
	Port         int
	ResumeText   string
	TemplateHTML string
	MaxPages     int

	// Client is the text-generation collaborator; nil serves the heuristic
	// path only.
	Client llm.Client

	Renderer fitting.PDFRenderer
	Counter  fitting.PageCounter

	// Store persists runs and artifacts when set; otherwise artifacts are
	// held in memory only.
	Store *store.Store

	// JWTSecret enables bearer-token auth on the generation endpoints when
	// non-empty.
	JWTSecret string

	// RenderSlots caps concurrent renders; <= 0 uses the default.
	RenderSlots int
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        Config
	tokens     *TokenService
	renderSem  *semaphore.Weighted
	artifacts  *artifactIndex
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	if cfg.Renderer == nil {
		return nil, fmt.Errorf("page renderer is required")
	}
	slots := cfg.RenderSlots
	if slots <= 0 {
		slots = defaultRenderSlots
	}

	s := &Server{
		cfg:       cfg,
		renderSem: semaphore.NewWeighted(int64(slots)),
		artifacts: newArtifactIndex(),
	}
	if cfg.JWTSecret != "" {
		s.tokens = NewTokenService(cfg.JWTSecret)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /generate", s.requireAuth(s.handleGenerate))
	mux.HandleFunc("POST /assess", s.requireAuth(s.handleAssess))
	mux.HandleFunc("POST /cover-letter", s.requireAuth(s.handleCoverLetter))
	mux.HandleFunc("GET /artifacts/{id}", s.requireAuth(s.handleArtifact))
	mux.HandleFunc("GET /runs", s.requireAuth(s.handleListRuns))
	mux.HandleFunc("GET /runs/{id}", s.requireAuth(s.handleGetRun))
	mux.HandleFunc("DELETE /runs/{id}", s.requireAuth(s.handleDeleteRun))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // renders can take a while under load
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.cfg.Store != nil {
		s.cfg.Store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
