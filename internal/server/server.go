// Package server provides the HTTP REST API for the vc-scout dashboard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/vc-scout/internal/catalog"
	"github.com/jonathan/vc-scout/internal/crawling"
	"github.com/jonathan/vc-scout/internal/enrich"
	"github.com/jonathan/vc-scout/internal/llm"
	"github.com/jonathan/vc-scout/internal/server/ratelimit"
	"github.com/jonathan/vc-scout/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	catalog     *catalog.Catalog
	workspace   *store.Workspace
	enricher    *enrich.Enricher
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration.
type Config struct {
	Port       int
	APIKey     string // completion-API credential; validated per enrichment call
	Provider   string // "groq" (default) or "gemini"
	UseBrowser bool   // enable headless-browser fallback for SPA pages
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load company catalog: %w", err)
	}

	s := &Server{
		catalog:   cat,
		workspace: store.NewWorkspace(store.NewMemory()),
		enricher: enrich.New(cfg.APIKey, llm.ConfigForProvider(cfg.Provider), crawling.Options{
			UseBrowser: cfg.UseBrowser,
		}),
		rateLimiter: ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Enrichment
	mux.HandleFunc("POST /api/enrich", s.handleEnrich)
	mux.HandleFunc("GET /api/companies/{id}/enrichment", s.handleGetEnrichment)
	mux.HandleFunc("POST /api/companies/{id}/enrichment", s.handleEnrichCompany)

	// Catalog
	mux.HandleFunc("GET /api/companies", s.handleListCompanies)
	mux.HandleFunc("GET /api/companies/meta", s.handleCatalogMeta)
	mux.HandleFunc("GET /api/companies/{id}", s.handleGetCompany)

	// Workspace: raw key-value access
	mux.HandleFunc("GET /api/workspace", s.handleWorkspaceKeys)
	mux.HandleFunc("GET /api/workspace/{key}", s.handleWorkspaceGet)
	mux.HandleFunc("PUT /api/workspace/{key}", s.handleWorkspaceSet)
	mux.HandleFunc("DELETE /api/workspace/{key}", s.handleWorkspaceDelete)

	// Workspace: company lists
	mux.HandleFunc("GET /api/lists", s.handleListLists)
	mux.HandleFunc("POST /api/lists", s.handleCreateList)
	mux.HandleFunc("DELETE /api/lists/{name}", s.handleDeleteList)
	mux.HandleFunc("POST /api/lists/{name}/companies/{id}", s.handleAddToList)
	mux.HandleFunc("DELETE /api/lists/{name}/companies/{id}", s.handleRemoveFromList)

	// Workspace: saved searches
	mux.HandleFunc("GET /api/searches", s.handleListSearches)
	mux.HandleFunc("POST /api/searches", s.handleCreateSearch)
	mux.HandleFunc("DELETE /api/searches/{id}", s.handleDeleteSearch)

	// Workspace: bookmarks
	mux.HandleFunc("GET /api/bookmarks", s.handleListBookmarks)
	mux.HandleFunc("POST /api/bookmarks/{id}/toggle", s.handleToggleBookmark)

	// Workspace: notes
	mux.HandleFunc("GET /api/companies/{id}/notes", s.handleListNotes)
	mux.HandleFunc("POST /api/companies/{id}/notes", s.handleAddNote)
	mux.HandleFunc("DELETE /api/companies/{id}/notes/{note_id}", s.handleDeleteNote)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // enrichment calls scrape and prompt
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID)
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			log.Printf("[rate-limit] limit exceeded for %s", clientID)
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
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

// extractClientID extracts the client identifier (IP address) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
