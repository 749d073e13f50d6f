// Package server provides the HTTP API: article ingestion, listing, and the
// newsletter generation trigger.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/viniwas/newsletter-api/internal/config"
	"github.com/viniwas/newsletter-api/internal/model"
	"github.com/viniwas/newsletter-api/internal/storage"
	"github.com/viniwas/newsletter-api/internal/webhook"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server is the main HTTP server.
type Server struct {
	store    storage.Storage
	notifier *webhook.Notifier
	cfg      *config.Config
	log      *slog.Logger
	router   chi.Router
}

// New creates a Server wired to the given storage and webhook notifier.
func New(store storage.Storage, notifier *webhook.Notifier, cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/articles", s.handleCreateArticle)
		r.Get("/articles/{clientID}", s.handleListArticles)
		r.Post("/generate-newsletter", s.handleGenerateNewsletter)
	})

	s.router = r
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server on addr, blocking until it fails.
func (s *Server) Start(addr string) error {
	s.log.Info("newsletter API server listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var article model.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	if err := s.store.CreateArticle(r.Context(), &article); err != nil {
		s.log.Error("database error", "client_id", article.ClientID, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to save article"})
		return
	}

	s.log.Info("article saved", "client_id", article.ClientID, "headline", article.Headline, "id", article.ID)
	s.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Article saved successfully",
		"article": article,
	})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	articles, err := s.store.ListArticles(r.Context(), clientID)
	if err != nil {
		s.log.Error("fetch articles", "client_id", clientID, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to fetch articles"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"articles":  articles,
		"client_id": clientID,
	})
}

func (s *Server) handleGenerateNewsletter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID           string  `json:"client_id"`
		SelectedArticleIDs []int64 `json:"selected_article_ids"`
		WebhookURL         string  `json:"webhook_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	// The dashboard blocks empty selections before the network call, but the
	// server re-validates rather than trusting the client.
	if len(req.SelectedArticleIDs) == 0 {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No articles selected"})
		return
	}

	webhookURL := req.WebhookURL
	if webhookURL == "" {
		webhookURL = s.cfg.WebhookURL
	}
	if webhookURL == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "No webhook URL configured"})
		return
	}

	articles, err := s.store.ListArticlesByID(r.Context(), req.ClientID, req.SelectedArticleIDs)
	if err != nil {
		s.log.Error("fetch selected articles", "client_id", req.ClientID, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to fetch articles"})
		return
	}

	if err := s.notifier.Notify(r.Context(), webhookURL, req.ClientID, articles); err != nil {
		s.log.Error("trigger newsletter generation", "client_id", req.ClientID, "error", err)
		s.writeJSON(w, http.StatusBadGateway, map[string]any{"error": "Failed to trigger newsletter generation"})
		return
	}

	s.log.Info("newsletter generation triggered", "client_id", req.ClientID, "count", len(articles))
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Newsletter generation started with %d articles", len(articles)),
		"count":   len(articles),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("encode response", "error", err)
	}
}
