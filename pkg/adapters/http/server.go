package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/branchtale"
	"github.com/aretw0/branchtale/pkg/domain"
	"github.com/aretw0/branchtale/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes a shared Reader over HTTP.
type Server struct {
	Reader  ports.Reader
	Streams *StreamManager
	Logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the reader.
//
//	GET  /health           liveness
//	GET  /info             app and version
//	GET  /view             current view model
//	GET  /path             visited path
//	GET  /events           SSE stream of views after each change
//	POST /choices/{index}  select a rendered choice
//	POST /restart          begin a new traversal
func NewHandler(reader ports.Reader, opts ...Option) http.Handler {
	s := &Server{
		Reader:  reader,
		Streams: NewStreamManager(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Streams.logger = s.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/view", s.GetView)
	r.Get("/path", s.GetPath)
	r.Get("/events", s.SubscribeEvents)
	r.Post("/choices/{index}", s.SelectChoice)
	r.Post("/restart", s.Restart)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "branchtale-http",
		"version": branchtale.Version,
	})
}

// GetView handles the GET /view request.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Reader.View())
}

// GetPath handles the GET /path request.
func (s *Server) GetPath(w http.ResponseWriter, r *http.Request) {
	path := s.Reader.Path()
	if path == nil {
		path = []domain.PathEntry{}
	}
	s.writeJSON(w, http.StatusOK, path)
}

// SelectChoice handles the POST /choices/{index} request.
// Missing nodes and malformed choices are part of the returned view.
func (s *Server) SelectChoice(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid choice index %q", raw))
		return
	}

	if err := s.Reader.Select(r.Context(), index); err != nil {
		if errors.Is(err, domain.ErrChoiceUnavailable) {
			s.writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.Logger.Debug("selection surfaced error", "index", index, "error", err)
	}
	s.respondWithView(w)
}

// Restart handles the POST /restart request.
func (s *Server) Restart(w http.ResponseWriter, r *http.Request) {
	if err := s.Reader.Restart(r.Context()); err != nil {
		s.Logger.Debug("restart surfaced error", "error", err)
	}
	s.respondWithView(w)
}

func (s *Server) respondWithView(w http.ResponseWriter) {
	view := s.Reader.View()
	if payload, err := json.Marshal(view); err == nil {
		s.Streams.Broadcast(string(payload))
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
