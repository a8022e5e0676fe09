package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"pagetools/internal/application/port/output"
	"pagetools/internal/domain/entity"
)

// Server exposes the artifacts of one completed run over HTTP.
type Server struct {
	artifacts *entity.RunArtifacts
	log       output.LoggerPort
	srv       *http.Server
}

func New(addr string, artifacts *entity.RunArtifacts, log output.LoggerPort) *Server {
	s := &Server{artifacts: artifacts, log: log}

	requestLogger := httplog.NewLogger("pagetools", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(requestLogger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/tools.json", s.handleTools)
	r.Get("/actions.json", s.handleActions)
	r.Get("/result.json", s.handleResult)
	r.Get("/preview", s.handlePreview)

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok", "runId": s.artifacts.Result.RunID})
}

func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.artifacts.Tools)
}

func (s *Server) handleActions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.artifacts.Actions)
}

func (s *Server) handleResult(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.artifacts.Result)
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.artifacts.Preview))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}
