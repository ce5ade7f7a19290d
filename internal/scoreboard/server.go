package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// maxBodyBytes caps submission bodies.
const maxBodyBytes = 1 << 10

// DefaultAddr is where the API listens when nothing else is configured.
const DefaultAddr = ":5000"

// Server is the scoreboard HTTP API.
type Server struct {
	repo   Repository
	hub    *Hub
	logger *log.Logger
	mux    *http.ServeMux
}

// NewServer creates a server backed by repo.
func NewServer(repo Repository, logger *log.Logger) *Server {
	s := &Server{
		repo:   repo,
		hub:    NewHub(logger),
		logger: logger,
		mux:    http.NewServeMux(),
	}

	for _, prefix := range []string{"/scores", "/api/scores"} {
		s.mux.HandleFunc("GET "+prefix, s.handleTop)
		s.mux.HandleFunc("POST "+prefix, s.handleSubmit)
		s.mux.HandleFunc("GET "+prefix+"/live", s.handleLive)
	}
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// Handler returns the API with logging, CORS and panic recovery applied.
func (s *Server) Handler() http.Handler {
	return withRecovery(s.logger, withLogging(s.logger, withCORS(s.mux)))
}

// Hub exposes the live feed.
func (s *Server) Hub() *Hub {
	return s.hub
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("scoreboard: listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Scoreboard API listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("scoreboard: serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down scoreboard API...")
	s.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("scoreboard: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.Top(r.Context(), TopN)
	if err != nil {
		s.logger.Error("load ranking", "err", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(records))
}

type submission struct {
	Score *int `json:"score"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submission
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		case errors.As(err, &typeErr):
			writeError(w, http.StatusBadRequest, "score must be an integer")
		default:
			writeError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return
	}

	switch {
	case req.Score == nil:
		writeError(w, http.StatusBadRequest, "score is required")
		return
	case *req.Score < 0:
		writeError(w, http.StatusBadRequest, "score must be non-negative")
		return
	}

	rec, err := s.repo.Add(r.Context(), *req.Score)
	if err != nil {
		if errors.Is(err, ErrInvalidScore) {
			writeError(w, http.StatusBadRequest, "score must be non-negative")
			return
		}
		s.logger.Error("store score", "err", err)
		writeError(w, http.StatusInternalServerError, "cannot store score")
		return
	}

	s.logger.Info("Score submitted", "id", rec.ID, "score", rec.Score)
	writeJSON(w, http.StatusCreated, rec)

	// The live feed is best effort; a failed read only skips one push.
	if top, err := s.repo.Top(context.WithoutCancel(r.Context()), TopN); err == nil {
		s.hub.Broadcast(top)
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	records, err := s.repo.Top(r.Context(), TopN)
	if err != nil {
		s.logger.Error("load ranking", "err", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}
	s.hub.Serve(w, r, records)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func nonNil(records []Record) []Record {
	if records == nil {
		return []Record{}
	}
	return records
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
