// Package http exposes the snow data API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/pipeline"
)

// defaultThreshold is used when the caller does not supply one: a
// conservative value for older Finnish pitched roofs, kg/m².
const defaultThreshold = 140

var postalCodeRe = regexp.MustCompile(`^\d{5}$`)

// SnowDataProvider is the pipeline surface the server needs.
type SnowDataProvider interface {
	GetSnowData(ctx context.Context, postalCode string, threshold int) (domain.SnowDataResult, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the snow data endpoint and operational routes.
type Server struct {
	httpServer *http.Server
	provider   SnowDataProvider
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /v1/snowload, /healthz, /readyz,
// and /metrics routes.
func NewServer(addr string, provider SnowDataProvider, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		provider: provider,
		logger:   logger,
	}

	mux.HandleFunc("GET /v1/snowload", s.handleSnowLoad)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleSnowLoad(w http.ResponseWriter, r *http.Request) {
	postalCode := r.URL.Query().Get("postal_code")
	if !postalCodeRe.MatchString(postalCode) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "postal_code must be a 5-digit Finnish postal code",
		})
		return
	}

	threshold := defaultThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "threshold must be a positive integer",
			})
			return
		}
		threshold = v
	}

	result, err := s.provider.GetSnowData(r.Context(), postalCode, threshold)
	if err != nil {
		if errors.Is(err, pipeline.ErrPostalCodeNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "postal_code_not_found",
				"message": "Postinumeroa ei löytynyt",
			})
			return
		}
		// The pipeline contract says this cannot happen; log loudly if it does.
		s.logger.Error("snow data request failed", "postal_code", postalCode, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.provider.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
