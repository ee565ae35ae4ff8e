// Package server exposes the pipeline stages over HTTP so the collector,
// generator, and exporter can be consumed as standalone endpoints.
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/yourusername/repopitch/internal/adapter/ai"
	"github.com/yourusername/repopitch/internal/usecase"
)

// Server routes the pipeline API.
type Server struct {
	router    *mux.Router
	collector usecase.Collector
	provider  ai.Provider
	logger    *zap.Logger
}

// New creates a Server wired to the given pipeline stages.
func New(collector usecase.Collector, provider ai.Provider, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		router:    mux.NewRouter(),
		collector: collector,
		provider:  provider,
		logger:    logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/github", s.handleGitHub).Methods(http.MethodPost)
	api.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/export", s.handleExport).Methods(http.MethodPost)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger tags each request with an id and logs method, path,
// status, and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
