package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/yourusername/repopitch/internal/adapter/ai"
	"github.com/yourusername/repopitch/internal/adapter/github"
	"github.com/yourusername/repopitch/internal/domain"
	"github.com/yourusername/repopitch/internal/export"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message, details string) {
	s.writeJSON(w, status, errorResponse{Error: message, Details: details})
}

type githubRequest struct {
	RepoURL string `json:"repoUrl"`
}

// handleGitHub collects repository data.
// POST /api/github
func (s *Server) handleGitHub(w http.ResponseWriter, r *http.Request) {
	var req githubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.RepoURL == "" {
		s.writeError(w, http.StatusBadRequest, "repoUrl is required", "")
		return
	}

	record, err := s.collector.Collect(r.Context(), req.RepoURL)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrInvalidURL):
			s.writeError(w, http.StatusBadRequest, "Invalid GitHub repository URL", "")
		case errors.Is(err, github.ErrRepositoryNotFound):
			s.writeError(w, http.StatusNotFound, "Repository not found", "")
		case errors.Is(err, github.ErrAccessDenied):
			s.writeError(w, http.StatusForbidden, "Access denied", "Rate limit exceeded or private repository")
		case errors.Is(err, github.ErrMissingToken):
			s.writeError(w, http.StatusInternalServerError, "Server configuration error", "GitHub token not configured")
		default:
			s.writeError(w, http.StatusInternalServerError, "Failed to fetch repository data", err.Error())
		}
		return
	}

	s.writeJSON(w, http.StatusOK, record)
}

type generateRequest struct {
	RepoData *domain.RepositoryRecord  `json:"repoData"`
	Settings domain.GenerationSettings `json:"settings"`
	Theme    string                    `json:"theme"`
}

type generateResponse struct {
	Slides domain.Deck `json:"slides"`
}

// handleGenerate turns collected repository data into slides. The
// response is never empty: the provider substitutes its template deck
// when the model output cannot be used.
// POST /api/generate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !req.RepoData.Valid() {
		s.writeError(w, http.StatusBadRequest, "repoData is required", "")
		return
	}

	resp, err := s.provider.GenerateDeck(r.Context(), ai.GenerationRequest{
		Record:   req.RepoData,
		Settings: req.Settings,
		Theme:    domain.Theme{Name: req.Theme},
	})
	if err != nil {
		var rateErr *ai.RateLimitError
		switch {
		case errors.Is(err, ai.ErrInvalidAPIKey):
			s.writeError(w, http.StatusUnauthorized, "Invalid API key", "")
		case errors.As(err, &rateErr):
			s.writeError(w, http.StatusTooManyRequests, "Rate limited", rateErr.Message)
		case errors.Is(err, ai.ErrMissingAPIKey):
			s.writeError(w, http.StatusInternalServerError, "Server configuration error", "Completion API key not configured")
		default:
			s.writeError(w, http.StatusInternalServerError, "Failed to generate slides", err.Error())
		}
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{Slides: resp.Deck})
}

type exportRequest struct {
	Slides domain.Deck `json:"slides"`
	Theme  string      `json:"theme"`
}

// handleExport serializes slides as a PowerPoint download.
// POST /api/export
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Buffer the package so a serialization failure can still return a
	// clean JSON error instead of a truncated download.
	var buf bytes.Buffer
	exporter := export.NewExporter(domain.Theme{Name: req.Theme})
	if err := exporter.Write(&buf, req.Slides); err != nil {
		s.logger.Error("export failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to export PPTX", "")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="presentation.pptx"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Warn("failed to stream export", zap.Error(err))
	}
}
