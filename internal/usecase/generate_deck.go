package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/repopitch/internal/adapter/ai"
	"github.com/yourusername/repopitch/internal/adapter/github"
	"github.com/yourusername/repopitch/internal/domain"
)

// Collector fetches repository data for deck generation.
type Collector interface {
	Collect(ctx context.Context, repoURL string) (*domain.RepositoryRecord, error)
}

// GenerateDeckUseCase orchestrates the collect -> generate -> assemble
// pipeline. It always produces a deck: collection failures fall back to
// the built-in demo deck, generation failures to the deterministic
// template, so the caller never dead-ends.
type GenerateDeckUseCase struct {
	collector Collector
	provider  ai.Provider
	logger    *zap.Logger
}

// NewGenerateDeckUseCase creates a new GenerateDeckUseCase.
func NewGenerateDeckUseCase(collector Collector, provider ai.Provider, logger *zap.Logger) *GenerateDeckUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateDeckUseCase{
		collector: collector,
		provider:  provider,
		logger:    logger,
	}
}

// GenerateDeckRequest contains the input for the pipeline.
type GenerateDeckRequest struct {
	RepoURL  string
	Settings domain.GenerationSettings
	Theme    domain.Theme
}

// GenerateDeckResponse contains the assembled deck and how it was produced.
type GenerateDeckResponse struct {
	Deck     domain.Deck
	RepoName string
	Fallback bool   // deck came from the template, not the model
	Demo     bool   // collection failed entirely; deck is the demo deck
	Warning  string // human-readable note when a stage degraded
}

// Execute runs the full pipeline.
func (uc *GenerateDeckUseCase) Execute(ctx context.Context, req GenerateDeckRequest) (*GenerateDeckResponse, error) {
	record, err := uc.collector.Collect(ctx, req.RepoURL)
	if err != nil {
		if errors.Is(err, github.ErrInvalidURL) {
			return nil, err
		}
		uc.logger.Warn("repository collection failed, switching to demo mode",
			zap.String("repo_url", req.RepoURL),
			zap.Error(err))
		deck := AssembleDeck(DemoDeck(), req.Settings, req.Theme)
		return &GenerateDeckResponse{
			Deck:     deck,
			RepoName: "Demo Project",
			Fallback: true,
			Demo:     true,
			Warning:  collectWarning(err),
		}, nil
	}

	resp := &GenerateDeckResponse{RepoName: record.Name()}

	genResp, err := uc.provider.GenerateDeck(ctx, ai.GenerationRequest{
		Record:   record,
		Settings: req.Settings,
		Theme:    req.Theme,
	})
	var deck domain.Deck
	switch {
	case err != nil:
		uc.logger.Warn("slide generation failed, using template deck",
			zap.String("provider", uc.provider.GetName()),
			zap.Error(err))
		deck = ai.FallbackDeck(record)
		resp.Fallback = true
		resp.Warning = generateWarning(err)
	default:
		deck = genResp.Deck
		resp.Fallback = genResp.Fallback
		if genResp.Fallback {
			resp.Warning = "The model response could not be parsed; showing a template deck built from repository data."
		}
	}

	resp.Deck = AssembleDeck(deck, req.Settings, req.Theme)
	return resp, nil
}

func collectWarning(err error) string {
	switch {
	case errors.Is(err, github.ErrRepositoryNotFound):
		return "Repository not found; showing a demo presentation instead."
	case errors.Is(err, github.ErrAccessDenied):
		return "GitHub denied access (rate limit or private repository); showing a demo presentation instead."
	case errors.Is(err, github.ErrMissingToken):
		return "No GitHub token configured; showing a demo presentation instead."
	default:
		return "GitHub could not be reached; showing a demo presentation instead."
	}
}

func generateWarning(err error) string {
	var rateErr *ai.RateLimitError
	switch {
	case errors.As(err, &rateErr):
		return fmt.Sprintf("The model is rate limited (retry in %ds); showing a template deck built from repository data.", rateErr.RetryAfter)
	case errors.Is(err, ai.ErrInvalidAPIKey), errors.Is(err, ai.ErrMissingAPIKey):
		return "No usable model API key; showing a template deck built from repository data."
	default:
		return "Slide generation failed; showing a template deck built from repository data."
	}
}
