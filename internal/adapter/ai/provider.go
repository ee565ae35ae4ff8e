package ai

import (
	"context"
	"errors"

	"github.com/yourusername/repopitch/internal/domain"
)

// Provider defines the interface for slide-generation backends.
type Provider interface {
	// GenerateDeck turns collected repository data into a slide deck.
	GenerateDeck(ctx context.Context, request GenerationRequest) (*GenerationResponse, error)

	// GetName returns the provider name (e.g., "groq").
	GetName() string
}

// GenerationRequest carries everything the provider needs to draft slides.
type GenerationRequest struct {
	Record   *domain.RepositoryRecord
	Settings domain.GenerationSettings
	Theme    domain.Theme
}

// GenerationResponse contains the generated deck and call metadata.
type GenerationResponse struct {
	Deck             domain.Deck
	Fallback         bool // true when the deterministic template was substituted
	TokensUsed       int
	Model            string
	ProcessingTimeMs int
}

// Generator errors surfaced to the caller. The wizard still proceeds with
// the fallback deck; these exist so the condition can be reported.
var (
	// ErrInvalidAPIKey maps HTTP 401 from the completion endpoint.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrMissingAPIKey means no completion-provider key was configured.
	ErrMissingAPIKey = errors.New("completion API key not configured")
)

// RateLimitError maps HTTP 429 from the completion endpoint.
type RateLimitError struct {
	Message    string
	RetryAfter int // seconds to wait before retrying
}

func (e *RateLimitError) Error() string {
	return e.Message
}
