package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/repopitch/internal/adapter/ai"
	"github.com/yourusername/repopitch/internal/adapter/github"
	"github.com/yourusername/repopitch/internal/domain"
)

type stubCollector struct {
	record *domain.RepositoryRecord
	err    error
}

func (s *stubCollector) Collect(ctx context.Context, repoURL string) (*domain.RepositoryRecord, error) {
	return s.record, s.err
}

type stubProvider struct {
	resp *ai.GenerationResponse
	err  error
}

func (s *stubProvider) GenerateDeck(ctx context.Context, req ai.GenerationRequest) (*ai.GenerationResponse, error) {
	return s.resp, s.err
}

func (s *stubProvider) GetName() string { return "stub" }

func testRecord() *domain.RepositoryRecord {
	return &domain.RepositoryRecord{
		Readme: "# Test",
		Info: map[string]any{
			"name":        "test-repo",
			"description": "A test repository",
			"language":    "Go",
		},
	}
}

func TestExecuteSuccess(t *testing.T) {
	deck := domain.Deck{
		{Title: "One"}, {Title: "Two"}, {Title: "Three"},
		{Title: "Four"}, {Title: "Five"},
	}
	uc := NewGenerateDeckUseCase(
		&stubCollector{record: testRecord()},
		&stubProvider{resp: &ai.GenerationResponse{Deck: deck}},
		nil,
	)

	resp, err := uc.Execute(context.Background(), GenerateDeckRequest{
		RepoURL: "https://github.com/foo/bar",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RepoName != "test-repo" {
		t.Errorf("expected repo name test-repo, got %s", resp.RepoName)
	}
	if resp.Fallback || resp.Demo {
		t.Errorf("expected live deck, got fallback=%v demo=%v", resp.Fallback, resp.Demo)
	}
	if len(resp.Deck) != 5 {
		t.Errorf("expected 5 slides, got %d", len(resp.Deck))
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning: %s", resp.Warning)
	}
}

func TestExecuteInvalidURLIsFatal(t *testing.T) {
	uc := NewGenerateDeckUseCase(
		&stubCollector{err: github.ErrInvalidURL},
		&stubProvider{},
		nil,
	)

	_, err := uc.Execute(context.Background(), GenerateDeckRequest{RepoURL: "not-a-url"})
	if !errors.Is(err, github.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestExecuteCollectorFailureYieldsDemoDeck(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		warning string
	}{
		{"not found", github.ErrRepositoryNotFound, "not found"},
		{"access denied", github.ErrAccessDenied, "denied access"},
		{"missing token", github.ErrMissingToken, "token"},
		{"upstream down", github.ErrUpstreamUnavailable, "could not be reached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGenerateDeckUseCase(
				&stubCollector{err: tt.err},
				&stubProvider{},
				nil,
			)

			resp, err := uc.Execute(context.Background(), GenerateDeckRequest{
				RepoURL: "https://github.com/foo/bar",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !resp.Demo || !resp.Fallback {
				t.Errorf("expected demo fallback, got demo=%v fallback=%v", resp.Demo, resp.Fallback)
			}
			if len(resp.Deck) < 5 {
				t.Errorf("expected at least 5 slides, got %d", len(resp.Deck))
			}
			if resp.Deck[0].Title != "Vibe Draw" {
				t.Errorf("expected demo deck title slide, got %s", resp.Deck[0].Title)
			}
			if !strings.Contains(resp.Warning, tt.warning) {
				t.Errorf("expected warning containing %q, got %q", tt.warning, resp.Warning)
			}
		})
	}
}

func TestExecuteGeneratorFailureYieldsTemplateDeck(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		warning string
	}{
		{"rate limited", &ai.RateLimitError{Message: "slow down", RetryAfter: 60}, "rate limited"},
		{"bad key", ai.ErrInvalidAPIKey, "API key"},
		{"missing key", ai.ErrMissingAPIKey, "API key"},
		{"network", errors.New("connection refused"), "generation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGenerateDeckUseCase(
				&stubCollector{record: testRecord()},
				&stubProvider{err: tt.err},
				nil,
			)

			resp, err := uc.Execute(context.Background(), GenerateDeckRequest{
				RepoURL: "https://github.com/foo/bar",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !resp.Fallback {
				t.Error("expected fallback deck")
			}
			if resp.Demo {
				t.Error("expected live repo data, not demo mode")
			}
			if len(resp.Deck) < 5 {
				t.Errorf("expected at least 5 slides, got %d", len(resp.Deck))
			}
			if resp.Deck[0].Title != "test-repo" {
				t.Errorf("expected template title slide from repo data, got %s", resp.Deck[0].Title)
			}
			if !strings.Contains(resp.Warning, tt.warning) {
				t.Errorf("expected warning containing %q, got %q", tt.warning, resp.Warning)
			}
		})
	}
}

func TestExecuteParseFallbackPropagates(t *testing.T) {
	uc := NewGenerateDeckUseCase(
		&stubCollector{record: testRecord()},
		&stubProvider{resp: &ai.GenerationResponse{
			Deck:     ai.FallbackDeck(testRecord()),
			Fallback: true,
		}},
		nil,
	)

	resp, err := uc.Execute(context.Background(), GenerateDeckRequest{
		RepoURL: "https://github.com/foo/bar",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Fallback {
		t.Error("expected fallback flag to propagate")
	}
	if resp.Warning == "" {
		t.Error("expected a warning for a parse fallback")
	}
}

func TestExecuteAppliesAssembly(t *testing.T) {
	deck := domain.Deck{
		{Title: "One"}, {Title: "Two"}, {Title: "Three"},
		{Title: "Four"}, {Title: "Five"},
	}
	uc := NewGenerateDeckUseCase(
		&stubCollector{record: testRecord()},
		&stubProvider{resp: &ai.GenerationResponse{Deck: deck}},
		nil,
	)

	resp, err := uc.Execute(context.Background(), GenerateDeckRequest{
		RepoURL: "https://github.com/foo/bar",
		Settings: domain.GenerationSettings{
			IncludeCharts:  true,
			CustomChartCSV: "Month,Revenue\nJan,100",
			MediaEmbedURL:  "https://youtu.be/xyz",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Deck) != 7 {
		t.Fatalf("expected 7 slides after assembly, got %d", len(resp.Deck))
	}
	if resp.Deck[3].Chart == nil {
		t.Error("expected chart slide at index 3")
	}
	if resp.Deck[5].Media == nil {
		t.Error("expected media slide at index 5")
	}
}
