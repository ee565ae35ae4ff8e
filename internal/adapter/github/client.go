package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/repopitch/internal/domain"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
	lookupPerPage  = 5
)

// repoURLRegex extracts owner and name from a repository URL. The name is
// terminated by end-of-string, '/', '?' or '#'.
var repoURLRegex = regexp.MustCompile(`github\.com/([^/]+)/([^/?#]+)`)

// ClientConfig contains optional overrides for the GitHub client.
type ClientConfig struct {
	BaseURL string
	Timeout int // seconds
}

// Client collects repository data from the GitHub REST API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new GitHub client.
func NewClient(token string, config ClientConfig, logger *zap.Logger) *Client {
	timeout := defaultTimeout
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	baseURL := defaultBaseURL
	if config.BaseURL != "" {
		baseURL = config.BaseURL
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ParseRepoURL extracts owner and name from a repository URL.
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	match := repoURLRegex.FindStringSubmatch(repoURL)
	if match == nil {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidURL, repoURL)
	}
	return match[1], match[2], nil
}

// Collect resolves the repository URL and issues five concurrent lookups:
// metadata, README, contributors, commits and open issues. The metadata
// lookup is fatal on failure; each of the other four degrades its field to
// empty without aborting the rest.
func (c *Client) Collect(ctx context.Context, repoURL string) (*domain.RepositoryRecord, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	owner, name, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	record := &domain.RepositoryRecord{
		Contributors: []json.RawMessage{},
		Commits:      []json.RawMessage{},
		Issues:       []json.RawMessage{},
	}

	repoPath := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, name)

	g, gctx := errgroup.WithContext(ctx)

	// Metadata: the only fatal lookup.
	g.Go(func() error {
		body, status, err := c.get(gctx, repoPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		switch {
		case status == http.StatusNotFound:
			return fmt.Errorf("%w: %s/%s", ErrRepositoryNotFound, owner, name)
		case status == http.StatusForbidden:
			return fmt.Errorf("%w: %s/%s", ErrAccessDenied, owner, name)
		case status != http.StatusOK:
			return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, status)
		}

		var info map[string]any
		if err := json.Unmarshal(body, &info); err != nil {
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		record.Info = info
		return nil
	})

	// README: degrades to empty.
	g.Go(func() error {
		body, status, err := c.get(gctx, repoPath+"/readme")
		if err != nil || status != http.StatusOK {
			c.logger.Warn("readme lookup degraded", zap.Int("status", status), zap.Error(err))
			return nil
		}

		var readme struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(body, &readme); err != nil {
			c.logger.Warn("readme payload unreadable", zap.Error(err))
			return nil
		}

		decoded, err := base64.StdEncoding.DecodeString(readme.Content)
		if err != nil {
			// GitHub wraps base64 content at 60 columns.
			decoded, err = base64.StdEncoding.DecodeString(stripNewlines(readme.Content))
		}
		if err != nil {
			c.logger.Warn("readme decode failed", zap.Error(err))
			return nil
		}
		record.Readme = string(decoded)
		return nil
	})

	g.Go(c.listLookup(gctx, repoPath+"/contributors", "contributors", &record.Contributors))
	g.Go(c.listLookup(gctx, repoPath+"/commits", "commits", &record.Commits))
	g.Go(c.listLookup(gctx, repoPath+"/issues?state=open", "issues", &record.Issues))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return record, nil
}

// listLookup fetches one of the top-5 list endpoints, degrading to an empty
// list on any failure.
func (c *Client) listLookup(ctx context.Context, url, field string, dest *[]json.RawMessage) func() error {
	sep := "?"
	for _, r := range url {
		if r == '?' {
			sep = "&"
		}
	}
	url = fmt.Sprintf("%s%sper_page=%d", url, sep, lookupPerPage)

	return func() error {
		body, status, err := c.get(ctx, url)
		if err != nil || status != http.StatusOK {
			c.logger.Warn("list lookup degraded",
				zap.String("field", field),
				zap.Int("status", status),
				zap.Error(err))
			return nil
		}

		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			c.logger.Warn("list payload unreadable", zap.String("field", field), zap.Error(err))
			return nil
		}
		*dest = items
		return nil
	}
}

// get performs an authenticated GET and returns body and status code.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "repopitch")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
