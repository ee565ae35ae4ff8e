package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/repopitch/internal/domain"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultModel       = "llama3-70b-8192"
	defaultTimeout     = 60 * time.Second

	readmeExcerptLimit = 2000
	maxTokens          = 2048
)

// GroqProvider implements the Provider interface against the Groq
// chat-completion API.
type GroqProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// ProviderConfig contains optional overrides for a provider.
type ProviderConfig struct {
	BaseURL string
	Model   string
	Timeout int // seconds
}

// NewGroqProvider creates a new Groq provider.
func NewGroqProvider(apiKey string, config ProviderConfig, logger *zap.Logger) *GroqProvider {
	timeout := defaultTimeout
	if config.Timeout > 0 {
		timeout = time.Duration(config.Timeout) * time.Second
	}

	baseURL := defaultGroqBaseURL
	if config.BaseURL != "" {
		baseURL = config.BaseURL
	}

	model := defaultModel
	if config.Model != "" {
		model = config.Model
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &GroqProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetName returns the provider name.
func (g *GroqProvider) GetName() string {
	return "groq"
}

// GenerateDeck builds the prompt, invokes the completion endpoint and
// parses the structured slide output. A response that cannot be parsed
// into at least one slide is replaced by the deterministic fallback deck;
// network failures and non-2xx statuses are returned as errors, with 401
// and 429 mapped to their distinct conditions.
func (g *GroqProvider) GenerateDeck(ctx context.Context, request GenerationRequest) (*GenerationResponse, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !request.Record.Valid() {
		return nil, errors.New("repository record is required")
	}

	startTime := time.Now()

	prompt := g.buildPrompt(request)
	reqBody := groqRequest{
		Model: g.model,
		Messages: []message{
			{
				Role: "system",
				Content: "You are an expert pitch deck creator. Always respond with valid JSON " +
					"containing slide data. Be concise, compelling, and investor-focused.",
			},
			{Role: "user", Content: prompt},
		},
		MaxTokens:      maxTokens,
		Temperature:    ptrFloat(0.7),
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	resp, err := g.makeRequest(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	deck, parseErr := parseSlides(resp)
	fallback := false
	if parseErr != nil {
		g.logger.Warn("slide parse failed, substituting fallback deck", zap.Error(parseErr))
		deck = FallbackDeck(request.Record)
		fallback = true
	}

	return &GenerationResponse{
		Deck:             deck,
		Fallback:         fallback,
		TokensUsed:       resp.Usage.TotalTokens,
		Model:            resp.Model,
		ProcessingTimeMs: int(time.Since(startTime).Milliseconds()),
	}, nil
}

// buildPrompt embeds the repository data, settings and structural
// instructions into a single completion prompt.
func (g *GroqProvider) buildPrompt(request GenerationRequest) string {
	record := request.Record

	readme := record.Readme
	if len(readme) > readmeExcerptLimit {
		readme = readme[:readmeExcerptLimit]
	}
	if readme == "" {
		readme = "No README available"
	}

	var sb strings.Builder

	sb.WriteString("You are a world-class pitch deck generator specializing in creating compelling ")
	sb.WriteString("startup presentations. Transform the following GitHub repository data into a ")
	sb.WriteString("professional, investor-ready pitch deck.\n\n")

	sb.WriteString("REPOSITORY DATA:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", record.Name()))
	sb.WriteString(fmt.Sprintf("- Description: %s\n", record.Description()))
	sb.WriteString(fmt.Sprintf("- Stars: %d\n", record.Stars()))
	sb.WriteString(fmt.Sprintf("- Forks: %d\n", record.Forks()))
	sb.WriteString(fmt.Sprintf("- Language: %s\n", record.Language()))
	sb.WriteString(fmt.Sprintf("- README: %s\n", readme))
	sb.WriteString(fmt.Sprintf("- Contributors: %d\n", len(record.Contributors)))
	sb.WriteString(fmt.Sprintf("- Recent Activity: %d recent commits\n\n", len(record.Commits)))

	sb.WriteString("SETTINGS:\n")
	sb.WriteString(fmt.Sprintf("- Tone: %s (adjust technical vs business focus accordingly)\n", request.Settings.Tone))
	sb.WriteString(fmt.Sprintf("- Include Charts: %v\n", request.Settings.IncludeCharts))
	sb.WriteString(fmt.Sprintf("- Theme: %s\n\n", request.Theme.Name))

	sb.WriteString("INSTRUCTIONS:\n")
	sb.WriteString("1. Create exactly 5-6 slides with these roles in order: title, problem, solution, market/traction, technology, next steps\n")
	sb.WriteString("2. NO emojis or decorative symbols in titles or content\n")
	sb.WriteString("3. Each slide must have a clear title, one concise main text sentence, and at most 4 bullet points\n")
	sb.WriteString("4. Use powerful, action-oriented business language\n\n")

	sb.WriteString("Generate a JSON response with this exact structure:\n")
	sb.WriteString(`{"slides":[{"title":"...","text":"...","bullets":["...","..."]}]}`)
	sb.WriteString("\n\nReturn ONLY valid JSON, no other text.")

	return sb.String()
}

// makeRequest posts the completion request and maps error statuses.
func (g *GroqProvider) makeRequest(ctx context.Context, reqBody groqRequest) (*groqResponse, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: check your GROQ_API_KEY", ErrInvalidAPIKey)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{
			Message:    "rate limit exceeded, please wait a moment and try again",
			RetryAfter: 60,
		}
	case resp.StatusCode != http.StatusOK:
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	var groqResp groqResponse
	if err := json.Unmarshal(body, &groqResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &groqResp, nil
}

// parseSlides extracts and normalizes the slide list from a completion
// response. Each entry gets a positional default title when missing, empty
// text when absent, and an empty bullet list when bullets are not an array.
func parseSlides(resp *groqResponse) (domain.Deck, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, errors.New("empty response content")
	}

	var parsed struct {
		Slides []struct {
			Title   string          `json:"title"`
			Text    string          `json:"text"`
			Bullets json.RawMessage `json:"bullets"`
		} `json:"slides"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse structured output: %w", err)
	}
	if len(parsed.Slides) == 0 {
		return nil, errors.New("no slides generated")
	}

	deck := make(domain.Deck, 0, len(parsed.Slides))
	for i, s := range parsed.Slides {
		title := s.Title
		if title == "" {
			title = fmt.Sprintf("Slide %d", i+1)
		}

		var bullets []string
		if len(s.Bullets) > 0 {
			// Non-array bullets degrade to an empty list.
			_ = json.Unmarshal(s.Bullets, &bullets)
		}
		if bullets == nil {
			bullets = []string{}
		}

		deck = append(deck, domain.Slide{
			Title:   title,
			Text:    s.Text,
			Bullets: bullets,
		})
	}

	return deck, nil
}

func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Errorf("API error (%d): %s", statusCode, errResp.Error.Message)
	}

	bodyStr := string(body)
	if len(bodyStr) > 500 {
		bodyStr = bodyStr[:500] + "..."
	}
	return fmt.Errorf("API error: status code %d, body: %s", statusCode, bodyStr)
}

func ptrFloat(f float64) *float64 {
	return &f
}

// Type definitions for the Groq API.

type groqRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type groqResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Index   int     `json:"index"`
	Message message `json:"message"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
