package analyze

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/theopenlane/httpsling"
)

const (
	// openAIAPIURL is the chat completions endpoint
	openAIAPIURL = "https://api.openai.com/v1/chat/completions"
	// openAIModel balances analysis quality against per-scan cost
	openAIModel = "gpt-4o-mini"
	// openAITemperature keeps classification output stable across runs
	openAITemperature = 0.1
	// openAIMaxTokens bounds the response size
	openAIMaxTokens = 2048
	// defaultProviderTimeout bounds a single model round trip
	defaultProviderTimeout = 60 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIProvider analyzes documents directly against the OpenAI API using
// a user-supplied key. It serves as the fallback when the hosted gateway
// is unavailable or unconfigured.
type OpenAIProvider struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// OpenAIOption configures an OpenAIProvider
type OpenAIOption func(*OpenAIProvider)

// WithOpenAIURL overrides the API endpoint, used in tests
func WithOpenAIURL(url string) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.apiURL = url
	}
}

// WithOpenAIHTTPClient overrides the underlying HTTP client
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(p *OpenAIProvider) {
		p.httpClient = client
	}
}

// NewOpenAIProvider creates an OpenAI provider with the given key
func NewOpenAIProvider(apiKey string, opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		apiKey: apiKey,
		apiURL: openAIAPIURL,
		httpClient: &http.Client{
			Timeout: defaultProviderTimeout,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name implements Provider
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Available implements Provider
func (p *OpenAIProvider) Available() bool {
	return p.apiKey != ""
}

// Analyze implements Provider
func (p *OpenAIProvider) Analyze(ctx context.Context, req Request) (*ScanResult, error) {
	body := chatRequest{
		Model: openAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req.Text)},
		},
		Temperature:    openAITemperature,
		MaxTokens:      openAIMaxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	requester := httpsling.MustNew(
		httpsling.URL(p.apiURL),
		httpsling.Post(),
		httpsling.BearerAuth(p.apiKey),
		httpsling.JSONBody(body),
		httpsling.WithHTTPClient(p.httpClient),
	)

	var chatResp chatResponse

	resp, err := requester.ReceiveWithContext(ctx, &chatResp)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", ErrServerError, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: openai: invalid API key", ErrAuthFailed)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: openai", ErrRateLimited)
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: openai: status %d", ErrQuotaExceeded, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: openai: status %d", ErrServerError, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("openai request failed with status %d", resp.StatusCode)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: openai", ErrEmptyResponse)
	}

	return ParseResponse(chatResp.Choices[0].Message.Content), nil
}
