package analyze

import (
	"context"
	"fmt"
	"net/http"

	"github.com/theopenlane/httpsling"
)

const (
	// geminiAPIURL is the generateContent endpoint for the chosen model
	geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	// geminiKeyHeader carries the user API key
	geminiKeyHeader = "x-goog-api-key"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiGenConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GeminiProvider analyzes documents against the Gemini API using a
// user-supplied key. Last resort in the provider chain.
type GeminiProvider struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// GeminiOption configures a GeminiProvider
type GeminiOption func(*GeminiProvider)

// WithGeminiURL overrides the API endpoint, used in tests
func WithGeminiURL(url string) GeminiOption {
	return func(p *GeminiProvider) {
		p.apiURL = url
	}
}

// WithGeminiHTTPClient overrides the underlying HTTP client
func WithGeminiHTTPClient(client *http.Client) GeminiOption {
	return func(p *GeminiProvider) {
		p.httpClient = client
	}
}

// NewGeminiProvider creates a Gemini provider with the given key
func NewGeminiProvider(apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		apiKey: apiKey,
		apiURL: geminiAPIURL,
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
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Available implements Provider
func (p *GeminiProvider) Available() bool {
	return p.apiKey != ""
}

// Analyze implements Provider
func (p *GeminiProvider) Analyze(ctx context.Context, req Request) (*ScanResult, error) {
	body := geminiRequest{
		SystemInstruction: geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt(req.Text)}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:      openAITemperature,
			MaxOutputTokens:  openAIMaxTokens,
			ResponseMimeType: "application/json",
		},
	}

	requester := httpsling.MustNew(
		httpsling.URL(p.apiURL),
		httpsling.Post(),
		httpsling.Header(geminiKeyHeader, p.apiKey),
		httpsling.JSONBody(body),
		httpsling.WithHTTPClient(p.httpClient),
	)

	var genResp geminiResponse

	resp, err := requester.ReceiveWithContext(ctx, &genResp)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %w", ErrServerError, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: gemini: invalid API key", ErrAuthFailed)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: gemini", ErrRateLimited)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: gemini: status %d", ErrServerError, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini", ErrEmptyResponse)
	}

	return ParseResponse(genResp.Candidates[0].Content.Parts[0].Text), nil
}
