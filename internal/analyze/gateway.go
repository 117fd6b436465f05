package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/theopenlane/httpsling"
)

const (
	// defaultGatewayTimeout bounds a single gateway round trip. Model
	// inference on long documents can take tens of seconds.
	defaultGatewayTimeout = 30 * time.Second
	// apiKeyHeader carries the shared gateway credential
	apiKeyHeader = "X-API-Key"
)

// gatewayRequest is the request body for the hosted analysis gateway
type gatewayRequest struct {
	TosText   string `json:"tos_text"`
	SourceURL string `json:"source_url"`
}

// GatewayProvider analyzes documents through the hosted analysis gateway.
// The gateway holds its own model credentials, so callers need only the
// shared gateway key.
type GatewayProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// GatewayOption configures a GatewayProvider
type GatewayOption func(*GatewayProvider)

// WithGatewayHTTPClient overrides the underlying HTTP client
func WithGatewayHTTPClient(client *http.Client) GatewayOption {
	return func(p *GatewayProvider) {
		p.httpClient = client
	}
}

// NewGatewayProvider creates a gateway provider for the given endpoint
func NewGatewayProvider(baseURL, apiKey string, opts ...GatewayOption) *GatewayProvider {
	p := &GatewayProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultGatewayTimeout,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name implements Provider
func (p *GatewayProvider) Name() string {
	return "gateway"
}

// Available implements Provider
func (p *GatewayProvider) Available() bool {
	return p.baseURL != "" && p.apiKey != ""
}

// Analyze implements Provider. The gateway returns the analysis JSON
// directly, so the body is normalized as-is.
func (p *GatewayProvider) Analyze(ctx context.Context, req Request) (*ScanResult, error) {
	requester := httpsling.MustNew(
		httpsling.URL(p.baseURL),
		httpsling.Post(),
		httpsling.Header(apiKeyHeader, p.apiKey),
		httpsling.JSONBody(gatewayRequest{
			TosText:   req.Text,
			SourceURL: req.SourceURL,
		}),
		httpsling.WithHTTPClient(p.httpClient),
	)

	var body json.RawMessage

	resp, err := requester.ReceiveWithContext(ctx, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway: %w", ErrServerError, err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close error is non-critical

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: gateway: status %d", ErrAuthFailed, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: gateway", ErrRateLimited)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: gateway: status %d", ErrServerError, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("gateway request failed with status %d", resp.StatusCode)
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("%w: gateway", ErrEmptyResponse)
	}

	return ParseResponse(string(body)), nil
}
