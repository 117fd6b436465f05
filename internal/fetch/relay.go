package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/projectdiscovery/httpx/common/httpx"
	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/extract"
)

const (
	// defaultFetchTimeout is the per-request timeout for document retrieval.
	// Legal pages are mostly static and respond quickly; 10s allows for slow
	// hosts without stalling a scan indefinitely.
	defaultFetchTimeout = 10 * time.Second
	// defaultMaxRedirects is the maximum redirect hops to follow
	defaultMaxRedirects = 5
	// defaultMaxResponseBodySize caps the response body bytes to read (4MB,
	// large enough for long legal documents and most PDFs)
	defaultMaxResponseBodySize = 4 * 1024 * 1024
	// httpSuccessStatus is the HTTP status code indicating a successful response
	httpSuccessStatus = 200
	// pdfContentType is the MIME type identifying PDF responses
	pdfContentType = "application/pdf"
)

// Document is a retrieved and text-extracted remote document
type Document struct {
	// URL is the requested URL
	URL string
	// ContentType is the response Content-Type, without parameters
	ContentType string
	// IsPDF reports whether the document was decoded as a PDF
	IsPDF bool
	// Text is the extracted plain text
	Text string
}

// Relay retrieves candidate documents on behalf of page submitters.
// Pages discovered during extraction often live on other origins, so
// retrieval happens here rather than in the submitting context.
type Relay struct {
	options relayOptions
	client  *httpx.HTTPX
}

type relayOptions struct {
	timeout             time.Duration
	maxRedirects        int
	maxResponseBodySize int64
	userAgent           string
	minTextChars        int
}

// RelayOption configures a Relay
type RelayOption func(*relayOptions)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) RelayOption {
	return func(o *relayOptions) {
		o.timeout = d
	}
}

// WithMaxRedirects sets the maximum redirect hops to follow
func WithMaxRedirects(n int) RelayOption {
	return func(o *relayOptions) {
		o.maxRedirects = n
	}
}

// WithMaxResponseBodySize caps the response body bytes to read
func WithMaxResponseBodySize(n int64) RelayOption {
	return func(o *relayOptions) {
		o.maxResponseBodySize = n
	}
}

// WithUserAgent overrides the default request user agent
func WithUserAgent(ua string) RelayOption {
	return func(o *relayOptions) {
		o.userAgent = ua
	}
}

// WithMinTextChars sets the minimum extracted text length for a document
// to count as usable
func WithMinTextChars(n int) RelayOption {
	return func(o *relayOptions) {
		o.minTextChars = n
	}
}

// NewRelay creates a Relay with the given options
func NewRelay(opts ...RelayOption) (*Relay, error) {
	options := relayOptions{
		timeout:             defaultFetchTimeout,
		maxRedirects:        defaultMaxRedirects,
		maxResponseBodySize: defaultMaxResponseBodySize,
		userAgent:           "Mozilla/5.0 (compatible; Blindsight/1.0)",
		minTextChars:        extract.MinFetchedChars,
	}

	for _, opt := range opts {
		opt(&options)
	}

	client, err := httpx.New(&httpx.Options{
		Timeout:                   options.timeout,
		FollowRedirects:           true,
		MaxRedirects:              options.maxRedirects,
		MaxResponseBodySizeToRead: options.maxResponseBodySize,
		DefaultUserAgent:          options.userAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &Relay{options: options, client: client}, nil
}

// Fetch retrieves the document at rawURL and extracts its plain text.
// HTML responses go through readability extraction; PDF responses are
// decoded page by page. Returns ErrBlocked for transport failures and
// non-200 statuses, and ErrTooShort when the extracted text is below
// the usable minimum.
func (r *Relay) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	req, err := r.client.NewRequestWithContext(ctx, "GET", rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBlocked, rawURL, err)
	}

	resp, err := r.client.Do(req, httpx.UnsafeOptions{})
	if err != nil {
		log.Debug().Err(err).Str("url", rawURL).Msg("document fetch failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrBlocked, rawURL, err)
	}

	if resp.StatusCode != httpSuccessStatus {
		log.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Msg("document fetch returned non-200 status")
		return nil, fmt.Errorf("%w: %s: status %d", ErrBlocked, rawURL, resp.StatusCode)
	}

	doc := &Document{
		URL:         rawURL,
		ContentType: normalizeContentType(resp.GetHeader("Content-Type")),
	}

	if doc.ContentType == pdfContentType || extract.IsPDFURL(rawURL) {
		doc.IsPDF = true

		text, err := pdfText(resp.Data)
		if err != nil {
			return nil, err
		}

		doc.Text = text
	} else {
		base, err := url.Parse(rawURL)
		if err != nil {
			base = nil
		}

		doc.Text = extract.TextFromHTML(string(resp.Data), base)
	}

	if len(doc.Text) < r.options.minTextChars && !doc.IsPDF {
		return nil, fmt.Errorf("%w: %s: %d chars", ErrTooShort, rawURL, len(doc.Text))
	}

	log.Debug().
		Str("url", rawURL).
		Str("content_type", doc.ContentType).
		Bool("pdf", doc.IsPDF).
		Int("chars", len(doc.Text)).
		Msg("document fetched")

	return doc, nil
}

// normalizeContentType strips parameters and lowercases a Content-Type value
func normalizeContentType(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}

	return strings.ToLower(strings.TrimSpace(ct))
}
