package notify

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// Notifier forwards completed scans at or above a severity floor to the
// webhook. Delivery failures are logged, never surfaced to the scan.
type Notifier struct {
	client      *Client
	minSeverity severity.Level
}

// NotifierOption configures the Notifier
type NotifierOption func(*Notifier)

// WithMinSeverity sets the severity floor below which scans are not reported
func WithMinSeverity(level severity.Level) NotifierOption {
	return func(n *Notifier) {
		n.minSeverity = level
	}
}

// NewNotifier creates a Notifier over an existing webhook client
func NewNotifier(client *Client, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		client:      client,
		minSeverity: severity.Cautionary,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// ScanCompleted reports a finished scan to the webhook when it clears the
// severity floor
func (n *Notifier) ScanCompleted(ctx context.Context, entry history.Entry) {
	if entry.Severity < n.minSeverity {
		return
	}

	if err := n.client.Send(ctx, BuildScanMessage(entry)); err != nil {
		log.Warn().Err(err).Str("hostname", entry.Hostname).Msg("scan notification failed")

		return
	}

	log.Debug().Str("hostname", entry.Hostname).Int("severity", int(entry.Severity)).Msg("scan notification sent")
}
