package notify

import (
	"fmt"
	"strings"

	"github.com/ssudhiravinesh/blindsight/internal/history"
	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// messageTruncateLimit bounds a single text object; Slack rejects blocks
// over 3000 characters
const messageTruncateLimit = 2900

// Message represents a Slack webhook message payload
type Message struct {
	// Text is the fallback text for the notification
	Text string `json:"text"`
	// Blocks holds the rich layout blocks for the message
	Blocks []Block `json:"blocks,omitempty"`
}

// Block represents a Slack Block Kit block
type Block struct {
	// Type is the block type (section, divider, header, etc.)
	Type string `json:"type"`
	// Text is the text object for this block
	Text *TextObject `json:"text,omitempty"`
	// Fields holds multiple text objects for section blocks
	Fields []TextObject `json:"fields,omitempty"`
}

// TextObject represents a Slack text object
type TextObject struct {
	// Type is the text type (plain_text or mrkdwn)
	Type string `json:"type"`
	// Text is the actual text content
	Text string `json:"text"`
}

// BuildScanMessage formats a completed scan into a Slack Block Kit message
func BuildScanMessage(entry history.Entry) Message {
	headerText := fmt.Sprintf("Terms Scan: %s", entry.Hostname)

	blocks := []Block{
		{
			Type: "header",
			Text: &TextObject{Type: "plain_text", Text: headerText},
		},
	}

	fields := []TextObject{
		{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Severity:*\n%s (%d)", entry.Severity.Name(), entry.Severity),
		},
		{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Flagged Clauses:*\n%d", entry.ClauseCount),
		},
	}

	if entry.ServiceName != "" {
		fields = append(fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Service:*\n%s", entry.ServiceName),
		})
	}

	if entry.Category != "" && entry.Category != severity.ServiceUnknown {
		fields = append(fields, TextObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*Category:*\n%s", entry.Category),
		})
	}

	blocks = append(blocks, Block{
		Type:   "section",
		Fields: fields,
	})

	if entry.Summary != "" {
		blocks = append(blocks, Block{
			Type: "section",
			Text: &TextObject{
				Type: "mrkdwn",
				Text: truncateText(fmt.Sprintf("*<%s|View page>*\n_%s_", entry.URL, entry.Summary), messageTruncateLimit),
			},
		})
	}

	fallback := fmt.Sprintf("Terms Scan: %s rated %s with %d flagged clauses", entry.Hostname, entry.Severity.Name(), entry.ClauseCount)

	return Message{
		Text:   fallback,
		Blocks: blocks,
	}
}

// truncateText cuts text to limit, marking the cut
func truncateText(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	return strings.TrimSpace(text[:limit]) + "..."
}
