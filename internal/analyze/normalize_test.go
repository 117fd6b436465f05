package analyze

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

func TestParseResponse_WellFormed(t *testing.T) {
	input := `{
		"overallSeverity": 2,
		"category": "vpn",
		"serviceName": "TurboVPN",
		"summary": "Aggressive data sharing with advertisers.",
		"clauses": [
			{"type": "DATA_SELLING", "severity": 2, "quote": "we may share your browsing data", "explanation": "Browsing data shared with ad networks", "mitigation": null}
		]
	}`

	result := ParseResponse(input)

	assert.Equal(t, severity.Cautionary, result.OverallSeverity)
	assert.Equal(t, severity.ServiceVPN, result.Category)
	assert.Equal(t, "TurboVPN", result.ServiceName)
	assert.False(t, result.Lethal)
	assert.False(t, result.ParseError)

	require.Len(t, result.Clauses, 1)
	assert.Equal(t, severity.ClauseDataSelling, result.Clauses[0].Type)
	assert.Equal(t, severity.Cautionary, result.Clauses[0].Severity)
	assert.Nil(t, result.Clauses[0].Mitigation)
}

func TestParseResponse_FencedJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"overallSeverity\": 1, \"category\": \"email\", \"clauses\": []}\n```",
		},
		{
			name:  "bare fence",
			input: "```\n{\"overallSeverity\": 1, \"category\": \"email\", \"clauses\": []}\n```",
		},
		{
			name:  "fence with surrounding prose",
			input: "Here is the analysis:\n```json\n{\"overallSeverity\": 1, \"category\": \"email\", \"clauses\": []}\n```\nLet me know if you need more.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseResponse(tc.input)

			assert.False(t, result.ParseError)
			assert.Equal(t, severity.Notable, result.OverallSeverity)
			assert.Equal(t, severity.ServiceEmail, result.Category)
		})
	}
}

func TestParseResponse_SeverityClamping(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		expected severity.Level
	}{
		{name: "above range", raw: 7, expected: severity.Critical},
		{name: "below range", raw: -2, expected: severity.Standard},
		{name: "in range", raw: 2, expected: severity.Cautionary},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseResponse(`{"overallSeverity": ` + strconv.Itoa(tc.raw) + `, "clauses": []}`)
			assert.Equal(t, tc.expected, result.OverallSeverity)
		})
	}
}

func TestParseResponse_LegacyLethalField(t *testing.T) {
	result := ParseResponse(`{"lethal": true, "clauses": []}`)
	assert.Equal(t, severity.Critical, result.OverallSeverity)
	assert.True(t, result.Lethal)

	result = ParseResponse(`{"lethal": false, "clauses": []}`)
	assert.Equal(t, severity.Standard, result.OverallSeverity)
	assert.False(t, result.Lethal)

	// overallSeverity wins over legacy lethal when both present
	result = ParseResponse(`{"overallSeverity": 1, "lethal": true, "clauses": []}`)
	assert.Equal(t, severity.Notable, result.OverallSeverity)
	assert.False(t, result.Lethal)
}

func TestParseResponse_ClauseDefaults(t *testing.T) {
	input := `{
		"overallSeverity": 1,
		"clauses": [
			{"type": "MADE_UP_CATEGORY"},
			{"severity": 9, "explanation": "over the top"}
		]
	}`

	result := ParseResponse(input)

	require.Len(t, result.Clauses, 2)

	assert.Equal(t, severity.ClauseOther, result.Clauses[0].Type)
	assert.Equal(t, severity.Notable, result.Clauses[0].Severity)
	assert.Equal(t, "No explanation provided", result.Clauses[0].Explanation)

	assert.Equal(t, severity.Critical, result.Clauses[1].Severity)
}

func TestParseResponse_LethalRecomputed(t *testing.T) {
	result := ParseResponse(`{"overallSeverity": 3, "clauses": []}`)
	assert.True(t, result.Lethal)
}

func TestParseResponse_InvalidJSON(t *testing.T) {
	input := "I'm sorry, I cannot analyze this document."

	result := ParseResponse(input)

	assert.True(t, result.ParseError)
	assert.Equal(t, severity.Standard, result.OverallSeverity)
	assert.Equal(t, "Unable to analyze terms", result.Summary)
	assert.Equal(t, input, result.RawResponse)
	assert.Empty(t, result.Clauses)
	assert.False(t, result.Lethal)
}

func TestParseResponse_UnknownCategoryDefault(t *testing.T) {
	result := ParseResponse(`{"overallSeverity": 0, "clauses": []}`)
	assert.Equal(t, severity.ServiceUnknown, result.Category)
}

func TestTruncateText(t *testing.T) {
	short := "short document"
	assert.Equal(t, short, truncateText(short))

	long := make([]byte, MaxTextLength+100)
	for i := range long {
		long[i] = 'a'
	}

	truncated := truncateText(string(long))
	assert.Len(t, truncated, MaxTextLength+len(truncationMarker))
	assert.Contains(t, truncated, "[Text truncated due to length...]")
}

func TestTruncateText_RuneBoundary(t *testing.T) {
	// place a multi-byte rune straddling the cut point; the cut must back
	// off rather than leave a partial encoding in the provider payload
	text := strings.Repeat("a", MaxTextLength-1) + strings.Repeat("你好", 50)

	truncated := truncateText(text)
	assert.True(t, utf8.ValidString(truncated))
	assert.LessOrEqual(t, len(truncated), MaxTextLength+len(truncationMarker))
	assert.Contains(t, truncated, truncationMarker)
}
