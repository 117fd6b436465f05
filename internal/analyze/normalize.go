package analyze

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// fencedBlockPattern extracts the payload of a markdown code fence, with or
// without a language tag. Models sometimes wrap JSON this way despite the
// response format instruction.
var fencedBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// rawResult mirrors the provider response schema with optional fields kept
// loose so partial or legacy responses still decode
type rawResult struct {
	OverallSeverity       *int          `json:"overallSeverity"`
	Lethal                *bool         `json:"lethal"`
	Category              string        `json:"category"`
	ServiceName           string        `json:"serviceName"`
	Summary               string        `json:"summary"`
	Clauses               []rawClause   `json:"clauses"`
	SuggestedAlternatives []Alternative `json:"suggestedAlternatives"`
}

type rawClause struct {
	Type        string  `json:"type"`
	Severity    *int    `json:"severity"`
	Quote       string  `json:"quote"`
	Explanation string  `json:"explanation"`
	Mitigation  *string `json:"mitigation"`
}

// ParseResponse decodes a provider response into a normalized ScanResult.
// It never fails: undecodable responses produce a degraded result with
// ParseError set so the caller can surface the situation without blocking.
func ParseResponse(responseText string) *ScanResult {
	jsonStr := responseText

	if m := fencedBlockPattern.FindStringSubmatch(responseText); m != nil {
		jsonStr = strings.TrimSpace(m[1])
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		log.Warn().Err(err).Int("response_chars", len(responseText)).Msg("provider response is not valid JSON")

		return &ScanResult{
			OverallSeverity: severity.Standard,
			Summary:         "Unable to analyze terms",
			Clauses:         []Clause{},
			ParseError:      true,
			RawResponse:     responseText,
		}
	}

	overall := severity.Standard

	switch {
	case raw.OverallSeverity != nil:
		overall = severity.Clamp(*raw.OverallSeverity)
	case raw.Lethal != nil:
		// legacy boolean form predates the tier scale
		if *raw.Lethal {
			overall = severity.Critical
		}
	}

	clauses := make([]Clause, 0, len(raw.Clauses))

	for _, rc := range raw.Clauses {
		level := severity.Notable
		if rc.Severity != nil {
			level = severity.Clamp(*rc.Severity)
		}

		explanation := rc.Explanation
		if explanation == "" {
			explanation = "No explanation provided"
		}

		clauses = append(clauses, Clause{
			Type:        severity.NormalizeClauseCategory(rc.Type),
			Severity:    level,
			Quote:       rc.Quote,
			Explanation: explanation,
			Mitigation:  rc.Mitigation,
		})
	}

	return &ScanResult{
		OverallSeverity:       overall,
		Category:              severity.NormalizeServiceCategory(raw.Category),
		ServiceName:           raw.ServiceName,
		Summary:               raw.Summary,
		Clauses:               clauses,
		SuggestedAlternatives: raw.SuggestedAlternatives,
		Lethal:                overall >= severity.Critical,
	}
}
