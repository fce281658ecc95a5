package openai

import (
	"encoding/json"
	"strings"

	perr "tubelens/internal/platform/errors"
)

// Insight is one extracted quote as returned by the model
type Insight struct {
	Quote           string  `json:"quote"`
	Sentiment       string  `json:"sentiment"`
	Theme           string  `json:"theme"`
	PurchaseIntent  string  `json:"purchase_intent"`
	ConfidenceScore float64 `json:"confidence_score"`
	SourceType      string  `json:"source_type"`
	CommentIndex    *int    `json:"comment_index"`
}

var (
	sentiments = map[string]bool{"positive": true, "negative": true, "neutral": true}
	intents    = map[string]bool{"high": true, "medium": true, "low": true, "none": true}
	sources    = map[string]bool{"video_title": true, "video_description": true, "comment": true}
)

// ParseInsights extracts the JSON array from raw model output and drops
// malformed entries rather than failing the whole response
// Models wrap output in code fences or prose often enough that we locate
// the outermost array ourselves
func ParseInsights(raw string, maxQuoteLen int) ([]Insight, error) {
	body := extractArray(raw)
	if body == "" {
		return nil, perr.Newf(perr.ErrorCodeJSON, "no json array in model output")
	}

	var parsed []Insight
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "model output not a valid insight array")
	}

	out := make([]Insight, 0, len(parsed))
	for _, in := range parsed {
		in.Quote = strings.TrimSpace(in.Quote)
		if in.Quote == "" {
			continue
		}
		if maxQuoteLen > 0 {
			if r := []rune(in.Quote); len(r) > maxQuoteLen {
				in.Quote = string(r[:maxQuoteLen])
			}
		}
		if !sentiments[in.Sentiment] {
			in.Sentiment = "neutral"
		}
		if !intents[in.PurchaseIntent] {
			in.PurchaseIntent = "none"
		}
		if !sources[in.SourceType] {
			in.SourceType = "comment"
		}
		if in.SourceType != "comment" {
			in.CommentIndex = nil
		}
		if in.ConfidenceScore < 0 {
			in.ConfidenceScore = 0
		}
		if in.ConfidenceScore > 1 {
			in.ConfidenceScore = 1
		}
		out = append(out, in)
	}
	return out, nil
}

// extractArray returns the outermost JSON array within raw, fences stripped
func extractArray(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
