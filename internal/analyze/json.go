package analyze

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neutralwire/neutralwire/internal/model"
)

// rawAnalysis mirrors the wire contract with pointer score fields so that
// a missing field is distinguishable from an explicit zero. Acceptance is
// all-or-nothing: all four scores must be present.
type rawAnalysis struct {
	EmotionalScore *int                 `json:"emotional_bias_score"`
	FramingScore   *int                 `json:"framing_bias_score"`
	OmissionScore  *int                 `json:"omission_bias_score"`
	OverallScore   *int                 `json:"overall_bias_score"`
	BiasedPhrases  []model.BiasedPhrase `json:"biased_phrases"`
	Summary        string               `json:"summary"`
}

// extractAnalysis pulls the analysis contract out of free-form backend
// output: strip Markdown code fences, slice from the first '{' to the last
// '}', parse, and require every score field. Any failure is an extraction
// failure; the caller substitutes the fallback record.
func extractAnalysis(text string) (model.BiasAnalysis, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return model.BiasAnalysis{}, fmt.Errorf("no JSON object in response")
	}

	jsonStr := cleaned[start : end+1]
	if !strings.HasPrefix(strings.TrimSpace(jsonStr), "{") {
		return model.BiasAnalysis{}, fmt.Errorf("extracted text is not a JSON object")
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return model.BiasAnalysis{}, fmt.Errorf("parse JSON: %w", err)
	}

	if raw.EmotionalScore == nil || raw.FramingScore == nil ||
		raw.OmissionScore == nil || raw.OverallScore == nil {
		return model.BiasAnalysis{}, fmt.Errorf("missing required score fields")
	}

	phrases := raw.BiasedPhrases
	if phrases == nil {
		phrases = []model.BiasedPhrase{}
	}

	// Scores pass through as supplied; presence is validated, range is not
	return model.BiasAnalysis{
		EmotionalScore: *raw.EmotionalScore,
		FramingScore:   *raw.FramingScore,
		OmissionScore:  *raw.OmissionScore,
		OverallScore:   *raw.OverallScore,
		BiasedPhrases:  phrases,
		Summary:        raw.Summary,
	}, nil
}
