package model

// FallbackSummary is the summary text carried by the fallback analysis
const FallbackSummary = "Analysis unavailable - using fallback"

// BiasAnalysis is the scored result of analyzing one article.
// Scores are opaque integers supplied by the generation backend;
// the analyzer validates presence, not range.
type BiasAnalysis struct {
	EmotionalScore int            `json:"emotional_bias_score"`
	FramingScore   int            `json:"framing_bias_score"`
	OmissionScore  int            `json:"omission_bias_score"`
	OverallScore   int            `json:"overall_bias_score"`
	BiasedPhrases  []BiasedPhrase `json:"biased_phrases"`
	Summary        string         `json:"summary"`
}

// BiasedPhrase is a single flagged passage with its classification
type BiasedPhrase struct {
	Text        string `json:"text"`
	BiasType    string `json:"bias_type"` // emotional, framing, omission, partisan
	Explanation string `json:"explanation"`
}

// AnalysisRecord joins an article's bias analysis with its title rewrite.
// OriginalTitle doubles as the merge key when results are written back.
type AnalysisRecord struct {
	OriginalTitle string       `json:"original_title"`
	NeutralTitle  string       `json:"neutral_title"`
	Analysis      BiasAnalysis `json:"analysis"`
}

// FallbackAnalysis returns the fixed result used whenever analysis cannot
// be completed reliably: neutral midpoint scores and no flagged phrases.
// Incomplete backend output is always replaced wholesale by this record.
func FallbackAnalysis() BiasAnalysis {
	return BiasAnalysis{
		EmotionalScore: 50,
		FramingScore:   50,
		OmissionScore:  50,
		OverallScore:   50,
		BiasedPhrases:  []BiasedPhrase{},
		Summary:        FallbackSummary,
	}
}
