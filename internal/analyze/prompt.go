package analyze

import "fmt"

// BuildBiasPrompt constructs the fixed instruction prompt demanding the
// exact JSON object shape. Backends regularly wrap the object in fences
// or prose regardless; extraction handles that downstream.
func BuildBiasPrompt(articleText string) string {
	return fmt.Sprintf(`Analyze this news article for media biases:

ARTICLE: %s

Check for these bias types:
1. Emotional language (loaded words, sensationalism)
2. Framing bias (oversimplification, binary thinking)
3. Omission of important context or facts
4. Partisan or ideological language

Return ONLY valid JSON with this exact structure:
{
    "emotional_bias_score": 0-100,
    "framing_bias_score": 0-100,
    "omission_bias_score": 0-100,
    "overall_bias_score": 0-100,
    "biased_phrases": [
        {
            "text": "exact phrase from article",
            "bias_type": "emotional/framing/omission/partisan",
            "explanation": "why this phrasing is biased"
        }
    ],
    "summary": "brief explanation of main biases found"
}

Return ONLY the JSON object, no additional text.`, articleText)
}

// BuildRewritePrompt asks for a neutral restatement of a headline
func BuildRewritePrompt(title string) string {
	return fmt.Sprintf(`Rewrite this news headline in neutral, factual language.
Remove loaded words, sensationalism, and partisan framing while keeping the
core facts. Return ONLY the rewritten headline, nothing else.

HEADLINE: %s`, title)
}
