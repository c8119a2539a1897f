package model

// DefaultCategory is assigned when categorization is unavailable or fails
const DefaultCategory = "Uncategorized"

// Article represents a single news article flowing through acquisition
type Article struct {
	Title         string `json:"title"`          // Headline as published
	Source        string `json:"source"`         // Provider/outlet name
	PublishedDate string `json:"published_date"` // Calendar date (YYYY-MM-DD), truncated from provider timestamps
	URL           string `json:"url"`            // Canonical article URL
	Body          string `json:"body"`           // Full text or best available excerpt
	Category      string `json:"category"`       // Topic label, DefaultCategory when unknown
}

// Snippet is the minimal projection of an article handed to analysis:
// the title is the merge key for writing results back
type Snippet struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// TruncateDate cuts a provider timestamp like "2024-01-15T09:30:00Z"
// down to its calendar-date prefix
func TruncateDate(ts string) string {
	for i := 0; i < len(ts); i++ {
		if ts[i] == 'T' {
			return ts[:i]
		}
	}
	return ts
}
