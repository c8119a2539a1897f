package news

import (
	"strings"
	"testing"

	"github.com/neutralwire/neutralwire/internal/model"
)

func TestQualityFilter_Reject(t *testing.T) {
	cleanBody := strings.Repeat("Measured reporting with context and sourcing. ", 5)

	tests := []struct {
		name    string
		article model.Article
		want    string
	}{
		{
			name:    "clean article kept",
			article: model.Article{Title: "A Perfectly Reasonable Headline", Body: cleanBody},
			want:    "",
		},
		{
			name:    "title too short",
			article: model.Article{Title: "Brief", Body: cleanBody},
			want:    "title too short",
		},
		{
			name:    "placeholder title",
			article: model.Article{Title: "No title", Body: cleanBody},
			want:    "placeholder title",
		},
		{
			name:    "read more marker",
			article: model.Article{Title: "Read more: Something happened today", Body: cleanBody},
			want:    "boilerplate title",
		},
		{
			name:    "subscribe marker",
			article: model.Article{Title: "Subscribe now for daily updates", Body: cleanBody},
			want:    "boilerplate title",
		},
		{
			name:    "body one short of threshold",
			article: model.Article{Title: "A Perfectly Reasonable Headline", Body: strings.Repeat("x", minFilterBodyLength-1)},
			want:    "body too short",
		},
		{
			name:    "body exactly at threshold",
			article: model.Article{Title: "A Perfectly Reasonable Headline", Body: strings.Repeat("x", minFilterBodyLength)},
			want:    "",
		},
		{
			name: "cookie banner body",
			article: model.Article{
				Title: "A Perfectly Reasonable Headline",
				Body:  "This site requires your consent to the use of cookies. " + cleanBody,
			},
			want: "legal boilerplate",
		},
		{
			name:    "mojibake title",
			article: model.Article{Title: "ã¢ã¼ãã£ã¹ããº", Body: cleanBody},
			want:    "non-ascii title",
		},
	}

	f := NewQualityFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Reject(tt.article); got != tt.want {
				t.Errorf("Reject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQualityFilter_ApplyPreservesOrder(t *testing.T) {
	cleanBody := strings.Repeat("Measured reporting with context and sourcing. ", 5)
	articles := []model.Article{
		{Title: "First Surviving Headline", Body: cleanBody},
		{Title: "short", Body: cleanBody},
		{Title: "Second Surviving Headline", Body: cleanBody},
	}

	kept := NewQualityFilter().Apply(articles)
	if len(kept) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(kept))
	}
	if kept[0].Title != "First Surviving Headline" || kept[1].Title != "Second Surviving Headline" {
		t.Errorf("survivor order changed: %+v", kept)
	}
}
