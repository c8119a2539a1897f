package news

import (
	"strings"

	"github.com/neutralwire/neutralwire/internal/model"
)

const (
	minFilterTitleLength = 10
	minFilterBodyLength  = 200
)

// titleMarkers flags navigation and boilerplate fragments that leak into
// provider titles
var titleMarkers = []string{
	"read more",
	"click here",
	"sign up",
	"subscribe now",
}

// legalMarkers flags legal boilerplate pages that providers sometimes
// return as article bodies
var legalMarkers = []string{
	"use of cookies",
	"cookie policy",
	"privacy policy",
	"terms of service",
	"all rights reserved",
}

// QualityFilter is a heuristic allow/deny pass over fetched articles.
// It ranks nothing: surviving articles keep their order.
type QualityFilter struct{}

// NewQualityFilter creates a new quality filter
func NewQualityFilter() *QualityFilter {
	return &QualityFilter{}
}

// Apply returns the articles that pass every check, preserving order
func (f *QualityFilter) Apply(articles []model.Article) []model.Article {
	var kept []model.Article
	for _, a := range articles {
		if reason := f.reject(a); reason == "" {
			kept = append(kept, a)
		}
	}
	return kept
}

// Reject reports why an article is dropped, or "" if it is kept
func (f *QualityFilter) Reject(a model.Article) string {
	return f.reject(a)
}

func (f *QualityFilter) reject(a model.Article) string {
	title := strings.ToLower(strings.TrimSpace(a.Title))

	if len(title) < minFilterTitleLength {
		return "title too short"
	}
	if title == "no title" {
		return "placeholder title"
	}
	for _, marker := range titleMarkers {
		if strings.Contains(title, marker) {
			return "boilerplate title"
		}
	}
	if nonASCIIHeavy(title) {
		return "non-ascii title"
	}

	if len(a.Body) < minFilterBodyLength {
		return "body too short"
	}
	body := strings.ToLower(a.Body)
	for _, marker := range legalMarkers {
		if strings.Contains(body, marker) {
			return "legal boilerplate"
		}
	}

	return ""
}

// nonASCIIHeavy reports whether more than half of the leading runes are
// outside ASCII, a telltale of mojibake or navigation chrome in the title
func nonASCIIHeavy(s string) bool {
	const window = 20

	total, nonASCII := 0, 0
	for _, r := range s {
		if total >= window {
			break
		}
		total++
		if r > 127 {
			nonASCII++
		}
	}
	if total == 0 {
		return false
	}
	return nonASCII*2 > total
}
