package news

import "github.com/neutralwire/neutralwire/internal/model"

// DemoArticles is the fixed floor returned when every provider fails or
// yields nothing usable. It requires no credentials and no network.
func DemoArticles() []model.Article {
	return []model.Article{
		{
			Title:         "New Climate Study Shows Temperature Trends",
			Source:        "Science Journal",
			PublishedDate: "2024-01-15",
			URL:           "https://example.com/climate-study",
			Body:          "A comprehensive new study published in Nature Climate Change reveals climate patterns.",
			Category:      "Science",
		},
		{
			Title:         "Renewable Energy Investments Increase",
			Source:        "Energy Times",
			PublishedDate: "2024-01-14",
			URL:           "https://example.com/renewable-energy",
			Body:          "Global investments in renewable energy sources have reached significant levels.",
			Category:      "Energy",
		},
	}
}
