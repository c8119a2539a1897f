package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neutralwire/neutralwire/internal/logger"
	"github.com/neutralwire/neutralwire/internal/pipeline"
)

var (
	fetchQuery string
	fetchCount int
	fetchJSON  bool
)

// fetchCmd represents the fetch command: the content-only variant with the
// quality filter enabled and no persistence
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and categorize articles without persisting them",
	Long: `Fetch acquires articles from the configured providers in priority order,
applies the quality filter, categorizes each article, and prints the result.

Provider credentials (optional - the demo set is the floor without them):
  NEWSAPI_AI_KEY   Event Registry key (preferred, full-text provider)
  NEWS_API_KEY     NewsAPI key (fallback provider)

Example:
  neutralwire fetch --query "climate change" --count 5
  neutralwire fetch --query elections --json`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchQuery, "query", "q", "climate change", "search query")
	fetchCmd.Flags().IntVarP(&fetchCount, "count", "n", 5, "maximum articles to fetch")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print articles as JSON")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logger.New(cfg.Output.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coordinator, categorizer := newAcquisition(cfg, true, log)
	p := pipeline.New(coordinator, categorizer, nil, nil, 0, log)

	articles := p.Fetch(ctx, fetchQuery, fetchCount)

	if fetchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	}

	for i, a := range articles {
		fmt.Printf("%d. %s\n", i+1, a.Title)
		fmt.Printf("   %s | %s | %s\n", a.Source, a.PublishedDate, a.Category)
		fmt.Printf("   %s\n", a.URL)
	}
	fmt.Printf("\n%d article(s)\n", len(articles))

	return nil
}
