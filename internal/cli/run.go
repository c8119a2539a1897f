package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	runQuery   string
	runCount   int
	runLimit   int
	runDBPath  string
	runTimeout time.Duration
)

// runCmd represents the run command: the full persistence pipeline
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, persist, analyze, and merge bias results",
	Long: `Run executes the full pipeline: acquire articles with ordered provider
fallback, categorize and persist the raw snapshot, then bias-score the most
recent articles and merge results back by title.

Requires OPENAI_API_KEY. A backend model is probed at startup from the
configured candidate list; no responsive model is a fatal error.

Example:
  neutralwire run --query "climate change" --count 5 --limit 2
  neutralwire run --db ./news.db --limit 10`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runQuery, "query", "q", "climate change", "search query")
	runCmd.Flags().IntVarP(&runCount, "count", "n", 5, "maximum articles to fetch")
	runCmd.Flags().IntVarP(&runLimit, "limit", "l", 2, "number of recent articles to analyze")
	runCmd.Flags().StringVar(&runDBPath, "db", "", "SQLite database path (default: config storage.path)")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "overall run timeout")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if runDBPath != "" {
		cfg.Storage.Path = runDBPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	p, cleanup, err := newFullPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := p.Run(ctx, runQuery, runCount, runLimit)
	if err != nil {
		return err
	}

	for _, r := range records {
		fmt.Printf("• %s\n", r.OriginalTitle)
		if r.NeutralTitle != r.OriginalTitle {
			fmt.Printf("  → %s\n", r.NeutralTitle)
		}
		fmt.Printf("  bias: overall %d, emotional %d, framing %d, omission %d (%d phrase(s))\n",
			r.Analysis.OverallScore,
			r.Analysis.EmotionalScore,
			r.Analysis.FramingScore,
			r.Analysis.OmissionScore,
			len(r.Analysis.BiasedPhrases))
	}
	fmt.Printf("\n%d article(s) analyzed\n", len(records))

	return nil
}
