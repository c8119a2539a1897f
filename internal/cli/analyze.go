package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/neutralwire/neutralwire/internal/logger"
)

var (
	analyzeTitle   string
	analyzeTimeout time.Duration
)

// analyzeCmd bias-scores a single text without touching the store
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Bias-score a single article text",
	Long: `Analyze reads article text from a file (or stdin when no file is given),
scores it for media bias, optionally rewrites a headline, and prints the
analysis record as JSON.

Requires OPENAI_API_KEY.

Example:
  neutralwire analyze article.txt --title "Radical Policies Destroy Economy"
  cat article.txt | neutralwire analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "headline to rewrite neutrally")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "overall timeout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text []byte
	var err error
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read article text: %w", err)
	}
	if strings.TrimSpace(string(text)) == "" {
		return fmt.Errorf("no article text provided")
	}

	cfg := loadConfig()
	log := logger.New(cfg.Output.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	orchestrator, err := newOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}

	record := orchestrator.AnalyzeArticle(ctx, string(text), analyzeTitle)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
