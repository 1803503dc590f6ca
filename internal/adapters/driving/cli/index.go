package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the fact index",
	Long: `Commands for the semantic fact index.

The index is built from the bundled fact catalogue on first use and
persists across runs. Rebuild it after changing the catalogue override
or the embedding model.`,
	RunE: runIndexStats,
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runIndexStats,
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Clear and re-index the fact catalogue",
	RunE:  runIndexRebuild,
}

func init() {
	indexCmd.AddCommand(indexStatsCmd)
	indexCmd.AddCommand(indexRebuildCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexStats(cmd *cobra.Command, _ []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	count, capacity, err := retrievalService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read index stats: %w", err)
	}

	cmd.Printf("Indexed facts: %d (cap %d)\n", count, capacity)
	return nil
}

func runIndexRebuild(cmd *cobra.Command, _ []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	cmd.Println("Rebuilding fact index...")
	if err := retrievalService.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	count, _, err := retrievalService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read index stats: %w", err)
	}

	cmd.Printf("Done. Indexed facts: %d\n", count)
	return nil
}
