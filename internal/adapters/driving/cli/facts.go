package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

var (
	factsLimit int
	factsJSON  bool
)

var factsCmd = &cobra.Command{
	Use:   "facts [query]",
	Short: "Search the visa fact base",
	Long: `Performs semantic retrieval over the indexed visa facts.
Requires a running embedding provider; without one the result is empty.`,
	Args: cobra.ExactArgs(1),
	RunE: runFacts,
}

var factsCountriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List catalogued countries",
	RunE:  runFactsCountries,
}

func init() {
	factsCmd.Flags().IntVarP(&factsLimit, "limit", "n", 5, "maximum number of facts")
	factsCmd.Flags().BoolVar(&factsJSON, "json", false, "output facts as JSON")
	factsCmd.AddCommand(factsCountriesCmd)
	rootCmd.AddCommand(factsCmd)
}

func runFacts(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	facts, err := retrievalService.Retrieve(context.Background(), args[0], factsLimit)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if factsJSON {
		data, err := json.MarshalIndent(facts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal facts: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputFactsTable(cmd, facts)
}

func outputFactsTable(cmd *cobra.Command, facts []domain.RetrievedFact) error {
	if len(facts) == 0 {
		cmd.Println("No facts found. Is the embedding provider running?")
		return nil
	}

	for i := range facts {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, facts[i].Statement, facts[i].Score)
		cmd.Printf("      %s - %s\n", facts[i].CountryName, facts[i].SourceURL)
		cmd.Println()
	}
	return nil
}

func runFactsCountries(cmd *cobra.Command, _ []string) error {
	if factCatalogue == nil {
		return errors.New("fact catalogue not configured")
	}

	names := factCatalogue.Countries()
	cmd.Printf("Catalogued countries (%d):\n", len(names))
	cmd.Printf("  %s\n", strings.Join(names, ", "))
	return nil
}
