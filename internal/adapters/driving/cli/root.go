// Package cli implements the command-line interface for Wayfarer.
// Commands are thin adapters over the driving ports; wiring happens in
// main via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute runs.
var (
	assistantService driving.AssistantService
	retrievalService driving.RetrievalService
	profileService   driving.ProfileService
	settingsService  driving.SettingsService
	factCatalogue    driven.FactCatalogue
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wayfarer",
	Short: "Offline visa and immigration assistant",
	Long: `Wayfarer is an offline-first visa and immigration assistant.

Ask questions about visas, build application roadmaps, compare
destination countries and keep a local profile - all against a bundled
fact catalogue, with optional local model assistance via Ollama.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles everything the CLI commands need.
type Services struct {
	Assistant driving.AssistantService
	Retrieval driving.RetrievalService
	Profile   driving.ProfileService
	Settings  driving.SettingsService
	Catalogue driven.FactCatalogue
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	assistantService = s.Assistant
	retrievalService = s.Retrieval
	profileService = s.Profile
	settingsService = s.Settings
	factCatalogue = s.Catalogue
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
