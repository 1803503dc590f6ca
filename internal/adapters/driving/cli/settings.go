package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the embedding provider, completion provider and
index options.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings value",
	Long: `Set a settings value by key.

Available keys:
  embedding.enabled    - true/false
  embedding.model      - embedding model name
  embedding.base_url   - embedding provider endpoint
  completion.enabled   - true/false
  completion.model     - completion model name
  completion.base_url  - completion provider endpoint
  index.cap            - maximum indexed facts
  disclaimer           - true/false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Enabled: %t\n", settings.Embedding.Enabled)
	cmd.Printf("  Model: %s\n", settings.Embedding.Model)
	cmd.Printf("  Base URL: %s\n", settings.Embedding.BaseURL)
	cmd.Println()

	cmd.Println("[Completion]")
	cmd.Printf("  Enabled: %t\n", settings.Completion.Enabled)
	cmd.Printf("  Model: %s\n", settings.Completion.Model)
	cmd.Printf("  Base URL: %s\n", settings.Completion.BaseURL)
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Cap: %d\n", settings.Index.Cap)
	cmd.Println()

	cmd.Printf("Disclaimer: %t\n", settings.Disclaimer)
	if settings.DataDir != "" {
		cmd.Printf("Data directory: %s\n", settings.DataDir)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch key {
	case "embedding.enabled":
		settings.Embedding.Enabled, err = strconv.ParseBool(value)
	case "embedding.model":
		settings.Embedding.Model = value
	case "embedding.base_url":
		settings.Embedding.BaseURL = value
	case "completion.enabled":
		settings.Completion.Enabled, err = strconv.ParseBool(value)
	case "completion.model":
		settings.Completion.Model = value
	case "completion.base_url":
		settings.Completion.BaseURL = value
	case "index.cap":
		settings.Index.Cap, err = strconv.Atoi(value)
	case "disclaimer":
		settings.Disclaimer, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := settingsService.Update(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
