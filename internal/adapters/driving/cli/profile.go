package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

var profileJSON bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the local user profile",
	Long: `View and manage the local user profile.

The profile is filled in automatically as you chat; it gates which
tools can answer without asking follow-up questions.`,
	RunE: runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE:  runProfileShow,
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored profile",
	RunE:  runProfileReset,
}

var profileImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Fill the profile from a document",
	Long: `Extracts profile fields from a plain-text document (for
example a saved passport summary with "Nationality: ..." lines) and
merges them into the stored profile.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileImport,
}

func init() {
	profileCmd.PersistentFlags().BoolVar(&profileJSON, "json", false, "output the profile as JSON")
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileResetCmd)
	profileCmd.AddCommand(profileImportCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profile, err := profileService.GetOrCreate(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if profileJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Profile")
	cmd.Println("=======")
	printField(cmd, "Nationality", profile.Nationality)
	printField(cmd, "Residence", profile.Residence)
	printField(cmd, "Education", profile.Education)
	if profile.WorkYears > 0 {
		cmd.Printf("  Work experience: %d years\n", profile.WorkYears)
	}
	printField(cmd, "Work status", profile.WorkStatus)
	printField(cmd, "Current visa", profile.CurrentVisa)
	printField(cmd, "Finances", profile.Finances)
	if profile.PassportExpiry != nil {
		cmd.Printf("  Passport expiry: %s\n", profile.PassportExpiry.Format("2006-01-02"))
	}
	printField(cmd, "Languages", strings.Join(profile.Languages, ", "))
	printField(cmd, "Travel history", strings.Join(profile.TravelHistory, ", "))
	printField(cmd, "Goals", strings.Join(profile.SelectedGoals, ", "))
	if len(profile.SavedDocumentIDs) > 0 {
		cmd.Printf("  Saved documents: %d\n", len(profile.SavedDocumentIDs))
	}
	if !profile.LastSeen.IsZero() {
		cmd.Printf("  Last seen: %s\n", profile.LastSeen.Format("2006-01-02 15:04"))
	}

	return nil
}

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("  %s: %s\n", label, value)
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(args[0]))
	profile, err := profileService.ImportDocument(context.Background(), content, mimeType)
	if err != nil {
		if errors.Is(err, domain.ErrFeatureUnavailable) {
			cmd.Println("Document import is not available (no extractor configured).")
			return nil
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			cmd.Println("No profile fields recognised in the document.")
			return nil
		}
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Println("Profile updated.")
	printField(cmd, "Nationality", profile.Nationality)
	printField(cmd, "Residence", profile.Residence)
	if profile.PassportExpiry != nil {
		cmd.Printf("  Passport expiry: %s\n", profile.PassportExpiry.Format("2006-01-02"))
	}
	printField(cmd, "Languages", strings.Join(profile.Languages, ", "))
	return nil
}

func runProfileReset(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	if err := profileService.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset profile: %w", err)
	}

	cmd.Println("Profile deleted.")
	return nil
}
