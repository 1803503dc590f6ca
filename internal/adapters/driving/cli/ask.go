package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

var (
	askThreadID string
	askSave     bool
	askExport   bool
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the assistant a single question",
	Long: `Sends one message to the assistant and prints the reply.
The turn is persisted to the given thread, so follow-up questions with
the same --thread continue the conversation.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askThreadID, "thread", "t", "default", "conversation thread ID")
	askCmd.Flags().BoolVar(&askSave, "save", false, "save the structured payload as an artifact")
	askCmd.Flags().BoolVar(&askExport, "export", false, "export the structured payload to a file")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the reply as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ctx := context.Background()
	reply, err := assistantService.Converse(ctx, askThreadID, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal reply: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printReply(cmd, reply)
	}

	if askSave && !reply.Gated() {
		id, err := assistantService.SaveReply(ctx, reply)
		if err != nil {
			if errors.Is(err, domain.ErrFeatureUnavailable) {
				cmd.Println("Saving is not available (no artifact store configured).")
				return nil
			}
			if errors.Is(err, domain.ErrInvalidInput) {
				cmd.Println("Nothing to save for this reply.")
				return nil
			}
			return fmt.Errorf("save failed: %w", err)
		}
		cmd.Printf("Saved as artifact %s\n", id)
	}

	if askExport && !reply.Gated() {
		name, err := assistantService.ExportReply(ctx, reply)
		if err != nil {
			if errors.Is(err, domain.ErrFeatureUnavailable) {
				cmd.Println("Export is not available (no exporter configured).")
				return nil
			}
			if errors.Is(err, domain.ErrInvalidInput) {
				cmd.Println("Nothing to export for this reply.")
				return nil
			}
			return fmt.Errorf("export failed: %w", err)
		}
		cmd.Printf("Exported to %s\n", name)
	}

	return nil
}

func printReply(cmd *cobra.Command, reply *domain.AgentReply) {
	if reply.Gated() {
		cmd.Println(reply.Prompt)
	} else {
		cmd.Println(reply.ReplyText)
	}

	if len(reply.Citations) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, c := range reply.Citations {
			cmd.Printf("  %s\n", c)
		}
	}

	for _, w := range reply.Warnings {
		cmd.Printf("Note: %s\n", w)
	}
}
