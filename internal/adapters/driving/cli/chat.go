package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatThreadID string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Starts a read-eval-print loop against the assistant.

Each message is persisted to the thread, so the assistant remembers the
conversation and fills in your profile as you go. Type 'exit' or press
Ctrl-D to leave.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatThreadID, "thread", "t", "default", "conversation thread ID")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	// Skip the banner and prompt when input is piped in.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		cmd.Printf("Wayfarer %s. Type 'exit' to leave.\n\n", version)
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			cmd.Print("you> ")
		}
		if !scanner.Scan() {
			cmd.Println()
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		reply, err := assistantService.Converse(ctx, chatThreadID, text)
		if err != nil {
			cmd.Printf("error: %v\n", err)
			continue
		}

		cmd.Println()
		printReply(cmd, reply)
		cmd.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
