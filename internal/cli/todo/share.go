package todo

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	shareservice "github.com/bacheca-dev/bacheca/internal/services/share"
)

// ShareCmd returns the todo share subcommand
func ShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share a to-do with another user",
		Long: `Share a to-do with another user. The recipient gets an independent
copy on their board of the given title; the board is created for them if
they don't have it yet. Sharing the same to-do to the same user again is
a no-op.

Examples:
  # Share into the recipient's board with the same title as the source board
  bacheca todo share --id=7 --to=bob

  # Share into a specific board of the recipient
  bacheca todo share --id=7 --to=bob --board="Università"

  # Quiet mode for bash capture
  COPY_ID=$(bacheca todo share --id=7 --to=bob --quiet)
`,
		RunE: runShare,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "To-do ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("to", "", "Recipient username (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("board", "", "Recipient board title (defaults to the source board's title)")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (copy ID only)")

	return cmd
}

func runShare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, _ := cmd.Flags().GetInt("id")
	recipient, _ := cmd.Flags().GetString("to")
	boardTitle, _ := cmd.Flags().GetString("board")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	todo, err := cliInstance.App.ToDoService.GetToDo(ctx, todoID)
	if err != nil {
		if fmtErr := formatter.Error("TODO_LOOKUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	if todo == nil {
		if fmtErr := formatter.ErrorWithSuggestion("TODO_NOT_FOUND",
			fmt.Sprintf("to-do %d not found", todoID),
			"Use 'bacheca todo list' to see available to-dos"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Reject self-shares here: the protocol itself doesn't care, but a user
	// sharing with themselves is always a mistake on the command line
	owner, err := cliInstance.App.UserService.ResolveID(ctx, todo.CreatorID)
	if err != nil {
		if fmtErr := formatter.Error("USER_LOOKUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	if owner != nil && owner.Username == recipient {
		shareErr := fmt.Errorf("cannot share a to-do with its own owner '%s'", recipient)
		if fmtErr := formatter.ErrorWithSuggestion("SELF_SHARE", shareErr.Error(),
			"Pick a different recipient"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return shareErr
	}

	// Default target board title to the source board's title
	if boardTitle == "" {
		sourceBoard, err := cliInstance.App.BoardService.GetBoardByID(ctx, todo.BoardID)
		if err != nil {
			if fmtErr := formatter.Error("BOARD_LOOKUP_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return err
		}
		if sourceBoard == nil {
			if fmtErr := formatter.Error("BOARD_NOT_FOUND",
				fmt.Sprintf("board %d not found", todo.BoardID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		boardTitle = sourceBoard.Title
	}

	copied, err := cliInstance.App.ShareService.ShareToDo(ctx, todo, boardTitle, recipient)
	if err != nil {
		if errors.Is(err, shareservice.ErrUnknownRecipient) {
			if fmtErr := formatter.ErrorWithSuggestion("RECIPIENT_NOT_FOUND",
				fmt.Sprintf("user '%s' not found", recipient),
				"The recipient must register before to-dos can be shared with them"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return err
		}
		if fmtErr := formatter.Error("TODO_SHARE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", copied.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":        copied.ID,
			"title":     copied.Title,
			"board_id":  copied.BoardID,
			"shared_by": copied.SharedBy,
			"recipient": recipient,
		})
	}

	fmt.Printf("✓ To-do '%s' shared with '%s' (copy ID: %d)\n", copied.Title, recipient, copied.ID)
	fmt.Printf("  Board: %s\n", boardTitle)
	return nil
}
