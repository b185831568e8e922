package board

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	sysuser "github.com/bacheca-dev/bacheca/internal/user"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board",
		Long: `Create a board owned by a user. Creating a board that already exists
with the same title is a no-op and returns the existing board.

Examples:
  # Create a board (human-readable output)
  bacheca board create --title="Università" --user=alice

  # JSON output for agents
  bacheca board create --title="Lavoro" --user=alice --json

  # Quiet mode for bash capture
  BOARD_ID=$(bacheca board create --title="Lavoro" --user=alice --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Board title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("user", "", "Owner username (defaults to system username)")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	username, _ := cmd.Flags().GetString("user")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	if username == "" {
		username = sysuser.GetCurrentUsername()
	}

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

	// Resolve the owner
	owner, err := cliInstance.App.UserService.Resolve(ctx, username)
	if err != nil {
		if fmtErr := formatter.Error("USER_LOOKUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	if owner == nil {
		if fmtErr := formatter.ErrorWithSuggestion("USER_NOT_FOUND",
			fmt.Sprintf("user '%s' not found", username),
			"Use 'bacheca user register' to create the account first"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, title, owner.ID)
	if err != nil {
		if fmtErr := formatter.Error("BOARD_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", board.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":         board.ID,
			"title":      board.Title,
			"owner":      map[string]interface{}{"id": owner.ID, "username": owner.Username},
			"created_at": board.CreatedAt,
		})
	}

	fmt.Printf("✓ Board '%s' ready (ID: %d)\n", board.Title, board.ID)
	fmt.Printf("  Owner: %s\n", owner.Username)
	return nil
}
