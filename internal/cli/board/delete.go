package board

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board and all its to-dos",
		Long: `Delete a board. Every to-do on the board is deleted with it; no
orphaned to-dos survive.

Examples:
  bacheca board delete --id=3
  bacheca board delete --id=3 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Board ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetInt("id")
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

	// Validate the board exists so the user gets a clear not-found instead
	// of a silent no-op
	board, err := cliInstance.App.BoardService.GetBoardByID(ctx, boardID)
	if err != nil {
		if fmtErr := formatter.Error("BOARD_LOOKUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	if board == nil {
		if fmtErr := formatter.ErrorWithSuggestion("BOARD_NOT_FOUND",
			fmt.Sprintf("board %d not found", boardID),
			"Use 'bacheca board list' to see available boards"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, boardID); err != nil {
		if fmtErr := formatter.Error("BOARD_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":      board.ID,
			"title":   board.Title,
			"deleted": true,
		})
	}

	fmt.Printf("✓ Board '%s' deleted (ID: %d)\n", board.Title, board.ID)
	return nil
}
