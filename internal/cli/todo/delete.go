package todo

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a to-do",
		Long: `Delete a single to-do. Deleting a shared copy does not affect the
original, and deleting the original does not affect copies already shared.

Examples:
  bacheca todo delete --id=7
  bacheca todo delete --id=7 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "To-do ID (required)")
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

	todoID, _ := cmd.Flags().GetInt("id")
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

	if err := cliInstance.App.ToDoService.DeleteToDo(ctx, todoID); err != nil {
		if fmtErr := formatter.Error("TODO_DELETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":      todo.ID,
			"title":   todo.Title,
			"deleted": true,
		})
	}

	fmt.Printf("✓ To-do '%s' deleted (ID: %d)\n", todo.Title, todo.ID)
	return nil
}
