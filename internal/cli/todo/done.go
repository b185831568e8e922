package todo

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
)

// DoneCmd returns the todo done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark a to-do as completed",
		Long: `Mark a single to-do as completed. Marking an already-completed
to-do is a no-op.

Examples:
  bacheca todo done --id=7
  bacheca todo done --id=7 --json
`,
		RunE: runDone,
	}

	cmd.Flags().Int("id", 0, "To-do ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ToDoService.MarkCompleted(ctx, todo); err != nil {
		if fmtErr := formatter.Error("TODO_COMPLETE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", todo.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":     todo.ID,
			"title":  todo.Title,
			"status": todo.Status,
		})
	}

	fmt.Printf("✓ To-do '%s' marked completed (ID: %d)\n", todo.Title, todo.ID)
	return nil
}
