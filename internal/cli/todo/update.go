package todo

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a to-do in place",
		Long: `Update fields of an existing to-do. Only the flags you pass change;
everything else keeps its stored value. Updating a to-do that was
previously shared does not touch the shared copies.

Examples:
  bacheca todo update --id=7 --title="New title"
  bacheca todo update --id=7 --due=2026-10-01 --color="#22C55E"
  bacheca todo update --id=7 --status=not-completed
`,
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "To-do ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("due", "", "New due date in YYYY-MM-DD format (empty clears it)")
	cmd.Flags().String("color", "", "New card color in hex format #RRGGBB")
	cmd.Flags().String("url", "", "New attached URL")
	cmd.Flags().String("image", "", "New attached image path")
	cmd.Flags().Int("position", 0, "New position on the board")
	cmd.Flags().String("status", "", "New status: completed or not-completed")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
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

	// Apply only the flags that were actually passed
	if cmd.Flags().Changed("title") {
		todo.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		todo.Description, _ = cmd.Flags().GetString("description")
	}
	if cmd.Flags().Changed("due") {
		due, _ := cmd.Flags().GetString("due")
		dueDate, err := cli.ParseDueDate(due)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_DUE_DATE", err.Error(),
				"Due dates must be in YYYY-MM-DD format, e.g. 2026-09-15"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		todo.DueDate = dueDate
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		if color != "" {
			if err := cli.ValidateColorHex(color); err != nil {
				if fmtErr := formatter.ErrorWithSuggestion("INVALID_COLOR", err.Error(),
					"Colors must be in hex format, e.g. #FF0000"); fmtErr != nil {
					log.Printf("Error formatting error message: %v", fmtErr)
				}
				os.Exit(cli.ExitValidation)
			}
		}
		todo.Color = color
	}
	if cmd.Flags().Changed("url") {
		todo.URL, _ = cmd.Flags().GetString("url")
	}
	if cmd.Flags().Changed("image") {
		todo.ImagePath, _ = cmd.Flags().GetString("image")
	}
	if cmd.Flags().Changed("position") {
		todo.Position, _ = cmd.Flags().GetInt("position")
	}
	if cmd.Flags().Changed("status") {
		statusStr, _ := cmd.Flags().GetString("status")
		status, err := cli.ParseStatus(statusStr)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_STATUS", err.Error(),
				"Valid statuses are: completed, not-completed"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		todo.Status = status
	}

	if err := cliInstance.App.ToDoService.UpdateToDo(ctx, todo); err != nil {
		if fmtErr := formatter.Error("TODO_UPDATE_ERROR", err.Error()); fmtErr != nil {
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
			"id":       todo.ID,
			"title":    todo.Title,
			"status":   todo.Status,
			"due_date": todo.DueDate,
		})
	}

	fmt.Printf("✓ To-do '%s' updated (ID: %d)\n", todo.Title, todo.ID)
	return nil
}
