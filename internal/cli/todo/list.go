package todo

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	"github.com/bacheca-dev/bacheca/internal/models"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the to-dos on a board",
		Long: `List all to-dos on a board, including shared copies with their
provenance.

Examples:
  bacheca todo list --board=1
  bacheca todo list --board=1 --json
`,
		RunE: runList,
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	boardID, _ := cmd.Flags().GetInt("board")
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

	todos, err := cliInstance.App.ToDoService.GetToDosForBoard(ctx, boardID)
	if err != nil {
		if fmtErr := formatter.Error("TODO_LIST_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, td := range todos {
			fmt.Printf("%d\n", td.ID)
		}
		return nil
	}

	if jsonOutput {
		items := make([]map[string]interface{}, 0, len(todos))
		for _, td := range todos {
			item := map[string]interface{}{
				"id":       td.ID,
				"title":    td.Title,
				"status":   td.Status,
				"due_date": td.DueDate,
			}
			if td.IsShared() {
				item["shared_by"] = td.SharedBy
			}
			items = append(items, item)
		}
		return formatter.Success(map[string]interface{}{
			"board": map[string]interface{}{"id": board.ID, "title": board.Title},
			"todos": items,
		})
	}

	if len(todos) == 0 {
		fmt.Printf("No to-dos on '%s'\n", board.Title)
		return nil
	}

	fmt.Printf("To-dos on '%s':\n", board.Title)
	for _, td := range todos {
		marker := " "
		if td.Status == models.StatusCompleted {
			marker = "x"
		}
		line := fmt.Sprintf("  [%s] #%d %s", marker, td.ID, td.Title)
		if td.IsShared() {
			line += fmt.Sprintf(" (shared by %s)", td.SharedBy)
		}
		if td.DueDate != nil {
			line += fmt.Sprintf(" (due %s)", td.DueDate.Format(cli.DueDateLayout))
		}
		fmt.Println(line)
	}
	return nil
}
