package todo

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	"github.com/bacheca-dev/bacheca/internal/models"
	todoservice "github.com/bacheca-dev/bacheca/internal/services/todo"
)

// CreateCmd returns the todo create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new to-do",
		Long: `Create a new to-do on a board. Unlike boards, to-dos are not
deduplicated: creating the same title twice yields two to-dos.

Examples:
  # Simple to-do (human-readable output)
  bacheca todo create --title="Studiare per l'esame" --board=1

  # JSON output for agents
  bacheca todo create --title="Fix bug" --board=1 --json

  # Quiet mode for bash capture
  TODO_ID=$(bacheca todo create --title="Fix bug" --board=1 --quiet)

  # Full example with all options
  bacheca todo create \
    --title="Comprare i biglietti" \
    --description="Treno per Milano" \
    --due=2026-09-15 \
    --color="#FF0000" \
    --url="https://trenitalia.com" \
    --board=1
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "To-do title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("board", 0, "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "To-do description (use - for stdin)")
	cmd.Flags().String("due", "", "Due date in YYYY-MM-DD format")
	cmd.Flags().String("color", "", "Card color in hex format #RRGGBB")
	cmd.Flags().String("url", "", "Attached URL")
	cmd.Flags().String("image", "", "Attached image path")
	cmd.Flags().Int("position", models.DefaultPosition, "Position on the board")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	due, _ := cmd.Flags().GetString("due")
	color, _ := cmd.Flags().GetString("color")
	url, _ := cmd.Flags().GetString("url")
	image, _ := cmd.Flags().GetString("image")
	position, _ := cmd.Flags().GetInt("position")
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

	// Validate board exists
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
			"Use 'bacheca board list' to see available boards or 'bacheca board create' to create one"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Handle description from stdin
	if description == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return err
		}
		description = string(data)
	}

	// Validate color
	if color != "" {
		if err := cli.ValidateColorHex(color); err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_COLOR", err.Error(),
				"Colors must be in hex format, e.g. #FF0000"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	// Parse due date
	dueDate, err := cli.ParseDueDate(due)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_DUE_DATE", err.Error(),
			"Due dates must be in YYYY-MM-DD format, e.g. 2026-09-15"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	req := todoservice.CreateToDoRequest{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Color:       color,
		URL:         url,
		ImagePath:   image,
		Position:    position,
		BoardID:     board.ID,
		CreatorID:   board.OwnerID,
	}

	todo, err := cliInstance.App.ToDoService.CreateToDo(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("TODO_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", todo.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":          todo.ID,
			"title":       todo.Title,
			"description": todo.Description,
			"board":       map[string]interface{}{"id": board.ID, "title": board.Title},
			"status":      todo.Status,
			"due_date":    todo.DueDate,
			"created_at":  todo.CreatedAt,
		})
	}

	fmt.Printf("✓ To-do '%s' created successfully (ID: %d)\n", todo.Title, todo.ID)
	fmt.Printf("  Board: %s\n", board.Title)
	if dueDate != nil {
		fmt.Printf("  Due: %s\n", dueDate.Format(cli.DueDateLayout))
	}
	return nil
}
