package board

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	sysuser "github.com/bacheca-dev/bacheca/internal/user"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's boards",
		Long: `List all boards owned by a user. An unknown username yields an
empty list, not an error.

Examples:
  bacheca board list --user=alice
  bacheca board list --user=alice --json
`,
		RunE: runList,
	}

	cmd.Flags().String("user", "", "Owner username (defaults to system username)")

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	boards, err := cliInstance.App.BoardService.GetBoardsByUsername(ctx, username)
	if err != nil {
		if fmtErr := formatter.Error("BOARD_LIST_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, b := range boards {
			fmt.Printf("%d\n", b.ID)
		}
		return nil
	}

	if jsonOutput {
		items := make([]map[string]interface{}, 0, len(boards))
		for _, b := range boards {
			items = append(items, map[string]interface{}{
				"id":         b.ID,
				"title":      b.Title,
				"created_at": b.CreatedAt,
			})
		}
		return formatter.Success(map[string]interface{}{
			"user":   username,
			"boards": items,
		})
	}

	if len(boards) == 0 {
		fmt.Printf("No boards for '%s'\n", username)
		return nil
	}

	fmt.Printf("Boards for '%s':\n", username)
	for _, b := range boards {
		fmt.Printf("  [%d] %s\n", b.ID, b.Title)
	}
	return nil
}
