package user

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	userservice "github.com/bacheca-dev/bacheca/internal/services/user"
)

// RegisterCmd returns the user register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user account",
		Long: `Register a new user account with a username and password.

Examples:
  # Register a user (human-readable output)
  bacheca user register --username=alice --password=secret

  # JSON output for agents
  bacheca user register --username=alice --password=secret --json

  # Quiet mode for bash capture
  USER_ID=$(bacheca user register --username=alice --password=secret --quiet)
`,
		RunE: runRegister,
	}

	cmd.Flags().String("username", "", "Username (required)")
	if err := cmd.MarkFlagRequired("username"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("password", "", "Password (required)")
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
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

	account, err := cliInstance.App.UserService.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, userservice.ErrUsernameTaken) {
			if fmtErr := formatter.ErrorWithSuggestion("USERNAME_TAKEN",
				fmt.Sprintf("username '%s' is already registered", username),
				"Pick a different username"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			return err
		}
		if fmtErr := formatter.Error("REGISTER_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%d\n", account.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":         account.ID,
			"username":   account.Username,
			"created_at": account.CreatedAt,
		})
	}

	fmt.Printf("✓ User '%s' registered successfully (ID: %d)\n", account.Username, account.ID)
	return nil
}
