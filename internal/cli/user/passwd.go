package user

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bacheca-dev/bacheca/internal/cli"
	userservice "github.com/bacheca-dev/bacheca/internal/services/user"
)

// PasswdCmd returns the user passwd subcommand
func PasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change a user's password",
		Long: `Change the password of an existing user account.

Examples:
  bacheca user passwd --username=alice --password=newsecret
`,
		RunE: runPasswd,
	}

	cmd.Flags().String("username", "", "Username (required)")
	if err := cmd.MarkFlagRequired("username"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("password", "", "New password (required)")
	if err := cmd.MarkFlagRequired("password"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags (REQUIRED on all commands)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPasswd(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.UserService.RotatePassword(ctx, username, password); err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("USER_NOT_FOUND",
				fmt.Sprintf("user '%s' not found", username),
				"Use 'bacheca user register' to create the account first"); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("PASSWD_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{"username": username})
	}

	fmt.Printf("✓ Password updated for '%s'\n", username)
	return nil
}
