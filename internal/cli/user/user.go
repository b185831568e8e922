// Package user provides the user account CLI commands.
package user

import (
	"github.com/spf13/cobra"
)

// Cmd returns the user parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(RegisterCmd())
	cmd.AddCommand(PasswdCmd())

	return cmd
}
