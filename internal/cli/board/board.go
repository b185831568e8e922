// Package board provides the board CLI commands.
package board

import (
	"github.com/spf13/cobra"
)

// Cmd returns the board parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(CompleteCmd())

	return cmd
}
