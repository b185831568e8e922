// Package todo provides the to-do CLI commands.
package todo

import (
	"github.com/spf13/cobra"
)

// Cmd returns the todo parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage to-dos",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ShareCmd())

	return cmd
}
