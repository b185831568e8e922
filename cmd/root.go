package cmd

import (
	"github.com/spf13/cobra"

	boardcmd "github.com/bacheca-dev/bacheca/internal/cli/board"
	todocmd "github.com/bacheca-dev/bacheca/internal/cli/todo"
	usercmd "github.com/bacheca-dev/bacheca/internal/cli/user"
)

var rootCmd = &cobra.Command{
	Use:   "bacheca",
	Short: "Bacheca - A shared task board manager",
	Long:  `Bacheca is a task board manager for keeping personal boards of to-dos and sharing them with other users.`,
}

func init() {
	rootCmd.AddCommand(usercmd.Cmd())
	rootCmd.AddCommand(boardcmd.Cmd())
	rootCmd.AddCommand(todocmd.Cmd())
}

func Execute() error {
	return rootCmd.Execute()
}
