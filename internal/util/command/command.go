package command

import (
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a group command that only exists to host
// subcommands. Calling it without a subcommand prints the usage.
func NewSubcommandGroup(name string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: name,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				cmd.PrintErrln(err)
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}
