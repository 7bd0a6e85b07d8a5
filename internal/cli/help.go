package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newHelpCmd creates the help command. Without arguments it prints the root
// help followed by the help of every subcommand.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show help for gitlocal and its subcommands",
		// help needs neither settings nor git
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) > 0 {
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					return fmt.Errorf("unknown help topic %q", strings.Join(args, " "))
				}
				return target.Help()
			}

			if err := root.Help(); err != nil {
				return err
			}
			for _, sub := range root.Commands() {
				if !sub.IsAvailableCommand() || sub == cmd {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout())
				if err := sub.Help(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
