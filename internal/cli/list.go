package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/binder"
	"gitlocal.dev/gitlocal/internal/cli/helpers"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the repositories in local storage",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				entries, err := ctx.Binder.List(ctx.Root)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					ctx.Splog.Info("No repositories in %s", ctx.Root)
					return nil
				}

				w := tabwriter.NewWriter(ctx.Splog.Writer(), 0, 4, 2, ' ', 0)
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Path, describeEntry(e))
				}
				return w.Flush()
			})
		},
	}

	return cmd
}

func describeEntry(e binder.Entry) string {
	switch {
	case e.Err != nil:
		return "unreadable"
	case !e.Valid():
		return "not bare"
	case e.Info.Head != "":
		return "bare, HEAD " + e.Info.Head
	default:
		return "bare"
	}
}
