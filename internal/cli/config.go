package cli

import (
	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/cli/helpers"
	"gitlocal.dev/gitlocal/internal/config"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [gitroot]",
		Short: "Set or show the local storage root",
		Long: `Set the local storage root, or show it when no path is given.

The root is written at the broadest scope that accepts it: system first,
then global, then the current repository. A scope only counts once the
value is actually in effect there, so a narrower value that shadows it
moves the write further down.`,
		Example: `  gitlocal config /srv/git
  gitlocal config`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if len(args) == 0 {
					showConfig(ctx)
					return nil
				}

				root := args[0]
				scope, err := ctx.Resolver.Reconcile(ctx, root)
				if err != nil {
					return err
				}
				if scope == git.ScopeEffective {
					ctx.Splog.Info("%s is already %s", config.StorageKey, root)
					return nil
				}
				ctx.Splog.Info("Set %s to %s (%s)", config.StorageKey, root, scope)
				return nil
			})
		},
	}

	return cmd
}

func showConfig(ctx *runtime.Context) {
	for _, v := range ctx.Resolver.Describe(ctx) {
		value := "<unset>"
		if v.Set {
			value = v.Value
		}
		ctx.Splog.Info("%-9s %s", v.Scope.String()+":", value)
	}
}
