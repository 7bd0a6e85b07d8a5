package cli

import (
	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/binder"
	"gitlocal.dev/gitlocal/internal/cli/helpers"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Bind the current repository to local storage",
		Long: `Bind the current repository to a bare repository in local storage.

The current directory becomes a repository if it is not one yet. The bare
repository <gitroot>/<directory name>.git is created when missing and
registered as the remote. Running init again is harmless.

An existing remote with the same name that points anywhere else is left
untouched and init fails.`,
		Example: `  gitlocal init
  gitlocal init --remote local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				name := remote
				if !cmd.Flags().Changed("remote") {
					name = ctx.Settings.Remote
				}

				result, err := ctx.Binder.Init(ctx, name, ctx.Root)
				if err != nil {
					return err
				}

				if result.CreatedWorkTree {
					ctx.Splog.Info("Initialized repository in %s", result.WorkTree)
				}
				if result.CreatedBare {
					ctx.Splog.Info("Created bare repository %s", result.Target)
				}
				switch result.State {
				case binder.StateAlreadyBound:
					ctx.Splog.Info("Remote %s already points to %s", name, result.Target)
				case binder.StateBound:
					ctx.Splog.Info("Added remote %s -> %s", name, result.Target)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Name of the git remote")

	return cmd
}
