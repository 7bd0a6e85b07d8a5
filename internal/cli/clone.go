package cli

import (
	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/cli/helpers"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <name>",
		Short: "Clone a repository from local storage",
		Long: `Clone <gitroot>/<name>.git into the current directory.

The .git suffix is optional. When git clone fails its exit status is
passed through unchanged.`,
		Example: `  gitlocal clone myproj
  gitlocal clone myproj.git`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteStorageRepos,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := ctx.Binder.Clone(ctx, args[0], ctx.Root)
				return err
			})
		},
	}

	return cmd
}
