package helpers

import (
	"io"

	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/config"
	"gitlocal.dev/gitlocal/internal/output"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// CompleteStorageRepos is a cobra.ValidArgsFunction returning the names of
// the bare repositories in local storage.
func CompleteStorageRepos(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	settings, err := config.LoadSettings(config.LoadOptions{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	splog, _ := output.NewSplogWithOptions(output.Options{Writer: io.Discard})
	rc := runtime.NewContext(cmd.Context(), runtime.Options{Settings: settings, Splog: splog})

	root := rc.DefaultRoot()
	if flag := cmd.Flag("gitroot"); flag != nil && flag.Changed {
		root = flag.Value.String()
	}

	entries, err := rc.Binder.List(root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Valid() {
			names = append(names, e.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
