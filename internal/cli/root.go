package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/config"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/output"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// RootOptions lets callers replace the collaborators the commands use.
type RootOptions struct {
	Version string
	// Git defaults to the git executable in the current directory.
	Git git.Client
	// Settings are loaded from the settings file and environment when nil.
	Settings *config.Settings
	Getwd    func() (string, error)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithOptions(RootOptions{Version: version})
}

// NewRootCmdWithOptions creates the root cobra command with custom collaborators
func NewRootCmdWithOptions(opts RootOptions) *cobra.Command {
	var (
		gitroot string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "gitlocal",
		Short: "Use a local directory of bare repositories as your git remote",
		Long: `gitlocal keeps bare repositories in a local storage directory and wires
work trees to them, so a plain directory can serve as a personal git host.

The storage root is kept in git's own configuration under local.storage.
When --gitroot is not given it defaults to that value, or /gitroot.

Install it as a git alias to run it as "git local":
  git config --global alias.local '!gitlocal'`,
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings := opts.Settings
			if settings == nil {
				loaded, err := config.LoadSettings(config.LoadOptions{})
				if err != nil {
					return err
				}
				settings = loaded
			}

			debugMode := debug || settings.DebugEnabled()
			splog, err := output.NewSplogWithOptions(output.Options{
				Writer:   cmd.OutOrStdout(),
				Debug:    debugMode,
				LogFile:  settings.LogFile,
				Rotation: output.RotationFromEnv(),
			})
			if err != nil {
				return err
			}
			splog.Debug("debug enabled")

			rc := runtime.NewContext(cmd.Context(), runtime.Options{
				Settings: settings,
				Splog:    splog,
				Git:      opts.Git,
				Getwd:    opts.Getwd,
				Debug:    debugMode,
			})
			if cmd.Flags().Changed("gitroot") {
				rc.Root = gitroot
			} else {
				rc.Root = rc.DefaultRoot()
			}
			splog.Debug("storage root = %q", rc.Root)

			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if rc := runtime.FromContext(cmd.Context()); rc != nil {
				return rc.Splog.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&gitroot, "gitroot", "",
		fmt.Sprintf("Path to git local storage (default: git config %s, else %s)", config.StorageKey, config.DefaultRoot))
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.SetHelpCommand(newHelpCmd())

	return rootCmd
}
