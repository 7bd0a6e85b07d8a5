package cli

import (
	"github.com/spf13/cobra"

	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
	"gitlocal.dev/gitlocal/internal/runtime"
)

// Execute runs rootCmd, reports any error and returns the process exit code.
func Execute(rootCmd *cobra.Command) int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	verbose := false
	if cmd != nil {
		if rc := runtime.FromContext(cmd.Context()); rc != nil {
			verbose = rc.Debug
			_ = rc.Splog.Close()
		}
	}
	gitlocalerrors.FprintError(rootCmd.ErrOrStderr(), err, verbose)
	return gitlocalerrors.ExitCode(err)
}
