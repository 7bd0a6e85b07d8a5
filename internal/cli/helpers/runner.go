// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlocal.dev/gitlocal/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx := runtime.FromContext(cmd.Context())
	if ctx == nil {
		return fmt.Errorf("%s: runtime context not initialized", cmd.CommandPath())
	}
	return fn(ctx)
}
