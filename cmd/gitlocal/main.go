package main

import (
	"context"
	"os"
	"os/signal"

	"gitlocal.dev/gitlocal/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rootCmd := cli.NewRootCmd(version)
	rootCmd.SetContext(ctx)
	code := cli.Execute(rootCmd)
	stop()
	os.Exit(code)
}
