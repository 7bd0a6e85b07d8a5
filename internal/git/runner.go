package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
)

// DefaultCommandTimeout is the default timeout for captured git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	binary     string
}

// NewCommandRunner creates a new CommandRunner. An empty workingDir runs git
// in the process's current directory.
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, binary: "git"}
}

// Run executes a git command with the given context and returns its output
// with trailing line terminators removed.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gitlocalerrors.NewGitCommandError(r.binary, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gitlocalerrors.NewGitCommandError(r.binary, args, stdout.String(), stderr.String(), err)
	}
	return TrimLineEnd(stdout.String()), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal. No timeout is applied; clones of large repositories are
// bounded only by git itself.
func (r *CommandRunner) RunInteractive(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return gitlocalerrors.NewGitCommandError(r.binary, args, "", "", err)
	}
	return nil
}

// TrimLineEnd strips trailing line terminators and nothing else, so values
// compare byte-for-byte with what was written.
func TrimLineEnd(s string) string {
	return strings.TrimRight(s, "\r\n")
}
