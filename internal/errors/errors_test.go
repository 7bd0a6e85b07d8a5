package errors_test

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlocal.dev/gitlocal/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, errors.ExitCode(nil))
	})

	t.Run("remote conflict", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("init: %w", errors.NewRemoteConflictError("origin", "https://example.com/x.git", "/gitroot/x.git"))
		assert.Equal(t, 1, errors.ExitCode(err))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, errors.ExitCode(stderrors.New("boom")))
	})

	t.Run("git exit status is kept", func(t *testing.T) {
		t.Parallel()
		sh, lookErr := exec.LookPath("sh")
		if lookErr != nil {
			t.Skip("sh not found")
		}
		runErr := exec.Command(sh, "-c", "exit 128").Run()
		require.Error(t, runErr)

		err := errors.NewGitCommandError("git", []string{"clone", "/gitroot/missing.git"}, "", "", runErr)
		assert.Equal(t, 128, errors.ExitCode(err))
		assert.ErrorIs(t, err, errors.ErrGitCommand)
	})
}

func TestTypedErrors(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("exit status 1")

	unavailable := errors.NewConfigUnavailableError("local.storage", "", cause)
	assert.ErrorIs(t, unavailable, errors.ErrConfigUnavailable)
	assert.ErrorIs(t, unavailable, cause)
	assert.Contains(t, unavailable.Error(), "effective configuration")

	rejected := errors.NewConfigWriteRejectedError("local.storage", "system", "/gitroot", cause)
	assert.ErrorIs(t, rejected, errors.ErrConfigWriteRejected)
	assert.Contains(t, rejected.Error(), "system configuration")
	assert.NotErrorIs(t, rejected, errors.ErrConfigUnavailable)

	gitErr := errors.NewGitCommandError("git", []string{"remote", "add"}, "", "error: remote origin already exists.\n", cause)
	assert.Equal(t, "error: remote origin already exists.", gitErr.Message())

	var target *errors.GitCommandError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", gitErr), &target))
	assert.Equal(t, []string{"remote", "add"}, target.Args)
}

func TestFormatRemoteConflict(t *testing.T) {
	t.Parallel()

	err := errors.NewRemoteConflictError("origin", "https://example.com/myproj.git", "/gitroot/myproj.git")
	page := errors.FormatRemoteConflict(err, false)

	assert.Contains(t, page, `the remote "origin" already exists`)
	assert.Contains(t, page, "  https://example.com/myproj.git\n")
	assert.Contains(t, page, "  git push\n")
	assert.Contains(t, page, "  git remote rm origin\n")
	assert.Contains(t, page, "  git local --remote=local init\n")
	assert.NotContains(t, page, "\x1b[")

	assert.Empty(t, errors.FormatRemoteConflict(nil, false))
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	t.Run("conflict page", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errors.FprintError(&buf, errors.NewRemoteConflictError("origin", "u", "e"), false)
		assert.Contains(t, buf.String(), "Please do one of the above and try again.")
		assert.NotContains(t, buf.String(), "[debug]")
	})

	t.Run("git stderr", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errors.FprintError(&buf, errors.NewGitCommandError("git", nil, "", "fatal: not a git repository\n", nil), false)
		assert.Equal(t, "fatal: not a git repository\n", buf.String())
	})

	t.Run("other errors with debug detail", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errors.FprintError(&buf, stderrors.New("boom"), true)
		assert.Contains(t, buf.String(), "error: boom\n")
		assert.Contains(t, buf.String(), "[debug] boom")
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		errors.FprintError(&buf, nil, true)
		assert.Empty(t, buf.String())
	})
}
