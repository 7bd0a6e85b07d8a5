// Package errors provides sentinel errors and custom error types for the gitlocal application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrConfigUnavailable indicates that a configuration key could not be read
	ErrConfigUnavailable = errors.New("configuration unavailable")

	// ErrConfigWriteRejected indicates that a configuration write did not take effect
	ErrConfigWriteRejected = errors.New("configuration write rejected")

	// ErrRemoteConflict indicates that a remote already points somewhere else
	ErrRemoteConflict = errors.New("remote conflict")

	// ErrGitCommand indicates that a git command exited unsuccessfully
	ErrGitCommand = errors.New("git command failed")
)

// ConfigUnavailableError represents a failed read of a configuration key
type ConfigUnavailableError struct {
	Key   string
	Scope string
	Err   error
}

func (e *ConfigUnavailableError) Error() string {
	where := "effective configuration"
	if e.Scope != "" {
		where = e.Scope + " configuration"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s is not readable from %s: %v", e.Key, where, e.Err)
	}
	return fmt.Sprintf("%s is not readable from %s", e.Key, where)
}

// Is returns true if the target error is ErrConfigUnavailable
func (e *ConfigUnavailableError) Is(target error) bool {
	return target == ErrConfigUnavailable
}

func (e *ConfigUnavailableError) Unwrap() error {
	return e.Err
}

// NewConfigUnavailableError creates a new ConfigUnavailableError
func NewConfigUnavailableError(key, scope string, err error) *ConfigUnavailableError {
	return &ConfigUnavailableError{Key: key, Scope: scope, Err: err}
}

// ConfigWriteRejectedError represents a configuration write that failed at a scope
type ConfigWriteRejectedError struct {
	Key   string
	Scope string
	Value string
	Err   error
}

func (e *ConfigWriteRejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot set %s to %q in %s configuration: %v", e.Key, e.Value, e.Scope, e.Err)
	}
	return fmt.Sprintf("cannot set %s to %q in %s configuration", e.Key, e.Value, e.Scope)
}

// Is returns true if the target error is ErrConfigWriteRejected
func (e *ConfigWriteRejectedError) Is(target error) bool {
	return target == ErrConfigWriteRejected
}

func (e *ConfigWriteRejectedError) Unwrap() error {
	return e.Err
}

// NewConfigWriteRejectedError creates a new ConfigWriteRejectedError
func NewConfigWriteRejectedError(key, scope, value string, err error) *ConfigWriteRejectedError {
	return &ConfigWriteRejectedError{Key: key, Scope: scope, Value: value, Err: err}
}

// RemoteConflictError represents an existing remote whose URL is not the expected bare repository
type RemoteConflictError struct {
	Remote   string
	URL      string
	Expected string
}

func (e *RemoteConflictError) Error() string {
	return fmt.Sprintf("remote %q already exists and points to %s (expected %s)", e.Remote, e.URL, e.Expected)
}

// Is returns true if the target error is ErrRemoteConflict
func (e *RemoteConflictError) Is(target error) bool {
	return target == ErrRemoteConflict
}

// NewRemoteConflictError creates a new RemoteConflictError
func NewRemoteConflictError(remote, url, expected string) *RemoteConflictError {
	return &RemoteConflictError{
		Remote:   remote,
		URL:      url,
		Expected: expected,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrGitCommand
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGitCommand
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Message returns git's own error text, falling back to the full description.
func (e *GitCommandError) Message() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	return e.Error()
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the process exit status.
// A failed git process keeps its own status so callers see what git reported.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrRemoteConflict) {
		return 1
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
