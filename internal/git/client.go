package git

import (
	"context"
	"fmt"
)

// Client defines the git operations gitlocal performs.
// This allows the resolver and binder to be used with both real git and fake implementations.
type Client interface {
	// Repository creation
	InitRepo(ctx context.Context, path string) error
	InitBareRepo(ctx context.Context, path string) error
	CloneRepo(ctx context.Context, source string) error

	// Remotes of the current work tree
	GetRemoteURL(ctx context.Context, name string) (string, error)
	AddRemote(ctx context.Context, name, url string) error

	// Scoped configuration
	GetConfig(ctx context.Context, key string, scope Scope) (string, error)
	SetConfig(ctx context.Context, key, value string, scope Scope) error
}

// CommandClient implements Client by running the git executable.
type CommandClient struct {
	runner *CommandRunner
}

var _ Client = (*CommandClient)(nil)

// NewCommandClient creates a Client running git in workingDir.
func NewCommandClient(workingDir string) *CommandClient {
	return &CommandClient{runner: NewCommandRunner(workingDir)}
}

// InitRepo creates (or reinitializes) a repository at path.
func (c *CommandClient) InitRepo(ctx context.Context, path string) error {
	_, err := c.runner.Run(ctx, "init", path)
	return err
}

// InitBareRepo creates a bare repository at path.
func (c *CommandClient) InitBareRepo(ctx context.Context, path string) error {
	_, err := c.runner.Run(ctx, "init", "--bare", path)
	return err
}

// CloneRepo clones source into the working directory. Progress and errors
// go straight to the terminal.
func (c *CommandClient) CloneRepo(ctx context.Context, source string) error {
	return c.runner.RunInteractive(ctx, "clone", source)
}

// GetRemoteURL returns the URL of the named remote. A missing remote is an error.
func (c *CommandClient) GetRemoteURL(ctx context.Context, name string) (string, error) {
	return c.runner.Run(ctx, "remote", "get-url", name)
}

// AddRemote registers a new remote.
func (c *CommandClient) AddRemote(ctx context.Context, name, url string) error {
	_, err := c.runner.Run(ctx, "remote", "add", name, url)
	return err
}

// GetConfig reads key at scope. An unset key is an error.
func (c *CommandClient) GetConfig(ctx context.Context, key string, scope Scope) (string, error) {
	args := []string{"config"}
	if flag := scope.Flag(); flag != "" {
		args = append(args, flag)
	}
	args = append(args, "--get", key)
	return c.runner.Run(ctx, args...)
}

// SetConfig writes value as the only value of key at scope.
func (c *CommandClient) SetConfig(ctx context.Context, key, value string, scope Scope) error {
	if scope == ScopeEffective {
		return fmt.Errorf("setting %s requires an explicit scope", key)
	}
	_, err := c.runner.Run(ctx, "config", scope.Flag(), "--replace-all", key, value)
	return err
}
