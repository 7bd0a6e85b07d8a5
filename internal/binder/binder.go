// Package binder connects work trees to their bare counterparts in local
// storage: init binds the current work tree, clone checks one out, list
// shows what storage holds.
package binder

import (
	"context"
	"fmt"

	"gitlocal.dev/gitlocal/internal/config"
	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/output"
)

// State is where Init stopped.
type State int

const (
	// StateBound means a new remote was registered.
	StateBound State = iota
	// StateAlreadyBound means the remote already pointed at local storage.
	StateAlreadyBound
	// StateConflict means the remote points somewhere else and nothing was changed.
	StateConflict
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	case StateAlreadyBound:
		return "already bound"
	case StateConflict:
		return "conflict"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result describes what Init did.
type Result struct {
	State    State
	WorkTree string
	Target   string
	// CreatedWorkTree is set when init had to create the work tree's repository.
	CreatedWorkTree bool
	// CreatedBare is set when the bare repository did not exist yet.
	CreatedBare bool
}

// Binder reconciles work trees with local storage.
type Binder struct {
	git      git.Client
	resolver *config.Resolver
	locator  git.Locator
	splog    *output.Splog
}

// New creates a Binder.
func New(client git.Client, resolver *config.Resolver, locator git.Locator, splog *output.Splog) *Binder {
	return &Binder{
		git:      client,
		resolver: resolver,
		locator:  locator,
		splog:    splog,
	}
}

// Init binds the current work tree to its bare repository under root through
// remoteName. Every step is safe to repeat, so an interrupted Init can simply
// be run again. An existing remote pointing elsewhere is never touched; Init
// returns a RemoteConflictError instead.
func (b *Binder) Init(ctx context.Context, remoteName, root string) (*Result, error) {
	workTree, created, err := b.detectTree(ctx)
	if err != nil {
		return nil, err
	}

	if err := b.resolver.Ensure(ctx, root); err != nil {
		return nil, err
	}

	result := &Result{
		WorkTree:        workTree,
		Target:          TargetFor(root, workTree),
		CreatedWorkTree: created,
	}
	b.splog.Debug("work tree %s binds to %s", result.WorkTree, result.Target)

	remote, found := b.remoteURL(ctx, remoteName)
	if found {
		if remote != result.Target {
			result.State = StateConflict
			return result, gitlocalerrors.NewRemoteConflictError(remoteName, remote, result.Target)
		}
		result.State = StateAlreadyBound
		return result, nil
	}

	if !git.IsBareRepo(result.Target) {
		if err := b.git.InitBareRepo(ctx, result.Target); err != nil {
			return nil, err
		}
		result.CreatedBare = true
	}

	if err := b.git.AddRemote(ctx, remoteName, result.Target); err != nil {
		return nil, err
	}
	result.State = StateBound
	return result, nil
}

// detectTree returns the work tree, creating a repository in the current
// directory when it has none. The GIT_WORK_TREE override is trusted as is.
func (b *Binder) detectTree(ctx context.Context) (string, bool, error) {
	if b.locator.Override != "" {
		return b.locator.Override, false, nil
	}

	cwd, err := b.locator.Candidate()
	if err != nil {
		return "", false, fmt.Errorf("failed to get working directory: %w", err)
	}
	if git.IsWorkTree(cwd) {
		return cwd, false, nil
	}

	b.splog.Debug("no repository in %s, initializing one", cwd)
	if err := b.git.InitRepo(ctx, cwd); err != nil {
		return "", false, err
	}
	return cwd, true, nil
}

// remoteURL probes for an existing remote. Any failure counts as absent.
func (b *Binder) remoteURL(ctx context.Context, name string) (string, bool) {
	url, err := b.git.GetRemoteURL(ctx, name)
	if err != nil {
		b.splog.Debug("remote %s not found: %v", name, err)
		return "", false
	}
	return git.TrimLineEnd(url), true
}
