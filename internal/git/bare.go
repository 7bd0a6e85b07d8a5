package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// BareInfo describes a repository found in local storage.
type BareInfo struct {
	Path    string
	Bare    bool
	Head    string // short branch name HEAD points at, empty for an unborn HEAD
	Remotes int
}

// InspectBare opens the repository at path read-only and reports its state.
func InspectBare(path string) (*BareInfo, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("reading config of %s: %w", path, err)
	}

	info := &BareInfo{
		Path:    path,
		Bare:    cfg.Core.IsBare,
		Remotes: len(cfg.Remotes),
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	switch {
	case err == nil:
		if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
			info.Head = head.Target().Short()
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
	default:
		return nil, fmt.Errorf("reading HEAD of %s: %w", path, err)
	}

	return info, nil
}
