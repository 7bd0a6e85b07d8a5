package config

import (
	"context"

	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/output"
)

// StorageKey is the git configuration key holding the storage root.
const StorageKey = "local.storage"

// Resolver reads and writes the storage root across git configuration scopes.
type Resolver struct {
	git     git.Client
	locator git.Locator
	splog   *output.Splog
}

// NewResolver creates a Resolver. locator decides whether a local write is
// safe in Ensure.
func NewResolver(client git.Client, locator git.Locator, splog *output.Splog) *Resolver {
	return &Resolver{git: client, locator: locator, splog: splog}
}

// Get reads the storage root at scope (ScopeEffective for the most specific
// value). A failed read returns "" with a nil error when tolerant, otherwise a
// ConfigUnavailableError.
func (r *Resolver) Get(ctx context.Context, scope git.Scope, tolerant bool) (string, error) {
	value, err := r.git.GetConfig(ctx, StorageKey, scope)
	if err != nil {
		if tolerant {
			r.splog.Debug("reading %s (%s) failed: %v", StorageKey, scope, err)
			return "", nil
		}
		return "", gitlocalerrors.NewConfigUnavailableError(StorageKey, scopeName(scope), err)
	}
	value = git.TrimLineEnd(value)
	r.splog.Debug("%s (%s) = %q", StorageKey, scope, value)
	return value, nil
}

// IsSame reports whether the effective storage root equals candidate.
func (r *Resolver) IsSame(ctx context.Context, candidate string, tolerant bool) (bool, error) {
	value, err := r.Get(ctx, git.ScopeEffective, tolerant)
	if err != nil {
		return false, err
	}
	return value == git.TrimLineEnd(candidate), nil
}

// Set writes value as the sole storage root at scope. A failed write is
// swallowed when tolerant, otherwise returned as a ConfigWriteRejectedError.
func (r *Resolver) Set(ctx context.Context, value string, scope git.Scope, tolerant bool) error {
	if err := r.git.SetConfig(ctx, StorageKey, value, scope); err != nil {
		if tolerant {
			r.splog.Debug("writing %s (%s) failed: %v", StorageKey, scope, err)
			return nil
		}
		return gitlocalerrors.NewConfigWriteRejectedError(StorageKey, scopeName(scope), value, err)
	}
	r.splog.Debug("wrote %s (%s) = %q", StorageKey, scope, value)
	return nil
}

// Ensure makes value the effective storage root when it is not already. The
// write goes to the local scope and only happens inside a real work tree.
func (r *Resolver) Ensure(ctx context.Context, value string) error {
	same, _ := r.IsSame(ctx, value, true)
	if same {
		return nil
	}
	workTree, ok := r.locator.Locate()
	if !ok {
		r.splog.Debug("not in a work tree, leaving %s unset", StorageKey)
		return nil
	}
	r.splog.Debug("setting %s for work tree %s", StorageKey, workTree)
	return r.Set(ctx, value, git.ScopeLocal, false)
}

// attempt is one step of the reconcile cascade.
type attempt struct {
	scope    git.Scope
	tolerant bool
}

// reconcileAttempts are tried in order until one takes effect. The last
// attempt's failure is the only one surfaced.
var reconcileAttempts = []attempt{
	{scope: git.ScopeSystem, tolerant: true},
	{scope: git.ScopeGlobal, tolerant: false},
	{scope: git.ScopeLocal, tolerant: false},
}

// Reconcile makes root the effective storage root, preferring the broadest
// writable scope. It returns the scope that was written, or ScopeEffective
// when root was already in effect and nothing was written.
func (r *Resolver) Reconcile(ctx context.Context, root string) (git.Scope, error) {
	same, err := r.IsSame(ctx, root, false)
	if err != nil {
		r.splog.Debug("%v", err)
	} else if same {
		return git.ScopeEffective, nil
	}

	last := len(reconcileAttempts) - 1
	for i, a := range reconcileAttempts {
		err := r.Set(ctx, root, a.scope, a.tolerant)
		if i == last {
			return a.scope, err
		}
		if err != nil {
			r.splog.Debug("%v, trying a narrower scope", err)
			continue
		}
		if same, _ := r.IsSame(ctx, root, true); same {
			return a.scope, nil
		}
		r.splog.Debug("%s write did not take effect, trying a narrower scope", a.scope)
	}
	return git.ScopeEffective, nil
}

// ScopeValue is the storage root as seen from one scope.
type ScopeValue struct {
	Scope git.Scope
	Value string
	Set   bool
}

// Describe reads the effective storage root and each scope's own value.
// All reads are tolerant.
func (r *Resolver) Describe(ctx context.Context) []ScopeValue {
	scopes := append([]git.Scope{git.ScopeEffective}, git.Scopes...)
	values := make([]ScopeValue, 0, len(scopes))
	for _, scope := range scopes {
		value, err := r.git.GetConfig(ctx, StorageKey, scope)
		if err != nil {
			r.splog.Debug("reading %s (%s) failed: %v", StorageKey, scope, err)
			values = append(values, ScopeValue{Scope: scope})
			continue
		}
		values = append(values, ScopeValue{Scope: scope, Value: git.TrimLineEnd(value), Set: true})
	}
	return values
}

func scopeName(scope git.Scope) string {
	if scope == git.ScopeEffective {
		return ""
	}
	return string(scope)
}
