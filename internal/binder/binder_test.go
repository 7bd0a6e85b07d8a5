package binder_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlocal.dev/gitlocal/internal/binder"
	"gitlocal.dev/gitlocal/internal/config"
	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/output"
	"gitlocal.dev/gitlocal/testhelpers"
)

type fixture struct {
	fake    *testhelpers.FakeGit
	binder  *binder.Binder
	dir     string
	root    string
	locator git.Locator
}

// newFixture returns a binder working in base/name with storage in base/gitroot.
func newFixture(t *testing.T, fake *testhelpers.FakeGit, name string) *fixture {
	t.Helper()
	base := t.TempDir()
	f := &fixture{
		fake: fake,
		dir:  filepath.Join(base, name),
		root: filepath.Join(base, "gitroot"),
	}
	require.NoError(t, os.MkdirAll(f.dir, 0o755))
	f.locator = git.Locator{Getwd: func() (string, error) { return f.dir, nil }}
	f.build()
	return f
}

func (f *fixture) build() {
	splog, _ := output.NewSplogWithOptions(output.Options{Writer: io.Discard, Debug: true})
	resolver := config.NewResolver(f.fake, f.locator, splog)
	f.binder = binder.New(f.fake, resolver, f.locator, splog)
}

func (f *fixture) markWorkTree(t *testing.T) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(f.dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, ".git", "config"), nil, 0o644))
}

func TestInit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("binds a plain directory end to end", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "myproj")
		target := filepath.Join(f.root, "myproj.git")

		result, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		assert.Equal(t, binder.StateBound, result.State)
		assert.Equal(t, f.dir, result.WorkTree)
		assert.Equal(t, target, result.Target)
		assert.True(t, result.CreatedWorkTree)
		assert.True(t, result.CreatedBare)

		assert.True(t, git.IsWorkTree(f.dir))
		assert.True(t, git.IsBareRepo(target))

		url, ok := f.fake.Remote("origin")
		require.True(t, ok)
		assert.Equal(t, target, url)

		stored, ok := f.fake.ConfigValue(git.ScopeLocal, config.StorageKey)
		require.True(t, ok)
		assert.Equal(t, f.root, stored)

		assert.Equal(t, []string{"init " + f.dir}, f.fake.CallsWithPrefix("init "))
		assert.Equal(t, []string{"init-bare " + target}, f.fake.CallsWithPrefix("init-bare"))
		assert.Equal(t, []string{"add-remote origin " + target}, f.fake.CallsWithPrefix("add-remote"))
	})

	t.Run("second run is already bound", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "myproj")

		_, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		before := len(f.fake.Calls())

		result, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		assert.Equal(t, binder.StateAlreadyBound, result.State)
		assert.False(t, result.CreatedWorkTree)
		assert.False(t, result.CreatedBare)

		for _, call := range f.fake.Calls()[before:] {
			assert.NotContains(t, call, "init")
			assert.NotContains(t, call, "add-remote")
			assert.NotContains(t, call, "set-config")
		}
	})

	t.Run("conflicting remote is left alone", func(t *testing.T) {
		t.Parallel()
		fake := testhelpers.NewFakeGit().WithRemote("origin", "https://example.com/myproj.git")
		f := newFixture(t, fake, "myproj")
		f.markWorkTree(t)

		result, err := f.binder.Init(ctx, "origin", f.root)
		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, binder.StateConflict, result.State)
		assert.ErrorIs(t, err, gitlocalerrors.ErrRemoteConflict)
		assert.Equal(t, 1, gitlocalerrors.ExitCode(err))

		var conflict *gitlocalerrors.RemoteConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "origin", conflict.Remote)
		assert.Equal(t, "https://example.com/myproj.git", conflict.URL)
		assert.Equal(t, filepath.Join(f.root, "myproj.git"), conflict.Expected)

		url, _ := f.fake.Remote("origin")
		assert.Equal(t, "https://example.com/myproj.git", url)
		assert.Empty(t, f.fake.CallsWithPrefix("init-bare"))
		assert.Empty(t, f.fake.CallsWithPrefix("add-remote"))
		assert.NoDirExists(t, filepath.Join(f.root, "myproj.git"))
	})

	t.Run("custom remote name", func(t *testing.T) {
		t.Parallel()
		fake := testhelpers.NewFakeGit().WithRemote("origin", "https://example.com/myproj.git")
		f := newFixture(t, fake, "myproj")
		f.markWorkTree(t)

		result, err := f.binder.Init(ctx, "local", f.root)
		require.NoError(t, err)
		assert.Equal(t, binder.StateBound, result.State)
		assert.False(t, result.CreatedWorkTree)

		url, ok := f.fake.Remote("local")
		require.True(t, ok)
		assert.Equal(t, filepath.Join(f.root, "myproj.git"), url)
		url, _ = f.fake.Remote("origin")
		assert.Equal(t, "https://example.com/myproj.git", url)
	})

	t.Run("reuses an existing bare repository", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "myproj")
		f.markWorkTree(t)
		target := filepath.Join(f.root, "myproj.git")
		require.NoError(t, os.MkdirAll(target, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(target, "config"), nil, 0o644))

		result, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		assert.Equal(t, binder.StateBound, result.State)
		assert.False(t, result.CreatedBare)
		assert.Empty(t, f.fake.CallsWithPrefix("init-bare"))
	})

	t.Run("work tree override is trusted", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "cwd")
		override := filepath.Join(t.TempDir(), "elsewhere")
		f.locator.Override = override
		f.build()

		result, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		assert.Equal(t, override, result.WorkTree)
		assert.Equal(t, filepath.Join(f.root, "elsewhere.git"), result.Target)
		assert.False(t, result.CreatedWorkTree)

		assert.Empty(t, f.fake.CallsWithPrefix("init "))
		assert.Empty(t, f.fake.CallsWithPrefix("set-config"), "override without a repository gets no local config")
	})

	t.Run("configured root is not rewritten", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "myproj")
		f.fake.WithConfig(git.ScopeGlobal, config.StorageKey, f.root)
		f.markWorkTree(t)

		_, err := f.binder.Init(ctx, "origin", f.root)
		require.NoError(t, err)
		assert.Empty(t, f.fake.CallsWithPrefix("set-config"))
	})
}

func TestClone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, name := range []string{"foo", "foo.git"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, testhelpers.NewFakeGit(), "work")

			source, err := f.binder.Clone(ctx, name, f.root)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(f.root, "foo.git"), source)
			assert.Equal(t, []string{"clone " + source}, f.fake.CallsWithPrefix("clone"))
		})
	}

	t.Run("clone failure is returned unchanged", func(t *testing.T) {
		t.Parallel()
		fake := testhelpers.NewFakeGit()
		cloneErr := errors.New("fatal: repository does not exist")
		fake.CloneErr = cloneErr
		f := newFixture(t, fake, "work")

		_, err := f.binder.Clone(ctx, "missing", f.root)
		assert.Same(t, cloneErr, err)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("missing root is empty", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "work")

		entries, err := f.binder.List(filepath.Join(f.root, "nope"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("reports bare repositories sorted by name", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, testhelpers.NewFakeGit(), "work")
		testhelpers.NewBareRepo(t, filepath.Join(f.root, "zeta.git"))
		testhelpers.NewBareRepo(t, filepath.Join(f.root, "alpha.git"))
		require.NoError(t, os.MkdirAll(filepath.Join(f.root, "broken.git"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(f.root, "notes"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(f.root, "file.git"), nil, 0o644))

		entries, err := f.binder.List(f.root)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, "alpha", entries[0].Name)
		assert.True(t, entries[0].Valid())
		assert.Equal(t, filepath.Join(f.root, "alpha.git"), entries[0].Path)
		assert.NotEmpty(t, entries[0].Info.Head)

		assert.Equal(t, "broken", entries[1].Name)
		assert.False(t, entries[1].Valid())
		assert.Error(t, entries[1].Err)

		assert.Equal(t, "zeta", entries[2].Name)
		assert.True(t, entries[2].Valid())
	})
}
