package git_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlocal.dev/gitlocal/internal/git"
)

func TestLocator(t *testing.T) {
	t.Parallel()

	t.Run("current directory with a repository", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), nil, 0o644))

		l := git.Locator{Getwd: func() (string, error) { return dir, nil }}
		path, ok := l.Locate()
		assert.True(t, ok)
		assert.Equal(t, dir, path)
	})

	t.Run("a .git directory without config is not a work tree", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

		l := git.Locator{Getwd: func() (string, error) { return dir, nil }}
		_, ok := l.Locate()
		assert.False(t, ok)
	})

	t.Run("override wins over the current directory", func(t *testing.T) {
		t.Parallel()
		l := git.Locator{
			Override: "/work/tree",
			Getwd:    func() (string, error) { return "/elsewhere", nil },
		}
		candidate, err := l.Candidate()
		require.NoError(t, err)
		assert.Equal(t, "/work/tree", candidate)

		_, ok := l.Locate()
		assert.False(t, ok, "override without a repository is not located")
	})

	t.Run("getwd failure", func(t *testing.T) {
		t.Parallel()
		l := git.Locator{Getwd: func() (string, error) { return "", errors.New("gone") }}
		_, err := l.Candidate()
		require.Error(t, err)
		_, ok := l.Locate()
		assert.False(t, ok)
	})
}

func TestIsBareRepo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.False(t, git.IsBareRepo(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config"), nil, 0o644))
	assert.True(t, git.IsBareRepo(dir))
	assert.False(t, git.IsWorkTree(dir))
}
