package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitlocalerrors "gitlocal.dev/gitlocal/internal/errors"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/testhelpers"
)

const storageKey = "local.storage"

func TestCommandClientConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("local round trip", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)
		client := scene.Client()

		require.NoError(t, client.SetConfig(ctx, storageKey, "/srv/git", git.ScopeLocal))
		value, err := client.GetConfig(ctx, storageKey, git.ScopeLocal)
		require.NoError(t, err)
		assert.Equal(t, "/srv/git", value)

		value, err = client.GetConfig(ctx, storageKey, git.ScopeEffective)
		require.NoError(t, err)
		assert.Equal(t, "/srv/git", value)
	})

	t.Run("global write lands in the isolated file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)
		client := scene.Client()
		globalPath := os.Getenv("GIT_CONFIG_GLOBAL")

		require.NoError(t, client.SetConfig(ctx, storageKey, "/old", git.ScopeGlobal))
		require.NoError(t, client.SetConfig(ctx, storageKey, "/srv/git", git.ScopeGlobal))

		value, err := client.GetConfig(ctx, storageKey, git.ScopeGlobal)
		require.NoError(t, err)
		assert.Equal(t, "/srv/git", value)

		content, err := os.ReadFile(globalPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "storage = /srv/git")
		assert.NotContains(t, string(content), "/old")
	})

	t.Run("local value shadows global", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)
		client := scene.Client()

		require.NoError(t, client.SetConfig(ctx, storageKey, "/global", git.ScopeGlobal))
		require.NoError(t, client.SetConfig(ctx, storageKey, "/local", git.ScopeLocal))

		value, err := client.GetConfig(ctx, storageKey, git.ScopeEffective)
		require.NoError(t, err)
		assert.Equal(t, "/local", value)
	})

	t.Run("unset key fails with git's status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)

		_, err := scene.Client().GetConfig(ctx, storageKey, git.ScopeEffective)
		require.Error(t, err)
		assert.ErrorIs(t, err, gitlocalerrors.ErrGitCommand)
		assert.Equal(t, 1, gitlocalerrors.ExitCode(err))
	})

	t.Run("effective scope cannot be written", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)

		err := scene.Client().SetConfig(ctx, storageKey, "/srv/git", git.ScopeEffective)
		assert.Error(t, err)
	})
}

func TestCommandClientRepositories(t *testing.T) {
	ctx := context.Background()

	t.Run("init creates a work tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", nil)
		require.False(t, git.IsWorkTree(scene.Dir))

		require.NoError(t, scene.Client().InitRepo(ctx, scene.Dir))
		assert.True(t, git.IsWorkTree(scene.Dir))
	})

	t.Run("init --bare creates an inspectable bare repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", nil)
		target := filepath.Join(scene.Root, "myproj.git")

		require.NoError(t, scene.Client().InitBareRepo(ctx, target))
		assert.True(t, git.IsBareRepo(target))

		info, err := git.InspectBare(target)
		require.NoError(t, err)
		assert.True(t, info.Bare)
		assert.Zero(t, info.Remotes)
	})

	t.Run("remotes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "myproj", testhelpers.InitRepoSetup)
		client := scene.Client()
		target := filepath.Join(scene.Root, "myproj.git")

		_, err := client.GetRemoteURL(ctx, "origin")
		require.Error(t, err)

		require.NoError(t, client.AddRemote(ctx, "origin", target))
		url, err := client.GetRemoteURL(ctx, "origin")
		require.NoError(t, err)
		assert.Equal(t, target, url)

		err = client.AddRemote(ctx, "origin", "/elsewhere.git")
		require.Error(t, err)
		var gitErr *gitlocalerrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		assert.Contains(t, gitErr.Message(), "already exists")

		url, err = scene.Repo.RemoteURL("origin")
		require.NoError(t, err)
		assert.Equal(t, target, url)
	})

	t.Run("clone of a missing repository keeps git's status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "work", nil)

		err := scene.Client().CloneRepo(ctx, filepath.Join(scene.Root, "missing.git"))
		require.Error(t, err)
		assert.Equal(t, 128, gitlocalerrors.ExitCode(err))
	})
}

func TestCommandRunnerCancel(t *testing.T) {
	testhelpers.RequireGit(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := git.NewCommandRunner(t.TempDir()).Run(ctx, "version")
	assert.Error(t, err)
}
