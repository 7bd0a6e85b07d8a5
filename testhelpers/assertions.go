package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlocal.dev/gitlocal/internal/git"
)

// ExpectRemote asserts that the repository's remote name points at url.
func ExpectRemote(t *testing.T, repo *GitRepo, name, url string) {
	t.Helper()

	actual, err := repo.RemoteURL(name)
	require.NoError(t, err, "remote %s should exist", name)
	require.Equal(t, url, actual, "remote %s URL mismatch", name)
}

// ExpectStorage asserts the storage root recorded at scope ("" for the
// effective value) as seen from the repository.
func ExpectStorage(t *testing.T, repo *GitRepo, scope git.Scope, expected string) {
	t.Helper()

	args := []string{"config"}
	if flag := scope.Flag(); flag != "" {
		args = append(args, flag)
	}
	args = append(args, "--get", "local.storage")

	actual, err := repo.RunGitCommandAndGetOutput(args...)
	require.NoError(t, err, "local.storage should be set at %s scope", scope)
	require.Equal(t, expected, actual)
}

// ExpectBareRepo asserts that path holds a bare repository.
func ExpectBareRepo(t *testing.T, path string) {
	t.Helper()

	info, err := git.InspectBare(path)
	require.NoError(t, err)
	require.True(t, info.Bare, "%s should be a bare repository", path)
}
