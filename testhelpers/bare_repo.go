package testhelpers

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

// NewBareRepo creates an empty bare repository at path without shelling out
// to git.
func NewBareRepo(t *testing.T, path string) *gogit.Repository {
	t.Helper()
	repo, err := gogit.PlainInit(path, true)
	must(t, err)
	return repo
}
