package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"gitlocal.dev/gitlocal/internal/git"
)

// Scene represents a test scene: a work directory and an empty storage root,
// both inside a temporary directory.
type Scene struct {
	Dir  string
	Root string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene whose work directory is called name. The
// directory is not a repository until setup (or the code under test) makes
// it one. Git configuration is isolated, so the scene cannot run in parallel.
func NewScene(t *testing.T, name string, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)
	IsolateGitConfig(t)

	base := t.TempDir()
	scene := &Scene{
		Dir:  filepath.Join(base, name),
		Root: filepath.Join(base, "gitroot"),
	}
	must(t, os.MkdirAll(scene.Dir, 0o755))
	must(t, os.MkdirAll(scene.Root, 0o755))

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// InitRepo makes the scene's work directory a repository.
func (s *Scene) InitRepo() error {
	repo, err := NewGitRepo(s.Dir)
	if err != nil {
		return err
	}
	s.Repo = repo
	return nil
}

// Client returns a git client running in the scene's work directory.
func (s *Scene) Client() *git.CommandClient {
	return git.NewCommandClient(s.Dir)
}

// Getwd reports the scene's work directory as the current directory.
func (s *Scene) Getwd() (string, error) {
	return s.Dir, nil
}

// InitRepoSetup is a setup function that turns the work directory into a repository.
func InitRepoSetup(scene *Scene) error {
	return scene.InitRepo()
}
