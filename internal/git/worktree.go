package git

import (
	"os"
	"path/filepath"
)

// WorkTreeEnv names the variable that overrides the work tree location.
const WorkTreeEnv = "GIT_WORK_TREE"

// Locator finds the work tree gitlocal operates on.
type Locator struct {
	// Override is the GIT_WORK_TREE value, empty when unset.
	Override string
	// Getwd returns the current directory; os.Getwd when nil.
	Getwd func() (string, error)
}

// Candidate returns the override when present, otherwise the current directory.
func (l Locator) Candidate() (string, error) {
	if l.Override != "" {
		return l.Override, nil
	}
	getwd := l.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	return getwd()
}

// Locate returns the work tree when the candidate directory holds a
// repository. ok is false when there is no usable work tree.
func (l Locator) Locate() (path string, ok bool) {
	candidate, err := l.Candidate()
	if err != nil || !IsWorkTree(candidate) {
		return "", false
	}
	return candidate, true
}

// IsWorkTree reports whether dir carries a .git/config marker.
func IsWorkTree(dir string) bool {
	return fileExists(filepath.Join(dir, ".git", "config"))
}

// IsBareRepo reports whether dir carries a bare repository's config marker.
func IsBareRepo(dir string) bool {
	return fileExists(filepath.Join(dir, "config"))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
