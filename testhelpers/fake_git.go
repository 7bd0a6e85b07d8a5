package testhelpers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gitlocal.dev/gitlocal/internal/git"
)

// FakeGit is an in-memory git.Client. Configuration and remotes live in
// maps; repositories it creates get real marker files on disk so that the
// filesystem checks of the code under test see them.
type FakeGit struct {
	mu sync.Mutex

	config  map[git.Scope]map[string]string
	remotes map[string]string
	reject  map[git.Scope]bool

	// CloneErr is returned by CloneRepo when set.
	CloneErr error
	// GetConfigErr makes every GetConfig fail when set.
	GetConfigErr error

	calls []string
}

var _ git.Client = (*FakeGit)(nil)

// NewFakeGit creates an empty FakeGit.
func NewFakeGit() *FakeGit {
	return &FakeGit{
		config: map[git.Scope]map[string]string{
			git.ScopeLocal:  {},
			git.ScopeGlobal: {},
			git.ScopeSystem: {},
		},
		remotes: map[string]string{},
		reject:  map[git.Scope]bool{},
	}
}

// RejectWrites makes SetConfig fail at scope, like an unwritable /etc/gitconfig.
func (f *FakeGit) RejectWrites(scope git.Scope) *FakeGit {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reject[scope] = true
	return f
}

// WithConfig seeds a configuration value.
func (f *FakeGit) WithConfig(scope git.Scope, key, value string) *FakeGit {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.config[scope][key] = value
	return f
}

// WithRemote seeds an existing remote.
func (f *FakeGit) WithRemote(name, url string) *FakeGit {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remotes[name] = url
	return f
}

// ConfigValue returns the value stored at scope and whether it is set.
func (f *FakeGit) ConfigValue(scope git.Scope, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.config[scope][key]
	return v, ok
}

// Remote returns the URL of the named remote and whether it exists.
func (f *FakeGit) Remote(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.remotes[name]
	return v, ok
}

// Calls returns every operation performed, in order, e.g. "set-config system local.storage /srv".
func (f *FakeGit) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallsWithPrefix returns the recorded operations starting with prefix.
func (f *FakeGit) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func (f *FakeGit) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// InitRepo creates path/.git/config.
func (f *FakeGit) InitRepo(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("init %s", path)
	return writeMarker(filepath.Join(path, ".git"), "[core]\n\tbare = false\n")
}

// InitBareRepo creates path/config.
func (f *FakeGit) InitBareRepo(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("init-bare %s", path)
	return writeMarker(path, "[core]\n\tbare = true\n")
}

// CloneRepo records the clone and returns CloneErr.
func (f *FakeGit) CloneRepo(_ context.Context, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("clone %s", source)
	return f.CloneErr
}

// GetRemoteURL returns the remote's URL or an error when it does not exist.
func (f *FakeGit) GetRemoteURL(_ context.Context, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get-url %s", name)
	url, ok := f.remotes[name]
	if !ok {
		return "", fmt.Errorf("error: No such remote '%s'", name)
	}
	return url + "\n", nil
}

// AddRemote registers a remote; adding an existing one fails like git does.
func (f *FakeGit) AddRemote(_ context.Context, name, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("add-remote %s %s", name, url)
	if _, ok := f.remotes[name]; ok {
		return fmt.Errorf("error: remote %s already exists", name)
	}
	f.remotes[name] = url
	return nil
}

// GetConfig reads key at scope; ScopeEffective prefers local over global over system.
func (f *FakeGit) GetConfig(_ context.Context, key string, scope git.Scope) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get-config %s %s", scope, key)
	if f.GetConfigErr != nil {
		return "", f.GetConfigErr
	}

	scopes := []git.Scope{scope}
	if scope == git.ScopeEffective {
		scopes = []git.Scope{git.ScopeLocal, git.ScopeGlobal, git.ScopeSystem}
	}
	for _, s := range scopes {
		if v, ok := f.config[s][key]; ok {
			return v + "\n", nil
		}
	}
	return "", fmt.Errorf("exit status 1")
}

// SetConfig replaces the value of key at scope unless writes there are rejected.
func (f *FakeGit) SetConfig(_ context.Context, key, value string, scope git.Scope) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("set-config %s %s %s", scope, key, value)
	if scope == git.ScopeEffective {
		return fmt.Errorf("setting %s requires an explicit scope", key)
	}
	if f.reject[scope] {
		return fmt.Errorf("error: could not lock config file: Permission denied")
	}
	f.config[scope][key] = value
	return nil
}

func writeMarker(dir, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config"), []byte(content), 0o644)
}
