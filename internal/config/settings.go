package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gitlocal.dev/gitlocal/internal/git"
)

// DefaultRoot is the storage root used when nothing is configured.
const DefaultRoot = "/gitroot"

// debugTokens are the DEBUG/GITLOCAL_DEBUG entries that turn debug mode on.
var debugTokens = map[string]bool{
	"1":        true,
	"true":     true,
	"yes":      true,
	"on":       true,
	"all":      true,
	"gitlocal": true,
}

// Settings are gitlocal's own read-only inputs. The storage root itself
// lives in git configuration and is handled by Resolver.
type Settings struct {
	// DefaultRoot is used for --gitroot when local.storage is unset.
	DefaultRoot string `koanf:"default_root"`
	// Remote is the default remote name for init.
	Remote string `koanf:"remote"`
	// Debug holds the raw comma-separated debug token list.
	Debug string `koanf:"debug"`
	// LogFile enables the rotated file log when set.
	LogFile string `koanf:"log_file"`
	// WorkTree is the GIT_WORK_TREE override.
	WorkTree string `koanf:"work_tree"`
}

// LoadOptions configures how settings are loaded
type LoadOptions struct {
	// SettingsPath overrides the settings file (default: UserSettingsPath()).
	SettingsPath string
}

// LoadSettings loads settings with priority: environment > settings file > defaults.
func LoadSettings(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	k.Set("default_root", DefaultRoot)
	k.Set("remote", "origin")

	path := opts.SettingsPath
	if path == "" {
		path, _ = UserSettingsPath()
	}
	if path != "" && fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load settings %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("DEBUG", ".", exactEnv("DEBUG", "debug")), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}
	if err := k.Load(env.Provider(git.WorkTreeEnv, ".", exactEnv(git.WorkTreeEnv, "work_tree")), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}
	if err := k.Load(env.Provider("GITLOCAL_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.DefaultRoot == "" {
		s.DefaultRoot = DefaultRoot
	}
	if s.Remote == "" {
		s.Remote = "origin"
	}
	return &s, nil
}

// DebugEnabled reports whether the debug token list turns debug mode on.
func (s *Settings) DebugEnabled() bool {
	return IsDebugValue(s.Debug)
}

// IsDebugValue reports whether a comma-separated token list contains a
// recognized truthy token. Matching is case-insensitive.
func IsDebugValue(value string) bool {
	for _, token := range strings.Split(value, ",") {
		if debugTokens[strings.ToLower(strings.TrimSpace(token))] {
			return true
		}
	}
	return false
}

// UserSettingsPath returns ~/.config/gitlocal/config.yml (XDG aware).
func UserSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gitlocal", "config.yml"), nil
}

// envTransform converts environment variable names to settings keys
// Example: GITLOCAL_DEFAULT_ROOT -> default_root
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "GITLOCAL_"))
}

// exactEnv maps exactly one variable name to key and ignores the rest of
// the prefix matches.
func exactEnv(name, key string) func(string) string {
	return func(s string) string {
		if s != name {
			return ""
		}
		return key
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
