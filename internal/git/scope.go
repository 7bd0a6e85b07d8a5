package git

import "fmt"

// Scope is the breadth of a git configuration setting.
type Scope string

const (
	// ScopeEffective reads the most specific value git knows about. It is
	// only meaningful for reads.
	ScopeEffective Scope = ""
	// ScopeLocal is the repository's own .git/config.
	ScopeLocal Scope = "local"
	// ScopeGlobal is the user's configuration.
	ScopeGlobal Scope = "global"
	// ScopeSystem is the host-wide configuration.
	ScopeSystem Scope = "system"
)

// Scopes lists the writable scopes from broadest to narrowest.
var Scopes = []Scope{ScopeSystem, ScopeGlobal, ScopeLocal}

// String returns the scope name, "effective" for ScopeEffective.
func (s Scope) String() string {
	if s == ScopeEffective {
		return "effective"
	}
	return string(s)
}

// Flag returns the git config flag selecting this scope, or "" for ScopeEffective.
func (s Scope) Flag() string {
	if s == ScopeEffective {
		return ""
	}
	return "--" + string(s)
}

// ParseScope converts a scope name into a Scope.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "effective":
		return ScopeEffective, nil
	case "local":
		return ScopeLocal, nil
	case "global":
		return ScopeGlobal, nil
	case "system":
		return ScopeSystem, nil
	default:
		return ScopeEffective, fmt.Errorf("unknown configuration scope %q", name)
	}
}
