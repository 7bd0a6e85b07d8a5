// Package git provides the low-level Git operations gitlocal relies on.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository creation (init, init --bare, clone)
//   - Remote queries and registration (remote get-url, remote add)
//   - Scoped configuration reads and writes (config --local/--global/--system)
//   - Work-tree and bare-repository marker checks
//
// This package should be the only place where direct git commands are executed.
package git
