// Package runtime provides the execution context for gitlocal commands.
//
// It encapsulates shared dependencies and configuration needed by commands,
// such as the git client, logger, debug mode and the storage root in effect.
package runtime
