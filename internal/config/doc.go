// Package config manages gitlocal configuration.
//
// It handles:
//   - The storage root, kept in git's own configuration under local.storage
//     at the local, global or system scope
//   - The reconcile cascade behind "gitlocal config <gitroot>"
//   - gitlocal's read-only settings (defaults, settings file, environment)
package config
