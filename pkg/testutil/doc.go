// Package testutil provides utilities for testing cfgkit components.
//
// Key components:
//   - TestEnvironment: anchors, a filesystem and a files.Files wired together
//   - FileTree: declarative directory and file setup
//   - FaultyFS: an FS wrapper that fails chosen operations on chosen paths
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; it runs on an afero memory filesystem
//   - Use EnvIsolated when the test needs real permissions or the OS
//   - Define fixture content inline in the test
package testutil
