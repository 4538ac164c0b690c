// Package paths provides path helpers and the process anchors used by cfgkit.
//
// Two directories anchor relative path resolution and upward searches:
//
//   - Cwd: the current working directory, used by MakePathFromCwd and as the
//     default start of FindUp and the default CopyFiles destination
//   - Home: the user's home directory, the default stop of FindUp
//
// They are read once with Detect and passed around as an Anchors value, so
// tests can inject deterministic fake directories instead of relying on the
// real process state.
//
// # Environment Variables
//
//   - HOME: home anchor (falls back to the literal "$HOME" when unset)
//   - CFGKIT_STATE_DIR: overrides the XDG state directory used for the log file
package paths
