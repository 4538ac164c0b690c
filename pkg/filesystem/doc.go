// Package filesystem provides the filesystem abstraction used by cfgkit.
//
// FS is satisfied by an afero-backed implementation which can sit on the
// real OS filesystem (NewOS) or on an in-memory one (NewMemory) for tests.
package filesystem
