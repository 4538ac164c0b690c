package filesystem

import (
	"io"
	"io/fs"
)

// FS is the set of filesystem operations the file toolkit performs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Open opens a file for streaming reads
	Open(name string) (io.ReadCloser, error)
	// Create creates or truncates a file for streaming writes
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Remove deletes a file, used to discard partial copies
	Remove(name string) error
}
