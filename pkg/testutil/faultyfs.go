package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/cfgkit/pkg/filesystem"
)

// Op names an FS operation for fault injection
type Op string

const (
	OpStat     Op = "stat"
	OpRead     Op = "read"
	OpWrite    Op = "write"
	OpMkdir    Op = "mkdir"
	OpOpen     Op = "open"
	OpCreate   Op = "create"
	OpRemove   Op = "remove"
	OpAnything Op = "*"
)

// FaultyFS wraps an FS and returns injected errors for chosen operations
// on chosen paths.
type FaultyFS struct {
	filesystem.FS

	mu     sync.RWMutex
	faults map[Op]map[string]error
}

// NewFaultyFS wraps fsys
func NewFaultyFS(fsys filesystem.FS) *FaultyFS {
	return &FaultyFS{FS: fsys, faults: make(map[Op]map[string]error)}
}

// WithError configures the filesystem to return err when op is run on path
func (f *FaultyFS) WithError(op Op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) fault(op Op, path string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	path = filepath.Clean(path)
	if err, ok := f.faults[op][path]; ok {
		return err
	}
	return f.faults[OpAnything][path]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.fault(OpRead, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.fault(OpWrite, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdir, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

// Open fails with an OpOpen fault. An OpRead fault lets the open succeed
// and fails the first read instead.
func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.fault(OpOpen, name); err != nil {
		return nil, err
	}
	rc, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	if readErr := f.fault(OpRead, name); readErr != nil {
		return failingReader{ReadCloser: rc, err: readErr}, nil
	}
	return rc, nil
}

type failingReader struct {
	io.ReadCloser
	err error
}

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.fault(OpCreate, name); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}
