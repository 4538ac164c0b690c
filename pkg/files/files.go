package files

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/cfgkit/pkg/filesystem"
	"github.com/arthur-debert/cfgkit/pkg/logging"
	"github.com/arthur-debert/cfgkit/pkg/paths"
	"github.com/arthur-debert/cfgkit/pkg/template"
	"github.com/rs/zerolog"
)

const (
	// DefaultFileMode is the permission of files created by cfgkit
	DefaultFileMode fs.FileMode = 0644

	// DefaultDirMode is the permission of directories created by cfgkit
	DefaultDirMode fs.FileMode = 0755
)

// Files performs file operations against a filesystem and a pair of anchors.
type Files struct {
	fs       filesystem.FS
	anchors  paths.Anchors
	engine   template.Engine
	fileMode fs.FileMode
	dirMode  fs.FileMode
	logger   *zerolog.Logger
}

// Option configures a Files
type Option func(*Files)

// WithFS sets the filesystem operations run against
func WithFS(fsys filesystem.FS) Option {
	return func(f *Files) { f.fs = fsys }
}

// WithAnchors sets the working and home directories
func WithAnchors(anchors paths.Anchors) Option {
	return func(f *Files) { f.anchors = anchors }
}

// WithEngine sets the template engine used by RenderFile
func WithEngine(engine template.Engine) Option {
	return func(f *Files) { f.engine = engine }
}

// WithFileMode sets the permission of files written by SetFileData. Copies
// keep the permission of their source.
func WithFileMode(mode fs.FileMode) Option {
	return func(f *Files) { f.fileMode = mode }
}

// WithDirMode sets the permission of created directories
func WithDirMode(mode fs.FileMode) Option {
	return func(f *Files) { f.dirMode = mode }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Files) { f.logger = &logger }
}

// New creates a Files on the OS filesystem, anchored at the process working
// directory and HOME, rendering with the default template engine.
func New(opts ...Option) *Files {
	f := &Files{
		fileMode: DefaultFileMode,
		dirMode:  DefaultDirMode,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.fs == nil {
		f.fs = filesystem.NewOS()
	}
	if f.anchors == (paths.Anchors{}) {
		f.anchors = paths.MustDetect()
	}
	if f.engine == nil {
		f.engine = template.Default()
	}
	if f.logger == nil {
		logger := logging.GetLogger("files")
		f.logger = &logger
	}
	return f
}

// Anchors returns the working and home directories of f
func (f *Files) Anchors() paths.Anchors {
	return f.anchors
}

// Engine returns the template engine of f
func (f *Files) Engine() template.Engine {
	return f.engine
}

// MakePath joins path segments
func (f *Files) MakePath(segments ...string) string {
	return paths.MakePath(segments...)
}

// MakePathFromCwd joins segments onto the working directory anchor
func (f *Files) MakePathFromCwd(segments ...string) string {
	return f.anchors.MakePathFromCwd(segments...)
}

// resolve makes path absolute against the working directory anchor
func (f *Files) resolve(path string) string {
	return f.anchors.Abs(path)
}

// ensureDir creates dir and its parents. The current directory is never
// created.
func (f *Files) ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return f.fs.MkdirAll(filepath.Clean(dir), f.dirMode)
}
