package files

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/logging"
)

// CopySpec names a file to copy. An empty DestinationName keeps the base
// name of the source.
type CopySpec struct {
	SourcePath      string
	DestinationName string
}

func (s CopySpec) destinationName() string {
	if s.DestinationName != "" {
		return s.DestinationName
	}
	return filepath.Base(s.SourcePath)
}

// CopyFiles copies each spec into destinationDir, which defaults to the
// working directory when empty. Specs are processed in order and the first
// failure aborts the call; files already copied stay in place.
func (f *Files) CopyFiles(specs []CopySpec, destinationDir string) error {
	if destinationDir == "" {
		destinationDir = f.anchors.Cwd
	}
	destDir := f.resolve(destinationDir)
	defer logging.LogOperationStart(*f.logger, "copy")()

	for _, spec := range specs {
		if err := f.copyFile(spec, destDir); err != nil {
			f.logger.Debug().
				Str("source", spec.SourcePath).
				Str("code", string(errors.GetErrorCode(err))).
				Msg("copy aborted")
			return err
		}
	}
	return nil
}

func (f *Files) copyFile(spec CopySpec, destDir string) error {
	source := f.resolve(spec.SourcePath)
	target := filepath.Join(destDir, spec.destinationName())

	info, err := f.checkSource(source, spec.SourcePath)
	if err != nil {
		return err
	}
	if f.sameFile(source, target, info) {
		f.logger.Debug().Str("path", source).Msg("source is its own target, nothing to copy")
		return nil
	}

	if err := f.ensureDir(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to create directory %s", filepath.Dir(target)).
			WithDetail("path", target)
	}

	in, err := f.fs.Open(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "Failed to read file %s", spec.SourcePath).
			WithDetail("path", source)
	}
	defer func() { _ = in.Close() }()

	out, err := f.fs.Create(target, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", target).
			WithDetail("path", target)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		_ = f.fs.Remove(target)
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to copy %s to %s", spec.SourcePath, target).
			WithDetail("path", target)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", target).
			WithDetail("path", target)
	}

	f.logger.Debug().
		Str("source", source).
		Str("target", target).
		Int64("bytes", n).
		Msg("copied file")
	return nil
}

// sameFile reports whether target already names the source file, either by
// path or, on disk, through a link.
func (f *Files) sameFile(source, target string, sourceInfo os.FileInfo) bool {
	if source == target {
		return true
	}
	targetInfo, err := f.fs.Stat(target)
	if err != nil {
		return false
	}
	return os.SameFile(sourceInfo, targetInfo)
}
