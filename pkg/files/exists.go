package files

import (
	"io/fs"

	"github.com/arthur-debert/cfgkit/pkg/errors"
)

// ExistsAsDirectory reports whether path exists and is a directory
func (f *Files) ExistsAsDirectory(path string) bool {
	info, err := f.fs.Stat(f.resolve(path))
	return err == nil && info.IsDir()
}

// ExistsAsFile reports whether path exists and is not a directory
func (f *Files) ExistsAsFile(path string) bool {
	info, err := f.fs.Stat(f.resolve(path))
	return err == nil && !info.IsDir()
}

func (f *Files) exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil
}

// checkSource validates that path names an existing regular file. display is
// the path as the caller wrote it.
func (f *Files) checkSource(path, display string) (fs.FileInfo, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		if errors.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "File not found: %s", display).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "Failed to read file %s", display).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileIsDirectory, "File is a directory: %s", display).
			WithDetail("path", path)
	}
	return info, nil
}
