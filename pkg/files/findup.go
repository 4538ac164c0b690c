package files

import (
	"path/filepath"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/paths"
)

// FindUp looks for fileName from the working directory up to the home
// directory.
func (f *Files) FindUp(fileName string) (string, bool, error) {
	return f.FindUpFrom(fileName, "", "")
}

// FindUpFrom looks for fileName in startDir and each of its parents, up to
// and including stopDir. Empty directories default to the working and home
// anchors. The walk also ends at the filesystem root, so a stopDir that is
// not an ancestor of startDir yields no match.
//
// It returns the path of the first match; found is false when there is none.
func (f *Files) FindUpFrom(fileName, startDir, stopDir string) (string, bool, error) {
	if startDir == "" {
		startDir = f.anchors.Cwd
	}
	if stopDir == "" {
		stopDir = f.anchors.Home
	}
	dir := f.resolve(startDir)
	stop := f.resolve(stopDir)

	for {
		if info, err := f.fs.Stat(dir); err == nil && !info.IsDir() {
			return "", false, errors.Newf(errors.ErrInvalidFindUpPath, "Invalid find up path: %s is not a directory", dir).
				WithDetail("path", dir)
		}

		candidate := filepath.Join(dir, fileName)
		if f.exists(candidate) {
			f.logger.Debug().Str("name", fileName).Str("path", candidate).Msg("found file walking up")
			return candidate, true, nil
		}

		if dir == stop || paths.IsRoot(dir) {
			f.logger.Debug().Str("name", fileName).Str("stop", dir).Msg("file not found walking up")
			return "", false, nil
		}
		dir = filepath.Dir(dir)
	}
}
