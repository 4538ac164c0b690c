package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/cfgkit/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateDir overrides the XDG state directory for cfgkit
	EnvStateDir = "CFGKIT_STATE_DIR"
)

const (
	// HomeFallback is used as the home anchor when HOME is not set
	HomeFallback = "$HOME"

	// AppDirName is the directory name for cfgkit-specific files
	AppDirName = "cfgkit"

	// LogFileName is the name of the log file
	LogFileName = "cfgkit.log"
)

// Anchors holds the directories relative paths and upward searches are
// resolved against.
type Anchors struct {
	Cwd  string
	Home string
}

// Detect reads the anchors from the process state.
func Detect() (Anchors, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Anchors{}, errors.Wrap(err, errors.ErrFileRead, "failed to get current directory")
	}
	return Anchors{Cwd: cwd, Home: homeFromEnv()}, nil
}

// MustDetect is like Detect but falls back to "." when the working
// directory cannot be read.
func MustDetect() Anchors {
	a, err := Detect()
	if err != nil {
		return Anchors{Cwd: ".", Home: homeFromEnv()}
	}
	return a
}

func homeFromEnv() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return HomeFallback
}

// MakePath joins path segments using the platform separator.
func MakePath(segments ...string) string {
	return filepath.Join(segments...)
}

// MakePathFromCwd joins segments onto the working directory anchor.
func (a Anchors) MakePathFromCwd(segments ...string) string {
	return MakePath(append([]string{a.Cwd}, segments...)...)
}

// Abs returns a cleaned absolute form of path, resolving relative paths
// against the working directory anchor instead of the process cwd.
func (a Anchors) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(a.Cwd, path))
}

// ExpandHome expands a leading ~ to the home anchor.
func (a Anchors) ExpandHome(path string) string {
	if path == "~" {
		return a.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(a.Home, path[2:])
	}
	return path
}

// IsRoot reports whether dir is a filesystem root, the point where the
// parent of a directory is the directory itself.
func IsRoot(dir string) bool {
	clean := filepath.Clean(dir)
	return filepath.Dir(clean) == clean
}

// StateDir returns the directory for cfgkit state such as logs.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
