package files

import (
	"sync"

	"github.com/arthur-debert/cfgkit/pkg/format"
)

var (
	defaultMu    sync.Mutex
	defaultFiles *Files
)

// Default returns the instance used by the package-level functions,
// creating it on first use.
func Default() *Files {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultFiles == nil {
		defaultFiles = New()
	}
	return defaultFiles
}

// SetDefault replaces the instance used by the package-level functions.
// Passing nil resets it.
func SetDefault(f *Files) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFiles = f
}

func MakePath(segments ...string) string {
	return Default().MakePath(segments...)
}

func MakePathFromCwd(segments ...string) string {
	return Default().MakePathFromCwd(segments...)
}

func GetContent(filePath string, fileFormat format.Format) (Content, error) {
	return Default().GetContent(filePath, fileFormat)
}

func SetFileData(filePath string, data interface{}, opts WriteOptions) error {
	return Default().SetFileData(filePath, data, opts)
}

func CopyFiles(specs []CopySpec, destinationDir string) error {
	return Default().CopyFiles(specs, destinationDir)
}

func RenderFile(path string, values map[string]interface{}) (string, error) {
	return Default().RenderFile(path, values)
}

func FindUp(fileName string) (string, bool, error) {
	return Default().FindUp(fileName)
}

func FindUpFrom(fileName, startDir, stopDir string) (string, bool, error) {
	return Default().FindUpFrom(fileName, startDir, stopDir)
}

func ExistsAsDirectory(path string) bool {
	return Default().ExistsAsDirectory(path)
}

func ExistsAsFile(path string) bool {
	return Default().ExistsAsFile(path)
}
