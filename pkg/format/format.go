package format

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cfgkit/pkg/errors"
)

// Format tags a file with the strategy used to parse and serialize it.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
	TOML Format = "toml"
)

// All lists the supported formats in display order
var All = []Format{JSON, YAML, Text, TOML}

// Valid reports whether f is a supported format
func (f Format) Valid() bool {
	switch f {
	case JSON, YAML, Text, TOML:
		return true
	}
	return false
}

// Structured reports whether content in this format is a mapping
func (f Format) Structured() bool {
	return f == JSON || f == YAML || f == TOML
}

func (f Format) String() string {
	return string(f)
}

// Parse converts a format name into a Format.
func Parse(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !f.Valid() {
		return "", errors.Newf(errors.ErrFileParse, "Unsupported format: %s", name).
			WithDetail("format", name)
	}
	return f, nil
}

// FromPath guesses the format of a file from its extension, defaulting to
// Text.
func FromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Text
	}
}
