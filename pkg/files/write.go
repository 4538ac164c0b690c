package files

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/arthur-debert/cfgkit/pkg/logging"
	"github.com/arthur-debert/cfgkit/pkg/merge"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/maps"
)

// Mode selects how SetFileData treats existing content.
type Mode string

const (
	// ModeReplace overwrites the file
	ModeReplace Mode = "replace"
	// ModeMerge combines the new data with what is already on disk
	ModeMerge Mode = "merge"
)

// ParseMode converts a mode name into a Mode
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if m != ModeReplace && m != ModeMerge {
		return "", errors.Newf(errors.ErrFileWrite, "Unsupported write mode: %s", name).
			WithDetail("mode", name)
	}
	return m, nil
}

// WriteOptions controls SetFileData. ReplaceArrays and
// RemoveDuplicatesInArrays only apply to structured data in merge mode.
type WriteOptions struct {
	Mode                     Mode
	Format                   format.Format
	RemoveDuplicatesInArrays bool
	ReplaceArrays            bool
}

// ReplaceOptions returns options that overwrite the file with data in f
func ReplaceOptions(f format.Format) WriteOptions {
	return WriteOptions{Mode: ModeReplace, Format: f, RemoveDuplicatesInArrays: true}
}

// MergeOptions returns options that merge data into the file, concatenating
// arrays without duplicates
func MergeOptions(f format.Format) WriteOptions {
	return WriteOptions{Mode: ModeMerge, Format: f, RemoveDuplicatesInArrays: true}
}

func (o WriteOptions) mergeOptions() merge.Options {
	return merge.Options{
		ReplaceArrays:            o.ReplaceArrays,
		RemoveDuplicatesInArrays: o.RemoveDuplicatesInArrays,
	}
}

// SetFileData writes data to filePath. Strings are written as they are;
// mappings and structs are serialized per opts.Format. Missing parent
// directories are created once the content is ready, so rejected data
// leaves the filesystem untouched.
func (f *Files) SetFileData(filePath string, data interface{}, opts WriteOptions) error {
	resolved := f.resolve(filePath)
	logger := f.logger.With().
		Str("path", resolved).
		Str("mode", string(opts.Mode)).
		Str("format", opts.Format.String()).
		Logger()
	defer logging.LogOperationStart(logger, "set")()

	if opts.Mode != ModeReplace && opts.Mode != ModeMerge {
		return errors.Newf(errors.ErrFileWrite, "Unsupported write mode: %s", opts.Mode).
			WithDetail("path", resolved)
	}
	if !opts.Format.Valid() {
		return errors.Newf(errors.ErrFileParse, "Unsupported format: %s", opts.Format).
			WithDetail("path", resolved)
	}

	var content string
	var err error
	switch opts.Mode {
	case ModeReplace:
		content, err = f.replaceContent(filePath, resolved, data, opts)
	case ModeMerge:
		content, err = f.mergeContent(filePath, resolved, data, opts)
	}
	if err != nil {
		logger.Debug().Str("code", string(errors.GetErrorCode(err))).Msg("failed to prepare content")
		return err
	}

	if err := f.ensureDir(filepath.Dir(resolved)); err != nil {
		logger.Debug().Err(err).Msg("failed to create parent directory")
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", filePath).
			WithDetail("path", resolved)
	}

	content = strings.TrimSpace(content)
	if err := f.fs.WriteFile(resolved, []byte(content), f.fileMode); err != nil {
		logger.Debug().Err(err).Msg("failed to write file")
		return errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", filePath).
			WithDetail("path", resolved)
	}

	logger.Debug().Int("bytes", len(content)).Msg("wrote file")
	return nil
}

func (f *Files) replaceContent(filePath, resolved string, data interface{}, opts WriteOptions) (string, error) {
	if text, ok := data.(string); ok {
		return text, nil
	}

	mapping, err := toMapping(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", filePath).
			WithDetail("path", resolved)
	}
	return encode(filePath, resolved, opts.Format, mapping)
}

func (f *Files) mergeContent(filePath, resolved string, data interface{}, opts WriteOptions) (string, error) {
	existing, err := f.readExisting(filePath, resolved)
	if err != nil {
		return "", err
	}

	if text, ok := data.(string); ok {
		return existing + "\n" + text, nil
	}

	incoming, err := toMapping(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "Failed to write file %s", filePath).
			WithDetail("path", resolved)
	}

	// JSON is read through the YAML parser; TOML needs its own
	reader := format.YAML
	if opts.Format == format.TOML {
		reader = format.TOML
	}
	original, err := format.Decode(reader, []byte(existing))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileParse, "Failed to parse existing content of %s", filePath).
			WithDetail("path", resolved).
			WithDetail("format", reader.String())
	}

	merged := merge.Merge(original, incoming, opts.mergeOptions())
	return encode(filePath, resolved, opts.Format, merged)
}

// readExisting returns the current content of the file, or "" when it does
// not exist yet
func (f *Files) readExisting(filePath, resolved string) (string, error) {
	raw, err := f.fs.ReadFile(resolved)
	if err != nil {
		if errors.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "Failed to read file %s", filePath).
			WithDetail("path", resolved)
	}
	return string(raw), nil
}

func encode(filePath, resolved string, f format.Format, data map[string]interface{}) (string, error) {
	out, err := format.Encode(f, data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "Failed to serialize %s as %s", filePath, f).
			WithDetail("path", resolved).
			WithDetail("format", f.String())
	}
	return string(out), nil
}

// toMapping converts data into a string-keyed mapping. Structs are decoded
// field by field honoring `mapstructure` tags.
func toMapping(data interface{}) (map[string]interface{}, error) {
	switch v := data.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return format.Normalize(maps.Copy(v)).(map[string]interface{}), nil
	case map[interface{}]interface{}:
		return format.Normalize(v).(map[string]interface{}), nil
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, errors.Newf(errors.ErrFileWrite, "Cannot write %T as structured data", data)
	}

	out := map[string]interface{}{}
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, err
	}
	return format.Normalize(out).(map[string]interface{}), nil
}
