package files

import (
	"github.com/arthur-debert/cfgkit/pkg/errors"
	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/go-viper/mapstructure/v2"
)

// Content is the parsed content of a file. Text content carries a string,
// structured content a mapping; the other accessor returns the zero value.
type Content struct {
	Format format.Format
	text   string
	data   map[string]interface{}
}

// NewTextContent wraps a string as text content
func NewTextContent(text string) Content {
	return Content{Format: format.Text, text: text}
}

// NewDataContent wraps a mapping as structured content of format f
func NewDataContent(f format.Format, data map[string]interface{}) Content {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Content{Format: f, data: data}
}

// IsText reports whether the content is a raw string
func (c Content) IsText() bool {
	return c.Format == format.Text
}

// Text returns the raw string of text content
func (c Content) Text() string {
	return c.text
}

// Data returns the mapping of structured content
func (c Content) Data() map[string]interface{} {
	return c.data
}

// Value returns the string or the mapping, whichever the content holds
func (c Content) Value() interface{} {
	if c.IsText() {
		return c.text
	}
	return c.data
}

// GetContent reads filePath and parses it as f.
func (f *Files) GetContent(filePath string, fileFormat format.Format) (Content, error) {
	resolved := f.resolve(filePath)
	f.logger.Debug().Str("path", resolved).Str("format", fileFormat.String()).Msg("reading file content")

	raw, err := f.fs.ReadFile(resolved)
	if err != nil {
		return Content{}, errors.Wrapf(err, errors.ErrFileRead, "Failed to read file %s", filePath).
			WithDetail("path", resolved)
	}

	switch fileFormat {
	case format.Text:
		return NewTextContent(string(raw)), nil
	case format.JSON, format.YAML, format.TOML:
		data, err := format.Decode(fileFormat, raw)
		if err != nil {
			return Content{}, errors.Wrapf(err, errors.ErrFileParse, "Failed to parse %s file %s", fileFormat, filePath).
				WithDetail("path", resolved).
				WithDetail("format", fileFormat.String())
		}
		return NewDataContent(fileFormat, data), nil
	default:
		return Content{}, errors.Newf(errors.ErrFileParse, "Unsupported format: %s", fileFormat).
			WithDetail("path", resolved).
			WithDetail("format", fileFormat.String())
	}
}

// GetText reads filePath as text
func (f *Files) GetText(filePath string) (string, error) {
	c, err := f.GetContent(filePath, format.Text)
	if err != nil {
		return "", err
	}
	return c.Text(), nil
}

// GetData reads filePath as structured content of format f
func (f *Files) GetData(filePath string, fileFormat format.Format) (map[string]interface{}, error) {
	if !fileFormat.Structured() {
		return nil, errors.Newf(errors.ErrFileParse, "Format %s does not hold structured data", fileFormat).
			WithDetail("path", filePath)
	}
	c, err := f.GetContent(filePath, fileFormat)
	if err != nil {
		return nil, err
	}
	return c.Data(), nil
}

// DecodeContent reads structured content from filePath and decodes it into
// a T. Fields are matched with `mapstructure` tags, weakly typed.
func DecodeContent[T any](f *Files, filePath string, fileFormat format.Format) (T, error) {
	var out T

	data, err := f.GetData(filePath, fileFormat)
	if err != nil {
		return out, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(data); err != nil {
		return out, errors.Wrapf(err, errors.ErrFileParse, "Failed to decode %s into %T", filePath, out).
			WithDetail("path", f.resolve(filePath))
	}
	return out, nil
}
