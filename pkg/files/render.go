package files

import (
	"path/filepath"

	"github.com/arthur-debert/cfgkit/pkg/errors"
)

// IsTemplate reports whether path carries the extension of the template
// engine. The comparison is case-sensitive.
func (f *Files) IsTemplate(path string) bool {
	return filepath.Ext(path) == f.engine.Extension()
}

// RenderFile renders the template at path against values. Compile and
// render failures are returned as the engine reported them.
func (f *Files) RenderFile(path string, values map[string]interface{}) (string, error) {
	resolved := f.resolve(path)

	if _, err := f.checkSource(resolved, path); err != nil {
		return "", err
	}
	if !f.IsTemplate(resolved) {
		return "", errors.Newf(errors.ErrFileIsNotATemplate, "File is not a template: %s", path).
			WithDetail("path", resolved).
			WithDetail("extension", f.engine.Extension())
	}

	source, err := f.fs.ReadFile(resolved)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "Failed to read file %s", path).
			WithDetail("path", resolved)
	}

	tpl, err := f.engine.Compile(string(source))
	if err != nil {
		f.logger.Debug().Err(err).Str("path", resolved).Str("engine", f.engine.Name()).Msg("template failed to compile")
		return "", err
	}

	if values == nil {
		values = map[string]interface{}{}
	}
	out, err := tpl.Render(values)
	if err != nil {
		f.logger.Debug().Err(err).Str("path", resolved).Str("engine", f.engine.Name()).Msg("template failed to render")
		return "", err
	}

	f.logger.Debug().Str("path", resolved).Str("engine", f.engine.Name()).Msg("rendered template")
	return out, nil
}
