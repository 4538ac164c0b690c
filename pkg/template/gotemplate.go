package template

import (
	"strings"
	"text/template"
)

const (
	// GoTemplateEngineName is the registry name of the text/template engine
	GoTemplateEngineName = "gotemplate"

	// GoTemplateExtension is the default extension of Go templates
	GoTemplateExtension = ".tmpl"
)

type goTemplateEngine struct {
	extension string
}

// NewGoTemplate returns an engine backed by text/template. Referencing a
// key that is not in the values is a render error.
func NewGoTemplate(extension string) Engine {
	return &goTemplateEngine{extension: normalizeExtension(extension, GoTemplateExtension)}
}

func (e *goTemplateEngine) Name() string      { return GoTemplateEngineName }
func (e *goTemplateEngine) Extension() string { return e.extension }

func (e *goTemplateEngine) Compile(source string) (Template, error) {
	tpl, err := template.New("cfgkit").Option("missingkey=error").Funcs(template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
	}).Parse(source)
	if err != nil {
		return nil, err
	}
	return TemplateFunc(func(values map[string]interface{}) (string, error) {
		var sb strings.Builder
		if err := tpl.Execute(&sb, values); err != nil {
			return "", err
		}
		return sb.String(), nil
	}), nil
}

func init() {
	engines.MustRegister(GoTemplateEngineName, Factory(NewGoTemplate))
}
