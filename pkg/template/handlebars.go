package template

import (
	"github.com/aymerick/raymond"
)

const (
	// HandlebarsEngineName is the registry name of the handlebars engine
	HandlebarsEngineName = "handlebars"

	// HandlebarsExtension is the default extension of handlebars templates
	HandlebarsExtension = ".hbs"
)

type handlebarsEngine struct {
	extension string
}

// NewHandlebars returns a Handlebars engine
func NewHandlebars(extension string) Engine {
	return &handlebarsEngine{extension: normalizeExtension(extension, HandlebarsExtension)}
}

func (e *handlebarsEngine) Name() string      { return HandlebarsEngineName }
func (e *handlebarsEngine) Extension() string { return e.extension }

func (e *handlebarsEngine) Compile(source string) (Template, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, err
	}
	return TemplateFunc(func(values map[string]interface{}) (string, error) {
		return tpl.Exec(values)
	}), nil
}

func init() {
	engines.MustRegister(HandlebarsEngineName, Factory(NewHandlebars))
}
