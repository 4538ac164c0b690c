package template

import (
	"github.com/arthur-debert/cfgkit/pkg/registry"
)

const (
	// DefaultEngine is the engine used when none is configured
	DefaultEngine = HandlebarsEngineName
)

// Template is a compiled template.
type Template interface {
	Render(values map[string]interface{}) (string, error)
}

// Engine compiles template text.
type Engine interface {
	// Name is the registry name of the engine
	Name() string
	// Extension is the file extension, dot included, of this engine's templates
	Extension() string
	Compile(source string) (Template, error)
}

// Factory creates an engine. extension overrides the engine's default file
// extension when not empty.
type Factory func(extension string) Engine

var engines = registry.New[Factory]("template engine")

// Register makes an engine factory available by name
func Register(name string, factory Factory) error {
	return engines.Register(name, factory)
}

// New returns the engine registered under name.
func New(name, extension string) (Engine, error) {
	factory, err := engines.Get(name)
	if err != nil {
		return nil, err
	}
	return factory(extension), nil
}

// Default returns the default engine with its default extension
func Default() Engine {
	return NewHandlebars("")
}

// Names lists the registered engines
func Names() []string {
	return engines.Names()
}

// TemplateFunc adapts a function to the Template interface
type TemplateFunc func(values map[string]interface{}) (string, error)

// Render calls f(values)
func (f TemplateFunc) Render(values map[string]interface{}) (string, error) {
	return f(values)
}

func normalizeExtension(ext, fallback string) string {
	if ext == "" {
		return fallback
	}
	if ext[0] != '.' {
		return "." + ext
	}
	return ext
}
