// Package template defines the boundary between cfgkit and the template
// engines that render scaffolding files.
//
// cfgkit only relies on "flat mapping in, string out": an Engine compiles
// template text into a Template, which renders against a value mapping. The
// engine also owns the file extension that marks a file as one of its
// templates.
//
// Two engines are registered:
//
//   - handlebars (default): Handlebars syntax, ".hbs" files
//   - gotemplate: Go text/template syntax, ".tmpl" files
package template
