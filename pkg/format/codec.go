package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec converts between bytes and a structured mapping.
type Codec interface {
	Decode(data []byte) (map[string]interface{}, error)
	Encode(data map[string]interface{}) ([]byte, error)
}

var codecs = map[Format]Codec{
	JSON: jsonCodec{},
	YAML: yamlCodec{},
	TOML: tomlCodec{},
	// Structured data written as text is rendered as JSON
	Text: jsonCodec{},
}

// Decode parses data written in format f
func Decode(f Format, data []byte) (map[string]interface{}, error) {
	if !f.Structured() {
		return nil, fmt.Errorf("format %s does not carry structured data", f)
	}
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
	return c.Decode(data)
}

// Encode serializes data in format f
func Encode(f Format, data map[string]interface{}) ([]byte, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
	return c.Encode(data)
}

type jsonCodec struct{}

func (jsonCodec) Decode(data []byte) (map[string]interface{}, error) {
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return asMapping(out)
}

func (jsonCodec) Encode(data map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

type yamlCodec struct{}

func (yamlCodec) Decode(data []byte) (map[string]interface{}, error) {
	var out interface{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return asMapping(out)
}

// Encode writes 2-space indented YAML, quoting strings with single quotes
// whenever the emitter decides quoting is required.
func (yamlCodec) Encode(data map[string]interface{}) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(data); err != nil {
		return nil, err
	}
	preferSingleQuotes(&node)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func preferSingleQuotes(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.Style&yaml.DoubleQuotedStyle != 0 && singleQuotable(node.Value) {
		node.Style = yaml.SingleQuotedStyle
	}
	for _, child := range node.Content {
		preferSingleQuotes(child)
	}
}

// singleQuotable reports whether s can be represented between single
// quotes, which have no escape sequences.
func singleQuotable(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r' || !unicode.IsPrint(r)
	})
}

type tomlCodec struct{}

func (tomlCodec) Decode(data []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return asMapping(out)
}

func (tomlCodec) Encode(data map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func asMapping(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return map[string]interface{}{}, nil
	}
	m, ok := Normalize(v).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a mapping at the document root, got %T", v)
	}
	return m, nil
}
