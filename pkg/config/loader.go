package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/cfgkit/pkg/format"
	"github.com/arthur-debert/cfgkit/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment variables read as configuration
const EnvPrefix = "CFGKIT_"

// FileNames are the configuration file names searched for, in order
var FileNames = []string{".cfgkit.toml", ".cfgkit.yaml", ".cfgkit.yml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Finder locates a file by walking up from the working directory.
// *files.Files implements it.
type Finder interface {
	FindUp(name string) (string, bool, error)
}

// Load builds the configuration from every layer. finder may be nil, in
// which case no configuration file is read. overrides use dotted keys
// ("log.verbosity").
func Load(finder Finder, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	source := ""
	if finder != nil {
		path, err := findConfigFile(finder)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			source = path
			logger.Debug().Str("path", path).Msg("loaded config file")
		}
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				fileModeHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Source = source

	return &cfg, nil
}

func findConfigFile(finder Finder) (string, error) {
	for _, name := range FileNames {
		path, found, err := finder.FindUp(name)
		if err != nil {
			return "", fmt.Errorf("failed to search for %s: %w", name, err)
		}
		if found {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	if format.FromPath(path) == format.YAML {
		return yaml.Parser()
	}
	return toml.Parser()
}

// fileModeHookFunc decodes octal strings such as "0644" into fs.FileMode
func fileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(fs.FileMode(0)) || f.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(reflect.ValueOf(data).String()), "0o")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid file mode %q: %w", data, err)
		}
		return fs.FileMode(mode), nil
	}
}
