package config

import (
	"io/fs"

	"github.com/arthur-debert/cfgkit/pkg/files"
	"github.com/arthur-debert/cfgkit/pkg/template"
)

// Config is the configuration of the cfgkit tool
type Config struct {
	Template TemplateConfig `koanf:"template"`
	Files    FilesConfig    `koanf:"files"`
	Log      LogConfig      `koanf:"log"`

	// Source is the configuration file that was loaded, if any
	Source string `koanf:"-"`
}

// TemplateConfig selects the template engine used by render
type TemplateConfig struct {
	Engine    string `koanf:"engine"`
	Extension string `koanf:"extension"`
}

// FilesConfig holds the permissions of created files and directories
type FilesConfig struct {
	FileMode fs.FileMode `koanf:"filemode"`
	DirMode  fs.FileMode `koanf:"dirmode"`
}

type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// FilesOptions turns the configuration into options for files.New.
func (c *Config) FilesOptions() ([]files.Option, error) {
	engine, err := template.New(c.Template.Engine, c.Template.Extension)
	if err != nil {
		return nil, err
	}
	return []files.Option{
		files.WithEngine(engine),
		files.WithFileMode(c.Files.FileMode),
		files.WithDirMode(c.Files.DirMode),
	}, nil
}
