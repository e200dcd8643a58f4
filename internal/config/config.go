// Package config loads annotext settings and annotated documents.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/annotext/internal/logging"
	"github.com/iw2rmb/annotext/render"
)

var (
	// ErrInvalidConfig indicates a configuration file that cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidDocument indicates input that is not a valid document.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrUnknownFormat indicates an unsupported document format name.
	ErrUnknownFormat = errors.New("unknown format")
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Theme ThemeConfig `yaml:"theme"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ThemeConfig overrides render.DefaultTheme. Kinds are keyed by annotation
// kind ("mention", "link", ...).
type ThemeConfig struct {
	Plain *render.StyleSpec           `yaml:"plain,omitempty"`
	Kinds map[string]render.StyleSpec `yaml:"kinds,omitempty"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over Default. An empty path returns
// Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err = Decode(f)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML configuration over Default. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %v", ErrInvalidConfig, err)
	}
	return nil
}
