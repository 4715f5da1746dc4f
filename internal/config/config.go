package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the content of hivescript.yaml.
type ProjectConfig struct {
	Params      map[string]string `yaml:"params,omitempty"`
	ParamsFiles []string          `yaml:"params_files,omitempty"`
	Exclude     []string          `yaml:"exclude,omitempty"`
	Directives  []string          `yaml:"directives,omitempty"`
	Format      string            `yaml:"format,omitempty"`
	Strict      bool              `yaml:"strict,omitempty"`

	// dir is the directory holding the file; relative params_files resolve against it.
	dir string
}

// Load reads hivescript.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, hivescript.ConfigFileName))
}

// LoadFile reads a configuration file from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, hivescript.ErrInvalidConfig)
	}
	cfg.dir = filepath.Dir(configPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *ProjectConfig) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q (expected auto, text, json or pretty): %w", c.Format, hivescript.ErrInvalidConfig)
	}
	return nil
}

// ResolvedParamsFiles returns params_files with relative entries joined to
// the directory that holds the config file.
func (c *ProjectConfig) ResolvedParamsFiles() []string {
	result := make([]string, len(c.ParamsFiles))
	for i, p := range c.ParamsFiles {
		if filepath.IsAbs(p) || c.dir == "" {
			result[i] = p
		} else {
			result[i] = filepath.Join(c.dir, p)
		}
	}
	return result
}

// IsValidFormat reports whether format names a known output format.
// The empty string is valid and means "not set".
func IsValidFormat(format string) bool {
	switch format {
	case "", hivescript.FormatAuto, hivescript.FormatText, hivescript.FormatJSON, hivescript.FormatPretty:
		return true
	default:
		return false
	}
}
