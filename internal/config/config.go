package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/jwren0/jerry/internal/errors"
)

// Key casing modes for output objects.
const (
	KeyCaseNone   = "none"
	KeyCaseSnake  = "snake"
	KeyCaseCamel  = "camel"
	KeyCasePascal = "pascal"
	KeyCaseKebab  = "kebab"
)

// Config controls how the parsed tree is rendered.
type Config struct {
	// Indent is the number of spaces per nesting level. Zero means
	// compact, single-line output.
	Indent int `yaml:"indent"`
	// KeyCase re-cases object keys on output. One of the KeyCase
	// constants.
	KeyCase string `yaml:"key_case"`
	// SortKeys orders object keys lexicographically instead of keeping
	// insertion order.
	SortKeys bool `yaml:"sort_keys"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:  2,
		KeyCase: KeyCaseNone,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the formatter cannot honor.
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return errors.NewConfigError(
			fmt.Sprintf("indent must not be negative, got %d", c.Indent), nil,
		)
	}

	switch c.KeyCase {
	case KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCasePascal, KeyCaseKebab:
		return nil
	default:
		return errors.NewConfigError(
			fmt.Sprintf("unknown key_case '%s'", c.KeyCase), nil,
		)
	}
}

// TransformKey applies the configured key casing to a single object key.
func (c *Config) TransformKey(key string) string {
	switch c.KeyCase {
	case KeyCaseSnake:
		return strcase.ToSnake(key)
	case KeyCaseCamel:
		return strcase.ToLowerCamel(key)
	case KeyCasePascal:
		return strcase.ToCamel(key)
	case KeyCaseKebab:
		return strcase.ToKebab(key)
	}
	return key
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jerry.yml", ".jerry.yaml", "jerry.yml", "jerry.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}
