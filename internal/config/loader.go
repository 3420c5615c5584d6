package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// binding ties a config key to its environment variable and default.
type binding struct {
	key   string
	env   string
	value any
}

var bindings = []binding{
	{"logging.level", "LOG_LEVEL", "info"},
	{"logging.format", "LOG_FORMAT", "text"},
	{"datasets.icfes_path", "ICFES_PATH", ""},
	{"datasets.student_path", "STUDENT_PATH", ""},
	{"preview.rows", "PREVIEW_ROWS", 5},
	{"preview.subset_rows", "SUBSET_ROWS", 5},
}

// Load reads configuration from an optional YAML file and the environment.
// It applies defaults for unset values and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()

	for _, b := range bindings {
		v.SetDefault(b.key, b.value)
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("config load: bind %s: %w", b.env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config load: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Preview.Rows < 0 {
		errs = append(errs, fmt.Sprintf("PREVIEW_ROWS (%d) must be non-negative", c.Preview.Rows))
	}
	if c.Preview.SubsetRows < 0 {
		errs = append(errs, fmt.Sprintf("SUBSET_ROWS (%d) must be non-negative", c.Preview.SubsetRows))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Logging: {Level: %q, Format: %q}, Datasets: {ICFESPath: %q, StudentPath: %q}, Preview: {Rows: %d, SubsetRows: %d}}",
		c.Logging.Level, c.Logging.Format,
		c.Datasets.ICFESPath, c.Datasets.StudentPath,
		c.Preview.Rows, c.Preview.SubsetRows)
}
