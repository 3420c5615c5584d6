// Package config provides centralized configuration for the dataset tools.
// Values come from defaults, an optional YAML file and environment variables
// (highest precedence), and are validated up front to fail fast.
package config

// Config holds all application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Datasets DatasetsConfig `mapstructure:"datasets"`
	Preview  PreviewConfig  `mapstructure:"preview"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`

	// Format is the log format: text or json (default: text)
	Format string `mapstructure:"format"`
}

// DatasetsConfig overrides the default file location of each dataset.
// An empty value keeps the dataset's built-in default.
type DatasetsConfig struct {
	ICFESPath   string `mapstructure:"icfes_path"`
	StudentPath string `mapstructure:"student_path"`
}

// PreviewConfig controls the demonstration output.
type PreviewConfig struct {
	// Rows is how many rows of the full load to print (default: 5)
	Rows int `mapstructure:"rows"`

	// SubsetRows is the size of the second, truncated load (default: 5)
	SubsetRows int `mapstructure:"subset_rows"`
}

// PathFor returns the configured path override for a dataset, if any.
func (c *Config) PathFor(dataset string) string {
	switch dataset {
	case "icfes":
		return c.Datasets.ICFESPath
	case "student":
		return c.Datasets.StudentPath
	default:
		return ""
	}
}
