// Package cli implements the datasets demonstration command.
package cli

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datasets/internal/config"
	_ "github.com/JonMunkholm/datasets/internal/core/datasets" // Register all datasets
	"github.com/JonMunkholm/datasets/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "datasets",
		Short: "Load the anonymized dataset files and print their structure",
		Long: `datasets reads the semicolon-delimited dataset files, types each column
according to the dataset schema and prints a summary plus a preview.

Cells that cannot be parsed as their declared type are shown as <NA>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text, json")

	root.AddCommand(newShowCmd(a), newListCmd())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads .env and configuration, then configures logging and puts a
// command-scoped logger on the context.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logging.SetupWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	cmd.SetContext(logging.NewContext(cmd.Context(), slog.Default().With("command", cmd.Name())))
	slog.Debug("configuration loaded", "config", cfg.String())
	return nil
}
