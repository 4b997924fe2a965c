package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/devfolio"
	"github.com/aretw0/devfolio/internal/cli"
	"github.com/aretw0/devfolio/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "devfolio",
	Short:         "DevFolio validates developer portfolio documents",
	Long:          `DevFolio checks portfolio documents (JSON or YAML) against the DevFolio schema, exports the schema, and serves validation and storage over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject keys the schema does not declare")
}

// loadConfig reads the configuration and applies the persistent flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger and validator every
// command shares. Logs go to stderr.
func setup(cmd *cobra.Command, source string) (config.Config, *slog.Logger, *devfolio.Validator, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}
	logger, err := cli.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return cfg, nil, nil, err
	}
	strict, _ := cmd.Flags().GetBool("strict")
	v, err := cli.NewValidator(cfg.Validation, strict, source, logger)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, logger, v, nil
}
