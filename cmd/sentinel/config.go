package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/sentinel/internal/config"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadConfig returns defaults overlaid with the configuration file, if any.
// An explicitly given file that does not exist is an error; a missing file
// in the default locations is not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var configPath string
	if cmd.Flags().Lookup("config") != nil {
		var err error
		if configPath, err = cmd.Flags().GetString("config"); err != nil {
			return nil, err
		}
	}
	cfg.ConfigFilePath = configPath

	found := config.FindConfigFile(configPath)
	if found == "" {
		if configPath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
		}
		return cfg, nil
	}

	file, err := config.LoadConfigFile(found)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	file.Apply(cfg)
	return cfg, nil
}

// buildConfig loads the configuration and applies the flags the operator
// set explicitly, so flags win over the file and the file over defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("sites-dir") {
		if cfg.SitesDir, err = flags.GetString("sites-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("analysis-timeout") {
		if cfg.AnalysisTimeout, err = flags.GetDuration("analysis-timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("model") {
		if cfg.Model, err = flags.GetString("model"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("api-base-url") {
		if cfg.APIBaseURL, err = flags.GetString("api-base-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-history") {
		noHistory, err := flags.GetBool("no-history")
		if err != nil {
			return nil, err
		}
		cfg.History = !noHistory
	}
	if flags.Changed("no-local-checks") {
		noChecks, err := flags.GetBool("no-local-checks")
		if err != nil {
			return nil, err
		}
		cfg.LocalChecks = !noChecks
	}
	if err := applyDBDirFlag(cmd, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDBDirFlag overrides the history database directory when --db-dir
// is set.
func applyDBDirFlag(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("db-dir") {
		return nil
	}
	dir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	cfg.DBDir = dir
	return nil
}
