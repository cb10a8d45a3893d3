package main

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/sentinel/internal/config"
)

//go:embed templates/sentinel.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sentinel configuration file with the default settings",
		Long: `Init writes a commented configuration file listing every option with its
default value.

By default the file is .sentinel in the current directory. With --xdg it is
written to the XDG config directory, which is searched after the current and
home directories.

Examples:
  # Create .sentinel in current directory
  sentinel init

  # Create the per-user configuration
  sentinel init --xdg

  # Force overwrite existing file
  sentinel init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile, "Output file path for the configuration")
	cmd.Flags().Bool("xdg", false, "Write to "+config.XDGConfigFile())
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing configuration file")
	cmd.MarkFlagsMutuallyExclusive("output", "xdg")

	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := initOutputPath(cmd)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", outputPath, err)
	}

	content, err := configTemplate.ReadFile("templates/sentinel.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "The API key is read from $%s; it is never stored in this file.\n", config.DefaultAPIKeyEnv)
	return nil
}

// initOutputPath returns where init writes the template.
func initOutputPath(cmd *cobra.Command) (string, error) {
	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return "", err
	}
	if useXDG {
		return config.XDGConfigFile(), nil
	}
	return cmd.Flags().GetString("output")
}
