package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/elevage/internal/store"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	File      string `yaml:"file"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := resolveConfigDir(flags.configDir)
			if err != nil {
				return &ExitError{Code: exitSysError, Err: err}
			}
			return runInit(cmd, configDir)
		},
	}
}

func runInit(cmd *cobra.Command, configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &ExitError{Code: exitSysError, Err: fmt.Errorf("create config directory: %w", err)}
	}

	path := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return &ExitError{Code: exitSysError, Err: fmt.Errorf("write config: %w", err)}
	}

	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already present at %s\n", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether it wrote the file.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		File:      store.DefaultPath,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	return true, os.WriteFile(path, data, 0o644)
}
