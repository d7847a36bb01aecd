package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/elevage/internal/paths"
	"github.com/mesh-intelligence/elevage/internal/store"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix maps keys to ELEVAGE_FILE, ELEVAGE_LOG_LEVEL, ...
	envPrefix = "ELEVAGE"

	cfgKeyFile      = "file"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// resolveConfigDir returns the configuration directory following the
// precedence --config-dir flag > ELEVAGE_CONFIG_DIR env > $(CWD)/.elevage.
func resolveConfigDir(flag string) (string, error) {
	return paths.ResolveConfigDir(flag)
}

// loadConfig reads config.yaml into v, looking first in configDir and then in
// the per-user config directory. A missing config.yaml is not an error.
// Precedence per key: flag > env > config.yaml > default.
func loadConfig(v *viper.Viper, configDir string) error {
	v.SetDefault(cfgKeyFile, store.DefaultPath)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if userDir, err := paths.UserConfigDir(); err == nil {
		v.AddConfigPath(userDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
