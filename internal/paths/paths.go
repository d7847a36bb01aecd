// Package paths resolves configuration directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDirName is the CWD-relative configuration directory used when
// no override is set.
const DefaultConfigDirName = ".elevage"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "ELEVAGE_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// UserConfigDir returns the platform-specific per-user configuration
// directory for elevage.
//
// Linux:   $XDG_CONFIG_HOME/elevage (fallback ~/.config/elevage)
// macOS:   ~/Library/Application Support/elevage
// Windows: %APPDATA%/elevage
func UserConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "elevage"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "elevage"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "elevage"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ELEVAGE_CONFIG_DIR env > $(CWD)/.elevage.
// The result is always absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultConfigDirName)
}
