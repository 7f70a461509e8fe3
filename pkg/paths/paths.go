// Package paths resolves the per-user locations scaffy reads and writes:
// the user configuration file and the log file. It follows the XDG Base
// Directory specification, with scaffy-specific overrides.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvScaffyConfigDir overrides the XDG config directory for scaffy
	EnvScaffyConfigDir = "SCAFFY_CONFIG_DIR"

	// EnvScaffyStateDir overrides the XDG state directory for scaffy
	EnvScaffyStateDir = "SCAFFY_STATE_DIR"
)

const (
	// AppDirName is the directory name for scaffy-specific files
	AppDirName = "scaffy"

	// UserConfigFile is the user-level configuration file name
	UserConfigFile = "config.toml"

	// ProjectConfigFile is the configuration file looked up in the
	// project being initialised
	ProjectConfigFile = ".scaffy.toml"

	// LogFile is the log file name inside the state directory
	LogFile = "scaffy.log"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvScaffyConfigDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding logs.
func StateDir() string {
	if dir := os.Getenv(EnvScaffyStateDir); dir != "" {
		return expandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the full path of the user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// ProjectConfigPath returns the project configuration path under root.
func ProjectConfigPath(root string) string {
	return filepath.Join(root, ProjectConfigFile)
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFile)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
