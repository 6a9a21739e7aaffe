package config

import (
	"os"
	"path/filepath"
)

const appName = "fastbrowser"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "FASTBROWSER_CONFIG_DIR"

const dirPerm = 0o755

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	// ManDir is where generated man pages are installed.
	ManDir string
}

// GetXDGDirs returns the XDG Base Directory paths for fastbrowser.
// It follows the XDG Base Directory specification:
// - $XDG_CONFIG_HOME/fastbrowser (default: ~/.config/fastbrowser)
// - $XDG_DATA_HOME/man/man1 (default: ~/.local/share/man/man1)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, ManDir: filepath.Join(devDir, "man", "man1")}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		ManDir:     filepath.Join(dataHome, "man", "man1"),
	}, nil
}

// GetConfigDir returns the directory holding config.json, tabs.json,
// history.json and the log files. FASTBROWSER_CONFIG_DIR wins when set.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// EnsureConfigDir creates the config directory if it does not exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}
	return dir, nil
}
