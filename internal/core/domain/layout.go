package domain

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory used under the platform cache and config directories.
	AppDirName = "matuwrap"

	// ColorCacheFile is the name of the single-slot color cache file.
	ColorCacheFile = "colors.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// ConfigEnvVar overrides the configuration file location.
	ConfigEnvVar = "WRP_CONFIG"

	// DefaultWallpaper is the wallpaper symlink maintained by the wallpaper setter.
	DefaultWallpaper = "~/.current.wall"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultColorCachePath returns <user cache dir>/matuwrap/colors.json.
func DefaultColorCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Join(ErrCacheDirUnavailable, err)
	}
	return filepath.Join(dir, AppDirName, ColorCacheFile), nil
}

// DefaultConfigPath returns the configuration file location.
// WRP_CONFIG wins over <user config dir>/matuwrap/config.yaml.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && path[1] == filepath.Separator
}
