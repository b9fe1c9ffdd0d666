// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "ADREEL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the ADREEL_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Adreel))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Adreel))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Playlist resolves the hand-off record shared by the collector and the player.
// The playlist.path setting takes precedence over the default location.
func Playlist() string {
	if custom := viper.GetString(key.PlaylistPath); custom != "" {
		return custom
	}
	return filepath.Join(Config(), "playlist.json")
}

// History resolves the file remembering the last played entry of each playlist.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// Temp resolves a volatile directory for player sockets and other transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Adreel))
}
