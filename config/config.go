package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendBaseURL = "backend.base_url"
	BackendTimeout = "backend.timeout"

	CachePath   = "cache.path"
	CacheSecret = "cache.secret"

	LogPath  = "log.path"
	LogLevel = "log.level"

	Port       = "server.port"
	Secret     = "server.secret"
	SessionTTL = "server.session_ttl"

	AdminName     = "admin.name"
	AdminEmail    = "admin.email"
	AdminPassword = "admin.password"
)

func init() {
	viper.AutomaticEnv()

	viper.SetDefault(BackendTimeout, 30*time.Second)
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(Port, "4000")
	viper.SetDefault(SessionTTL, 24*time.Hour)
}

// Validate checks the configuration the client cannot run without. The
// backend base URL has no sensible default: a missing value must stop
// the process rather than have every request target an undefined host.
func Validate() error {
	if viper.GetString(BackendBaseURL) == "" {
		return fmt.Errorf("config: %s is required", BackendBaseURL)
	}
	return nil
}

// DefaultCachePath resolves the session cache location, preferring the
// configured path and falling back to the OS user cache directory.
func DefaultCachePath() (string, error) {
	if p := viper.GetString(CachePath); p != "" {
		return p, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving user cache dir: %w", err)
	}
	return filepath.Join(dir, "eventbook", "session.cache"), nil
}
