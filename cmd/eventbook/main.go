package main

import (
	"context"
	"eventbook-client/api"
	"eventbook-client/config"
	c "eventbook-client/context"
	"eventbook-client/logger"
	"eventbook-client/session"
	"eventbook-client/ui"
	"flag"
	l "log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

var (
	version string
)

var ctx context.Context

func init() {
	ctx = c.NewContext(c.NewCorrelationID())
}

func main() {
	cfgPath := flag.String("CONFIG_PATH", "./config.yaml", "Path to config file")
	flag.Parse()

	viper.SetConfigFile(*cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		l.Fatalln("error reading config")
	}
	if err := config.Validate(); err != nil {
		l.Fatalln(err)
	}

	// The terminal belongs to the TUI; logs go to a file.
	if path := viper.GetString(config.LogPath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			l.Fatalln("error creating log dir:", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			l.Fatalln("error opening log file:", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(os.Stderr)
	}
	logger.SetLevel(viper.GetString(config.LogLevel))

	client, err := api.New(viper.GetString(config.BackendBaseURL), viper.GetDuration(config.BackendTimeout))
	if err != nil {
		logger.Fatalf(ctx, "creating api client: %v", err)
	}

	cachePath, err := config.DefaultCachePath()
	if err != nil {
		logger.Fatalf(ctx, "resolving cache path: %v", err)
	}
	cache := session.NewFileCache(cachePath, viper.GetString(config.CacheSecret))
	sess := session.NewManager(client, cache)

	logger.Infof(ctx, "eventbook %s starting against %s", version, viper.GetString(config.BackendBaseURL))

	p := tea.NewProgram(ui.New(client, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatalf(ctx, "running ui: %v", err)
	}
}
