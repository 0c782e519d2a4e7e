// Package config loads tada settings from defaults, an optional YAML file,
// TADA_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/tada/internal/ui"
)

const (
	EnvPrefix      = "TADA"
	configFileName = "config"
	configFileType = "yaml"

	KeyTheme     = "theme"
	KeyLogLevel  = "log.level"
	KeyLogFile   = "log.file"
	KeyLogFormat = "log.format"
	KeyIDSource  = "ids"
	KeyStrict    = "strict"
	KeyNotifyTTL = "notify.ttl"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"theme":      KeyTheme,
	"log-level":  KeyLogLevel,
	"log-file":   KeyLogFile,
	"log-format": KeyLogFormat,
	"id-source":  KeyIDSource,
	"strict":     KeyStrict,
	"notify-ttl": KeyNotifyTTL,
}

var idSources = []string{"counter", "clock"}

// Config holds application configuration.
type Config struct {
	Theme     string
	IDSource  string
	Strict    bool
	NotifyTTL time.Duration
	Log       LogConfig

	// File is the config file that was read, empty when none was found.
	File string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	File   string
	Format string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:     ui.DefaultTheme,
		IDSource:  "counter",
		NotifyTTL: 3 * time.Second,
		Log:       LogConfig{Level: "warn", Format: "text"},
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/tada (or the platform equivalent).
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "tada"), nil
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("theme", d.Theme, "color theme ("+strings.Join(ui.Names(), ", ")+")")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-file", d.Log.File, "write logs to this file (default: discard in the TUI, stderr otherwise)")
	fs.String("log-format", d.Log.Format, "log format (text, json, logfmt)")
	fs.String("id-source", d.IDSource, "item id generator ("+strings.Join(idSources, ", ")+")")
	fs.Bool("strict", d.Strict, "ignore blank add/edit text inside the store as well as in the view")
	fs.Duration("notify-ttl", d.NotifyTTL, "how long notifications stay on screen")
}

// Load resolves the configuration. An explicit path must exist; without
// one, a missing config.yaml in DefaultDir is not an error. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyIDSource, d.IDSource)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyNotifyTTL, d.NotifyTTL)

	v.SetConfigType(configFileType)
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName(configFileName)
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		Theme:     strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		IDSource:  strings.ToLower(strings.TrimSpace(v.GetString(KeyIDSource))),
		Strict:    v.GetBool(KeyStrict),
		NotifyTTL: v.GetDuration(KeyNotifyTTL),
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			File:   v.GetString(KeyLogFile),
			Format: v.GetString(KeyLogFormat),
		},
		File: v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	if !ui.Known(c.Theme) {
		return fmt.Errorf("unknown theme %q (want %s)", c.Theme, strings.Join(ui.Names(), ", "))
	}
	known := false
	for _, s := range idSources {
		if c.IDSource == s {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown id source %q (want %s)", c.IDSource, strings.Join(idSources, ", "))
	}
	if c.NotifyTTL <= 0 {
		return fmt.Errorf("notify ttl must be positive, got %s", c.NotifyTTL)
	}
	return nil
}
