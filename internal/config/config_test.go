package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config dir at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("", nil)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Theme, c.Theme)
	assert.Equal(t, want.IDSource, c.IDSource)
	assert.Equal(t, want.NotifyTTL, c.NotifyTTL)
	assert.Equal(t, "warn", c.Log.Level)
	assert.False(t, c.Strict)
	assert.Empty(t, c.File)
}

func TestLoadDefaultDirFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "tada", "config.yaml"), `
theme: neon
ids: clock
strict: true
notify:
  ttl: 5s
log:
  level: debug
`)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "neon", c.Theme)
	assert.Equal(t, "clock", c.IDSource)
	assert.True(t, c.Strict)
	assert.Equal(t, 5*time.Second, c.NotifyTTL)
	assert.Equal(t, "debug", c.Log.Level)
	assert.NotEmpty(t, c.File)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestPrecedence(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tada.yaml")
	writeConfig(t, path, "theme: neon\nids: clock\n")

	t.Setenv("TADA_THEME", "mono")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--id-source=counter", "--notify-ttl=1s"}))

	c, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "mono", c.Theme, "env beats file")
	assert.Equal(t, "counter", c.IDSource, "flag beats file")
	assert.Equal(t, time.Second, c.NotifyTTL)
	assert.Equal(t, path, c.File)
}

func TestUnsetFlagsDoNotOverrideFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tada.yaml")
	writeConfig(t, path, "theme: neon\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	c, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "neon", c.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"ok", func(*Config) {}, ""},
		{"bad theme", func(c *Config) { c.Theme = "solarized" }, "unknown theme"},
		{"bad id source", func(c *Config) { c.IDSource = "uuid" }, "unknown id source"},
		{"zero ttl", func(c *Config) { c.NotifyTTL = 0 }, "notify ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
