package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decode-dimm.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/sys", cfg.SysfsRoot)
	assert.Equal(t, "/dev", cfg.DevRoot)
	assert.Equal(t, 0x50, cfg.FirstAddress)
	assert.Equal(t, 0x57, cfg.LastAddress)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, "10ms", cfg.RetryDelay)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.EDID)
	assert.True(t, cfg.HostCheck)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
sysfs_root = "/tmp/sys"
first_address = 0x51
last_address = 0x52
retry_delay = "50ms"
format = "json"
edid = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sys", cfg.SysfsRoot)
	assert.Equal(t, "/dev", cfg.DevRoot, "unset keys keep defaults")
	assert.Equal(t, 0x51, cfg.FirstAddress)
	assert.Equal(t, 0x52, cfg.LastAddress)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EDID)
	assert.True(t, cfg.HostCheck)

	opts, err := cfg.ReaderOptions()
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, opts.RetryDelay)
	assert.Equal(t, 5, opts.Retries)
	assert.False(t, opts.EDID)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")

	_, err := Load(missing)
	assert.Error(t, err, "a named file must exist")

	saved := DefaultPath
	DefaultPath = missing
	defer func() { DefaultPath = saved }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `colour = "red"`},
		{"syntax", `retries = `},
		{"bad format", `format = "pdf"`},
		{"bad delay", `retry_delay = "soon"`},
		{"reversed range", "first_address = 0x57\nlast_address = 0x50"},
		{"no retries", `retries = 0`},
		{"empty sysfs", `sysfs_root = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DevRoot = ""
	assert.EqualError(t, cfg.Validate(), "dev_root is required")

	cfg = Default()
	cfg.RetryDelay = "-1s"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Format = "html"
	assert.NoError(t, cfg.Validate())
}
