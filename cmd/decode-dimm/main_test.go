package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mscrnt/decode-dimm/internal/config"
)

// run executes the CLI with an isolated default config path
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	saved := config.DefaultPath
	config.DefaultPath = filepath.Join(t.TempDir(), "absent.toml")
	defer func() { config.DefaultPath = saved }()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "decode-dimm")
	assert.Contains(t, out, "Version:    dev")
}

func TestHelpListsFormats(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Output formats:")
	assert.Contains(t, out, "  html   standalone HTML page, one table per record")
	assert.Contains(t, out, "Output format: html, json, text")
}

func TestVendorCmd(t *testing.T) {
	out, _, err := run(t, "vendor", "7F98", "0xce")
	require.NoError(t, err)
	assert.Equal(t, "7F98: Kingston\n0xce: Samsung\n", out)

	out, _, err = run(t, "vendor", "--packed", "0xCE80", "0x9801", "0x0C4D")
	require.NoError(t, err)
	assert.Equal(t, "0xCE80: Samsung\n0x9801: Kingston\n0x0C4D: invalid\n", out)

	_, _, err = run(t, "vendor", "--packed", "0x1FFFF")
	assert.Error(t, err)

	_, _, err = run(t, "vendor")
	assert.Error(t, err)
}

func TestDecodeCmd(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "odd.hex")
	require.NoError(t, os.WriteFile(dump, []byte("80 08 12 00\n"), 0644))

	out, _, err := run(t, "decode", "--address", "0x53", dump)
	require.NoError(t, err, "a failed record must not fail the command")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Analyzing client 0x53 (Probably slot 4)", lines[0])
	assert.Equal(t, "Raw Data           : 0x80, 0x08, 0x12, 0x00", lines[1])
	assert.Equal(t, "Unsupported memory type 18", lines[2])

	out, _, err = run(t, "decode", "--format", "json", dump)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Analyzing `+dump+`"`)

	_, _, err = run(t, "decode", "--address", "banana", dump)
	assert.Error(t, err)

	_, _, err = run(t, "decode", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestScanCmd(t *testing.T) {
	root := t.TempDir()
	node := filepath.Join(root, "bus", "i2c", "devices", "0-0050")
	require.NoError(t, os.MkdirAll(node, 0755))
	dump := make([]byte, 256)
	dump[2] = 0x12
	require.NoError(t, os.WriteFile(filepath.Join(node, "eeprom"), dump, 0644))

	cfgPath := filepath.Join(root, "decode-dimm.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sysfs_root = "`+root+`"
dev_root = "`+filepath.Join(root, "dev")+`"
edid = false
host_check = false
`), 0644))

	out, _, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Analyzing client 0x50 (Probably slot 1)\n"))
	assert.Contains(t, out, "Unsupported memory type 18")
	assert.NotContains(t, out, "Summary")

	_, _, err = run(t, "scan", "--config", cfgPath, "--log-format", "xml")
	assert.Error(t, err)
}

func TestScanNoSource(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "decode-dimm.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
sysfs_root = "`+filepath.Join(root, "missing")+`"
dev_root = "`+root+`"
edid = false
`), 0644))

	_, _, err := run(t, "scan", "--config", cfgPath)
	assert.ErrorContains(t, err, "no byte source available")
}
