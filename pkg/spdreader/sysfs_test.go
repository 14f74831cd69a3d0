package spdreader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func writeNode(t *testing.T, root, rel string, size int, fill byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = fill
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sysfsTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeNode(t, root, "bus/i2c/devices/0-0050/eeprom", 256, 0x11)
	writeNode(t, root, "bus/i2c/devices/0-0051/eeprom", 0, 0)
	writeNode(t, root, "bus/i2c/devices/0-0030/eeprom", 256, 0x22)
	writeNode(t, root, "bus/i2c/devices/1-0052/ee1004", 1024, 0x33)
	writeNode(t, root, "class/drm/card0-HDMI-A-1/edid", 256, 0x44)
	writeNode(t, root, "class/drm/card0-DP-1/edid", 0, 0)
	return root
}

func TestSysfsRead(t *testing.T) {
	root := sysfsTree(t)
	log, _ := logtest.NewNullLogger()

	src := NewSysfs(log, "sysfs", root, FirstSlotAddress, LastSlotAddress,
		"bus/i2c/devices/*/eeprom", "bus/i2c/devices/*/ee1004")
	got, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	type summary struct {
		Source  string
		Bus     int
		Address int
		Length  int
		First   byte
	}
	var sums []summary
	for _, r := range got {
		rel, _ := filepath.Rel(root, r.Source)
		sums = append(sums, summary{rel, r.Bus, r.Address, len(r.Data), r.Data[0]})
	}
	want := []summary{
		{"bus/i2c/devices/0-0050/eeprom", 0, 0x50, 256, 0x11},
		{"bus/i2c/devices/1-0052/ee1004", 1, 0x52, 512, 0x33},
	}
	if diff := cmp.Diff(want, sums); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestSysfsReadDRM(t *testing.T) {
	root := sysfsTree(t)
	log, _ := logtest.NewNullLogger()

	got, err := NewSysfs(log, "drm", root, -1, -1, "class/drm/*/edid").Read(context.Background())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Read() returned %d records, want 1", len(got))
	}
	if got[0].Address != -1 || got[0].Bus != -1 {
		t.Errorf("connector record bus/address = %d/%d, want -1/-1", got[0].Bus, got[0].Address)
	}
	if filepath.Base(filepath.Dir(got[0].Source)) != "card0-HDMI-A-1" {
		t.Errorf("Source = %s", got[0].Source)
	}
}

func TestSysfsMissingRoot(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	src := NewSysfs(log, "sysfs", filepath.Join(t.TempDir(), "missing"), 0x50, 0x57, "bus/i2c/devices/*/eeprom")
	if _, err := src.Read(context.Background()); err == nil {
		t.Error("Read() succeeded on a missing root")
	}
}

func TestHostReaderOverSysfs(t *testing.T) {
	root := sysfsTree(t)
	log, _ := logtest.NewNullLogger()

	opts := DefaultOptions()
	opts.SysfsRoot = root
	opts.DevRoot = t.TempDir()
	opts.Log = log
	reader, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	got, err := reader.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadAll() returned %d records, want 3", len(got))
	}
	if got[2].Address != -1 {
		t.Errorf("last record should be the display, got %s", got[2])
	}
}

func TestHostReaderNoSource(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	opts := DefaultOptions()
	opts.SysfsRoot = filepath.Join(t.TempDir(), "missing")
	opts.DevRoot = t.TempDir()
	opts.EDID = false
	opts.Log = log
	reader, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := reader.ReadAll(context.Background()); !errors.Is(err, ErrNoSource) {
		t.Errorf("ReadAll() error = %v, want ErrNoSource", err)
	}
}

func TestParseDeviceName(t *testing.T) {
	tests := []struct {
		name     string
		bus, adr int
	}{
		{"0-0050", 0, 0x50},
		{"12-0057", 12, 0x57},
		{"card0-HDMI-A-1", -1, -1},
		{"i2c-3", -1, -1},
	}
	for _, tt := range tests {
		bus, addr := parseDeviceName(tt.name)
		if bus != tt.bus || addr != tt.adr {
			t.Errorf("parseDeviceName(%q) = %d, 0x%x; want %d, 0x%x", tt.name, bus, addr, tt.bus, tt.adr)
		}
	}
}
