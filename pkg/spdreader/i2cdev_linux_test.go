//go:build linux

package spdreader

import (
	"context"
	"testing"
	"unsafe"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestBusNumber(t *testing.T) {
	tests := map[string]int{
		"/dev/i2c-0":  0,
		"/dev/i2c-12": 12,
		"/dev/null":   -1,
	}
	for path, want := range tests {
		if got := busNumber(path); got != want {
			t.Errorf("busNumber(%q) = %d, want %d", path, got, want)
		}
	}
}

func TestI2CDevNoAdapters(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	opts := DefaultOptions()
	opts.DevRoot = t.TempDir()
	opts.Log = log

	if _, err := NewI2CDev(opts).Read(context.Background()); err == nil {
		t.Error("Read() succeeded without adapters")
	}
}

// The ioctl argument must match struct i2c_smbus_ioctl_data
func TestSMBusIoctlLayout(t *testing.T) {
	var args smbusIoctlData
	if off := unsafe.Offsetof(args.size); off != 4 {
		t.Errorf("size offset = %d, want 4", off)
	}
	if off := unsafe.Offsetof(args.data); off != 8 {
		t.Errorf("data offset = %d, want 8", off)
	}
}
