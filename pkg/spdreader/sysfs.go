package spdreader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Sysfs reads EEPROM contents exposed by kernel drivers
type Sysfs struct {
	name     string
	root     string
	patterns []string
	first    int
	last     int
	log      logrus.FieldLogger
}

// NewSysfs creates a sysfs source reading every file matching patterns
// under root. Devices whose address lies outside first..last are skipped;
// a negative first disables the address filter.
func NewSysfs(log logrus.FieldLogger, name, root string, first, last int, patterns ...string) *Sysfs {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sysfs{name: name, root: root, patterns: patterns, first: first, last: last, log: log}
}

// Name returns the source name
func (s *Sysfs) Name() string {
	return s.name
}

// Read returns one record per non-empty matching file. Unreadable files
// are logged and skipped.
func (s *Sysfs) Read(ctx context.Context) ([]RawRecord, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, fmt.Errorf("sysfs root: %w", err)
	}

	var records []RawRecord
	for _, pattern := range s.patterns {
		paths, err := filepath.Glob(filepath.Join(s.root, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return records, err
			}
			dev := filepath.Base(filepath.Dir(path))
			bus, addr := parseDeviceName(dev)
			if s.first >= 0 && (addr < s.first || addr > s.last) {
				continue
			}

			data, err := readLimited(path, maxRecordLength)
			if err != nil {
				s.log.WithField("path", path).Warn(err)
				continue
			}
			if len(data) == 0 {
				continue
			}
			records = append(records, RawRecord{Source: path, Bus: bus, Address: addr, Data: data})
		}
	}
	return records, nil
}

// parseDeviceName splits an i2c client name such as "3-0050" into bus
// and address. Other names (DRM connectors) yield -1, -1.
func parseDeviceName(name string) (bus, addr int) {
	var b, a int
	if n, err := fmt.Sscanf(name, "%d-%04x", &b, &a); err != nil || n != 2 {
		return -1, -1
	}
	return b, a
}

func readLimited(path string, n int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, n))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
