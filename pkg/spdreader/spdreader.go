// Package spdreader supplies raw SPD and EDID bytes from the host.
//
// Module EEPROMs are read through the kernel eeprom/ee1004 drivers in
// sysfs when bound, falling back to raw SMBus reads through i2c-dev.
// Display EDIDs come from the DRM connectors.
package spdreader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoSource is returned when no byte source could be opened
var ErrNoSource = errors.New("no byte source available")

// Reader interface for raw record sources
type Reader interface {
	ReadAll(ctx context.Context) ([]RawRecord, error)
	Close() error
}

// SPDReader is the main host reader implementation
type SPDReader struct {
	// chain is tried in order until one source returns records
	chain []Source
	// extra sources are always read
	extra []Source
	log   logrus.FieldLogger
}

// New creates a host reader from options
func New(opts Options) (*SPDReader, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reader options: %w", err)
	}
	log := opts.logger()
	r := &SPDReader{
		chain: []Source{
			NewSysfs(log, "sysfs", opts.SysfsRoot, opts.FirstAddress, opts.LastAddress,
				filepath.Join("bus", "i2c", "devices", "*", "eeprom"),
				filepath.Join("bus", "i2c", "devices", "*", "ee1004")),
			NewI2CDev(opts),
		},
		log: log,
	}
	if opts.EDID {
		r.extra = append(r.extra, NewSysfs(log, "drm", opts.SysfsRoot, -1, -1,
			filepath.Join("class", "drm", "*", "edid")))
	}
	return r, nil
}

// NewWithSources creates a reader over explicit sources
func NewWithSources(log logrus.FieldLogger, chain []Source, extra ...Source) *SPDReader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SPDReader{chain: chain, extra: extra, log: log}
}

// ReadAll reads records from the first working source of the chain and
// then from every extra source. A source error is logged and the next
// source is tried; ErrNoSource is returned only when every source failed.
func (r *SPDReader) ReadAll(ctx context.Context) ([]RawRecord, error) {
	var (
		records []RawRecord
		opened  int
		tried   int
	)

	for _, src := range r.chain {
		tried++
		recs, err := src.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			r.log.WithField("source", src.Name()).Warnf("Failed to read records: %v", err)
			continue
		}
		opened++
		if len(recs) == 0 {
			r.log.WithField("source", src.Name()).Debug("No records, trying next source")
			continue
		}
		records = append(records, recs...)
		break
	}

	for _, src := range r.extra {
		tried++
		recs, err := src.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			r.log.WithField("source", src.Name()).Warnf("Failed to read records: %v", err)
			continue
		}
		opened++
		records = append(records, recs...)
	}

	if opened == 0 && tried > 0 {
		return nil, ErrNoSource
	}
	return records, nil
}

// Close cleans up resources
func (r *SPDReader) Close() error {
	return nil
}

// ReadWithRetry calls fn until it succeeds or attempts are exhausted,
// doubling the delay after each failure
func ReadWithRetry(ctx context.Context, log logrus.FieldLogger, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		log.WithField("attempt", i+1).Debugf("Read failed, retrying in %v: %v", delay, err)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2 // Exponential backoff
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}
