package spdreader

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Addresses of the SPD EEPROMs on the SMBus, one per slot
const (
	FirstSlotAddress = 0x50
	LastSlotAddress  = 0x57
)

// maxRecordLength is the largest record any decoder consumes
const maxRecordLength = 512

// RawRecord is the content of one identification EEPROM. Source names the
// file, sysfs node or i2c-dev bus; Bus and Address are -1 when unknown.
type RawRecord struct {
	Source  string `json:"source"`
	Bus     int    `json:"bus"`
	Address int    `json:"address"`
	Data    []byte `json:"data"`
}

// Slot returns the DIMM slot number implied by an SPD address, or 0
func (r RawRecord) Slot() int {
	if r.Address >= FirstSlotAddress && r.Address <= LastSlotAddress {
		return r.Address - (FirstSlotAddress - 1)
	}
	return 0
}

func (r RawRecord) String() string {
	if r.Address >= 0 {
		return fmt.Sprintf("%s@0x%02x", r.Source, r.Address)
	}
	return r.Source
}

// Source supplies raw records
type Source interface {
	Name() string
	Read(ctx context.Context) ([]RawRecord, error)
}

// Options configures the byte sources
type Options struct {
	SysfsRoot    string
	DevRoot      string
	FirstAddress int
	LastAddress  int
	Retries      int
	RetryDelay   time.Duration
	EDID         bool // also read display EDIDs
	Log          logrus.FieldLogger
}

// DefaultOptions returns the options used for a host scan
func DefaultOptions() Options {
	return Options{
		SysfsRoot:    "/sys",
		DevRoot:      "/dev",
		FirstAddress: FirstSlotAddress,
		LastAddress:  LastSlotAddress,
		Retries:      5,
		RetryDelay:   10 * time.Millisecond,
		EDID:         true,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.FirstAddress < 0x03 || o.LastAddress > 0x77 {
		return fmt.Errorf("address range 0x%02x-0x%02x outside 0x03-0x77", o.FirstAddress, o.LastAddress)
	}
	if o.FirstAddress > o.LastAddress {
		return fmt.Errorf("first address 0x%02x above last address 0x%02x", o.FirstAddress, o.LastAddress)
	}
	if o.Retries < 1 {
		return fmt.Errorf("retries must be at least 1")
	}
	if o.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative")
	}
	return nil
}

func (o Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	return logrus.StandardLogger()
}
