//go:build linux

package spdreader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/mscrnt/decode-dimm/pkg/edid"
)

// linux/i2c-dev.h and linux/i2c.h
const (
	i2cSlaveForce = 0x0706
	i2cFuncs      = 0x0705
	i2cSMBus      = 0x0720

	i2cFuncSMBusReadByteData = 0x00080000

	smbusRead     = 1
	smbusByteData = 2
	smbusBlockMax = 32
)

// smbusReadLength is what a byte-data transfer can reach without page
// selection
const smbusReadLength = 256

// struct i2c_smbus_ioctl_data
type smbusIoctlData struct {
	readWrite uint8
	command   uint8
	size      uint32
	data      *[smbusBlockMax + 2]byte
}

// I2CDev reads EEPROMs with SMBus byte transfers through /dev/i2c-N
type I2CDev struct {
	root     string
	first    int
	last     int
	attempts int
	delay    time.Duration
	edid     bool
	log      logrus.FieldLogger
}

// NewI2CDev creates an i2c-dev source
func NewI2CDev(opts Options) *I2CDev {
	return &I2CDev{
		root:     opts.DevRoot,
		first:    opts.FirstAddress,
		last:     opts.LastAddress,
		attempts: opts.Retries,
		delay:    opts.RetryDelay,
		edid:     opts.EDID,
		log:      opts.logger(),
	}
}

// Name returns the source name
func (d *I2CDev) Name() string {
	return "i2c-dev"
}

// Read probes every address of every adapter. An adapter that cannot be
// opened is logged and skipped; an error is returned only when none could.
func (d *I2CDev) Read(ctx context.Context) ([]RawRecord, error) {
	paths, err := filepath.Glob(filepath.Join(d.root, "i2c-*"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no i2c-dev adapters under %s", d.root)
	}

	var (
		records []RawRecord
		opened  int
	)
	for _, path := range paths {
		bus := busNumber(path)
		log := d.log.WithFields(logrus.Fields{"path": path, "bus": bus})

		recs, err := d.readBus(ctx, path, bus, log)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			log.Warn(err)
			continue
		}
		opened++
		records = append(records, recs...)
	}
	if opened == 0 {
		return nil, fmt.Errorf("no i2c-dev adapter could be opened under %s", d.root)
	}
	return records, nil
}

// readBus stops at the first EDID: a display bus carries no modules
func (d *I2CDev) readBus(ctx context.Context, path string, bus int, log logrus.FieldLogger) ([]RawRecord, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer unix.Close(fd)

	funcs, err := unix.IoctlGetInt(fd, i2cFuncs)
	if err != nil {
		return nil, fmt.Errorf("failed to query adapter functionality: %w", err)
	}
	if funcs&i2cFuncSMBusReadByteData == 0 {
		return nil, fmt.Errorf("adapter does not support SMBus byte reads")
	}

	var records []RawRecord
	for addr := d.first; addr <= d.last; addr++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		alog := log.WithField("address", fmt.Sprintf("0x%02x", addr))

		if err := unix.IoctlSetInt(fd, i2cSlaveForce, addr); err != nil {
			alog.Warnf("Failed to select client: %v", err)
			continue
		}
		if _, err := smbusReadByte(fd, 0); err != nil {
			alog.Debug("No device")
			continue
		}

		data, err := d.readDevice(ctx, fd, alog)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			alog.Warn(err)
			continue
		}

		display := edid.IsEDID(data)
		if !display || d.edid {
			records = append(records, RawRecord{Source: path, Bus: bus, Address: addr, Data: data})
		}
		if display {
			alog.Debug("EDID found, skipping rest of bus")
			break
		}
	}
	return records, nil
}

func (d *I2CDev) readDevice(ctx context.Context, fd int, log logrus.FieldLogger) ([]byte, error) {
	data := make([]byte, smbusReadLength)
	for off := range data {
		err := ReadWithRetry(ctx, log.WithField("offset", off), d.attempts, d.delay, func() error {
			b, err := smbusReadByte(fd, uint8(off))
			if err != nil {
				return err
			}
			data[off] = b
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read offset 0x%02x: %w", off, err)
		}
	}
	return data, nil
}

func smbusReadByte(fd int, cmd uint8) (byte, error) {
	var block [smbusBlockMax + 2]byte
	args := smbusIoctlData{
		readWrite: smbusRead,
		command:   cmd,
		size:      smbusByteData,
		data:      &block,
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), i2cSMBus, uintptr(unsafe.Pointer(&args)))
	if errno != 0 {
		return 0, errno
	}
	return block[0], nil
}

// busNumber extracts N from /dev/i2c-N, or -1
func busNumber(path string) int {
	var n int
	if _, err := fmt.Sscanf(filepath.Base(path), "i2c-%d", &n); err != nil {
		return -1
	}
	return n
}
