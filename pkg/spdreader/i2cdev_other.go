//go:build !linux

package spdreader

import (
	"context"
	"errors"
)

// I2CDev is only functional on linux
type I2CDev struct{}

// NewI2CDev creates an i2c-dev source (stub for non-linux)
func NewI2CDev(Options) *I2CDev {
	return &I2CDev{}
}

// Name returns the source name
func (d *I2CDev) Name() string {
	return "i2c-dev"
}

// Read always fails on this platform
func (d *I2CDev) Read(context.Context) ([]RawRecord, error) {
	return nil, errors.New("i2c-dev is not supported on this platform")
}
