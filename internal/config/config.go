// Package config loads decode-dimm settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mscrnt/decode-dimm/pkg/report"
	"github.com/mscrnt/decode-dimm/pkg/spdreader"
)

// DefaultPath is read when no file is named explicitly
var DefaultPath = "/etc/decode-dimm.toml"

// Config contains the scan and output settings
type Config struct {
	SysfsRoot    string `toml:"sysfs_root"`
	DevRoot      string `toml:"dev_root"`
	FirstAddress int    `toml:"first_address"`
	LastAddress  int    `toml:"last_address"`
	Retries      int    `toml:"retries"`
	RetryDelay   string `toml:"retry_delay"`
	Format       string `toml:"format"`
	EDID         bool   `toml:"edid"`
	HostCheck    bool   `toml:"host_check"`
}

// Default returns the default configuration
func Default() Config {
	opts := spdreader.DefaultOptions()
	return Config{
		SysfsRoot:    opts.SysfsRoot,
		DevRoot:      opts.DevRoot,
		FirstAddress: opts.FirstAddress,
		LastAddress:  opts.LastAddress,
		Retries:      opts.Retries,
		RetryDelay:   opts.RetryDelay.String(),
		Format:       "text",
		EDID:         opts.EDID,
		HostCheck:    true,
	}
}

// Load reads path over the defaults. An empty path reads DefaultPath,
// which may be absent; a named file must exist. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown configuration key %q in %s", undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.SysfsRoot == "" {
		return fmt.Errorf("sysfs_root is required")
	}

	if c.DevRoot == "" {
		return fmt.Errorf("dev_root is required")
	}

	if _, err := report.New(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	if _, err := c.Delay(); err != nil {
		return err
	}

	opts, _ := c.ReaderOptions()
	return opts.Validate()
}

// Delay parses retry_delay
func (c Config) Delay() (time.Duration, error) {
	d, err := time.ParseDuration(c.RetryDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid retry_delay %q: %w", c.RetryDelay, err)
	}
	return d, nil
}

// ReaderOptions converts the scan settings for the byte sources
func (c Config) ReaderOptions() (spdreader.Options, error) {
	delay, err := c.Delay()
	if err != nil {
		return spdreader.Options{}, err
	}
	return spdreader.Options{
		SysfsRoot:    c.SysfsRoot,
		DevRoot:      c.DevRoot,
		FirstAddress: c.FirstAddress,
		LastAddress:  c.LastAddress,
		Retries:      c.Retries,
		RetryDelay:   delay,
		EDID:         c.EDID,
	}, nil
}
