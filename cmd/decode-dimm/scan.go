package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mscrnt/decode-dimm/pkg/decoder"
	"github.com/mscrnt/decode-dimm/pkg/inventory"
	"github.com/mscrnt/decode-dimm/pkg/spdreader"
)

func scanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Decode every module and display EEPROM on this host",
		Long: `Scan reads SPD EEPROMs through the kernel eeprom/ee1004 drivers in sysfs,
falling back to SMBus reads through /dev/i2c-* when no driver is bound.
Display EDIDs are read from the DRM connectors.

Examples:
  # Scan and print text
  decode-dimm scan

  # Scan and write an HTML page
  decode-dimm scan --format html > dimms.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.scan(cmd)
		},
	}
}

func (a *app) scan(cmd *cobra.Command) error {
	ctx := cmd.Context()

	opts, err := a.cfg.ReaderOptions()
	if err != nil {
		return err
	}
	opts.Log = a.log

	reader, err := spdreader.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	raws, err := reader.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	a.log.Debugf("Read %d record(s)", len(raws))

	recs := decoder.DecodeAll(raws)
	a.logRecords(recs)

	out := decoder.Reports(recs)
	if a.cfg.HostCheck {
		summary := inventory.Summarize(recs)
		if err := summary.CheckHost(ctx, nil); err != nil {
			a.log.Warn(err)
		}
		out = append(out, summary.Report())
	}
	return a.write(cmd.OutOrStdout(), out)
}
