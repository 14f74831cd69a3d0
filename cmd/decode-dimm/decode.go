package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mscrnt/decode-dimm/pkg/decoder"
	"github.com/mscrnt/decode-dimm/pkg/spdreader"
)

func decodeCmd(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "decode FILE...",
		Short: "Decode EEPROM dumps",
		Long: `Decode reads dumps saved as raw binary or as hex text (i2cdump style rows,
"0x" prefixes and commas are accepted) and decodes each as one record.

Examples:
  decode-dimm decode /sys/bus/i2c/devices/0-0050/eeprom
  decode-dimm decode --address 0x51 dimm1.hex`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := -1
			if address != "" {
				v, err := strconv.ParseInt(address, 0, 0)
				if err != nil || v < 0 || v > 0x7F {
					return fmt.Errorf("invalid address %q", address)
				}
				addr = int(v)
			}

			src := &spdreader.Files{Paths: args, Address: addr}
			raws, err := src.Read(cmd.Context())
			if err != nil {
				return err
			}

			recs := decoder.DecodeAll(raws)
			a.logRecords(recs)
			return a.write(cmd.OutOrStdout(), decoder.Reports(recs))
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "SMBus address to label the records with (e.g. 0x50)")

	return cmd
}
