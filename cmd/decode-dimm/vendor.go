package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mscrnt/decode-dimm/pkg/jedec"
)

func vendorCmd() *cobra.Command {
	var packed bool

	cmd := &cobra.Command{
		Use:   "vendor ID...",
		Short: "Resolve JEP106 manufacturer ids",
		Long: `Vendor resolves JEP106 manufacturer ids. By default each ID is a
continuation sequence in hex ("7F7F7F0B", "0x7f 0x9b"); with --packed it
is the 16-bit form stored in DDR3 and DDR4 SPD (bank in the low byte).

Examples:
  decode-dimm vendor 7F7F7F0B
  decode-dimm vendor --packed 0xCE80`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				name, err := resolveVendor(arg, packed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", arg, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&packed, "packed", "p", false, "Treat ids as packed 16-bit values")

	return cmd
}

func resolveVendor(arg string, packed bool) (string, error) {
	if packed {
		v, err := strconv.ParseUint(arg, 0, 16)
		if err != nil {
			return "", fmt.Errorf("invalid packed id %q", arg)
		}
		return jedec.ResolvePacked(uint16(v)), nil
	}
	seq, err := jedec.ParseSequence(arg)
	if err != nil {
		return "", err
	}
	return jedec.Resolve(jedec.Pad(seq)), nil
}
