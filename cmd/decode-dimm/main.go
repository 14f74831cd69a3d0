package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mscrnt/decode-dimm/internal/config"
	"github.com/mscrnt/decode-dimm/internal/version"
	"github.com/mscrnt/decode-dimm/pkg/report"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func buildInfo() version.Info {
	return version.Info{Version: buildVersion, Commit: buildCommit, BuildTime: buildTime}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "decode-dimm",
		Short: "Decode memory module SPD and display EDID EEPROMs",
		Long: `decode-dimm reads the identification EEPROMs of installed memory modules
(JEDEC SPD for SDR, DDR, DDR2, DDR3 and DDR4) and of attached displays
(VESA EDID with the CEA-861 extension) and prints what they describe.

Without a subcommand the host is scanned.

Output formats:
` + report.FormatUsage(),
		Version:       buildInfo().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.scan(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Configuration file (default "+config.DefaultPath+")")
	flags.StringVarP(&a.format, "format", "f", "", "Output format: "+strings.Join(report.Formats(), ", "))
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(scanCmd(a))
	rootCmd.AddCommand(decodeCmd(a))
	rootCmd.AddCommand(vendorCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo().String())
		},
	}
}
