package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mscrnt/decode-dimm/internal/config"
	"github.com/mscrnt/decode-dimm/pkg/decoder"
	"github.com/mscrnt/decode-dimm/pkg/report"
)

// app holds the flags and the state shared by the subcommands
type app struct {
	configPath string
	format     string
	verbose    bool
	logFormat  string

	cfg config.Config
	log *logrus.Logger
}

// setup configures logging and loads the configuration. Flags override
// file values.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q", a.logFormat)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log.WithField("format", cfg.Format).Debug("Configuration loaded")
	return nil
}

// write renders records through the configured sink
func (a *app) write(w io.Writer, records []report.Record) error {
	sink, err := report.New(a.cfg.Format)
	if err != nil {
		return err
	}
	return sink.Write(w, records)
}

// logRecords reports per-record problems on the log; they never fail the
// command
func (a *app) logRecords(recs []*decoder.Record) {
	for _, r := range recs {
		log := a.log.WithFields(logrus.Fields{"path": r.Source, "address": r.Address, "format": r.Format.String()})
		if r.Fatal() {
			log.Warn(r.Status)
			continue
		}
		for _, d := range r.Diagnostics {
			log.Info(d.Message)
		}
	}
}
