// Package decoder turns raw records into presentable ones: it detects the
// format, checks the length, runs the matching decoder and collects its
// lines and diagnostics. A failure ends only the record it occurs in.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mscrnt/decode-dimm/pkg/detect"
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/edid"
	"github.com/mscrnt/decode-dimm/pkg/report"
	"github.com/mscrnt/decode-dimm/pkg/spdreader"
	"github.com/mscrnt/decode-dimm/pkg/spdreader/parser"
)

// dumpRowBytes is the number of bytes per raw dump row
const dumpRowBytes = 8

// Record is one decoded EEPROM. Status is the message of the condition
// that ended decoding early, empty when decoding completed.
type Record struct {
	Title   string
	Source  string
	Address int
	Format  detect.Format

	Module *parser.Module
	EDID   *edid.EDID

	Lines       report.Lines
	Status      string
	Diagnostics diag.List
}

// Decode decodes one raw record
func Decode(raw spdreader.RawRecord) *Record {
	rec := &Record{
		Title:   Title(raw),
		Source:  raw.Source,
		Address: raw.Address,
	}
	data := raw.Data

	res, err := detect.Detect(data)
	rec.Format = res.Format
	if err != nil {
		rec.fail(err)
		if d, ok := err.(diag.Diagnostic); ok && d.Kind == diag.UnsupportedMemoryType {
			rec.Lines = dumpLines(data)
		}
		return rec
	}
	if err := res.Check(len(data)); err != nil {
		rec.fail(err)
		return rec
	}

	switch res.Format {
	case detect.EDID:
		e, err := edid.Parse(data)
		rec.EDID = e
		if e != nil {
			rec.Lines = e.Lines()
			rec.collect(e.Diagnostics)
		}
		if err != nil {
			rec.fail(err)
		}
	default:
		m, err := parser.ParseSPD(data)
		rec.Module = m
		if m != nil {
			rec.Lines = m.Lines()
			rec.collect(m.Diagnostics)
		}
		if err != nil {
			rec.fail(err)
		}
	}
	return rec
}

// DecodeAll decodes every record in order
func DecodeAll(raws []spdreader.RawRecord) []*Record {
	out := make([]*Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Decode(raw))
	}
	return out
}

// Title returns the heading printed above a record
func Title(raw spdreader.RawRecord) string {
	switch {
	case raw.Slot() > 0:
		return fmt.Sprintf("Analyzing client 0x%02x (Probably slot %d)", raw.Address, raw.Slot())
	case raw.Address >= 0:
		return fmt.Sprintf("Analyzing client 0x%02x", raw.Address)
	case raw.Source != "":
		return "Analyzing " + raw.Source
	}
	return "Analyzing record"
}

// Fatal reports whether decoding ended early
func (r *Record) Fatal() bool {
	return r.Status != ""
}

// Err returns the condition that ended decoding, or nil
func (r *Record) Err() error {
	if d, ok := r.Diagnostics.Fatal(); ok {
		return d
	}
	return nil
}

// CapacityMB returns the usable capacity of a decoded module, or 0
func (r *Record) CapacityMB() int {
	if r.Module == nil || r.Fatal() {
		return 0
	}
	return r.Module.UsableMB
}

// Report converts the record for presentation
func (r *Record) Report() report.Record {
	out := report.Record{
		Title:   r.Title,
		Source:  r.Source,
		Address: r.Address,
		Format:  r.Format.String(),
		Lines:   r.Lines,
		Status:  r.Status,
	}
	for _, d := range r.Diagnostics {
		if !d.Kind.Fatal() {
			out.Diagnostics = append(out.Diagnostics, d.Message)
		}
	}
	switch {
	case r.Module != nil:
		out.Detail = r.Module
	case r.EDID != nil:
		out.Detail = r.EDID
	}
	return out
}

// Reports converts records for presentation
func Reports(recs []*Record) []report.Record {
	out := make([]report.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Report())
	}
	return out
}

// fail records the terminating condition. Errors that are not
// diagnostics are kept as their message.
func (r *Record) fail(err error) {
	var d diag.Diagnostic
	if errors.As(err, &d) {
		r.collect(diag.List{d})
	}
	r.Status = err.Error()
}

// collect appends diagnostics not already recorded
func (r *Record) collect(list diag.List) {
	for _, d := range list {
		dup := false
		for _, have := range r.Diagnostics {
			if have == d {
				dup = true
				break
			}
		}
		if !dup {
			r.Diagnostics = append(r.Diagnostics, d)
		}
	}
}

// dumpLines renders the record as rows of comma separated hex bytes
func dumpLines(data []byte) report.Lines {
	var l report.Lines
	for off := 0; off < len(data); off += dumpRowBytes {
		end := off + dumpRowBytes
		if end > len(data) {
			end = len(data)
		}
		cells := make([]string, 0, dumpRowBytes)
		for _, b := range data[off:end] {
			cells = append(cells, fmt.Sprintf("0x%02x", b))
		}
		label := ""
		if off == 0 {
			label = "Raw Data"
		}
		l.Add(label, strings.Join(cells, ", "))
	}
	return l
}
