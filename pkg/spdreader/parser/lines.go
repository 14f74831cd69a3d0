package parser

import (
	"fmt"
	"strings"

	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/report"
	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// Lines renders the module as ordered label/text entries
func (m *Module) Lines() report.Lines {
	var l report.Lines
	switch m.Generation {
	case SDR, DDR, DDR2:
		m.sdramLines(&l)
	case DDR3:
		m.ddr3Lines(&l)
	case DDR4:
		m.ddr4Lines(&l)
	}
	return l
}

func (m *Module) sdramLines(l *report.Lines) {
	l.Add("Vendor", m.Vendor)
	if m.PartNumber != "" {
		l.Add("Part Number", m.PartNumber)
	}
	l.Add("Checksum", m.Checksum.String())
	if m.Organization.Ranks == 0 {
		return
	}

	l.Addf("Part Type", "%s %dMB", m.partType(), m.UsableMB)

	o := m.Organization
	head := fmt.Sprintf("%d rank%s, %d bank%s%s,", o.Ranks, plural(o.Ranks), o.Banks, plural(o.Banks), each(o.Ranks))
	l.Addf("Organisation", "%s %d rows/%d columns (%dMBitx%d)", head, o.Rows, o.Columns, o.RankMbit(0), o.Width)
	if o.AltRows != 0 && o.Ranks > 1 {
		l.Continue(fmt.Sprintf("and %d rows/%d columns (%dMBitx%d)", o.AltRows, o.AltColumns, o.RankMbit(1), o.Width))
	}

	for _, t := range m.Timings {
		cl := t.CLString()
		if m.Generation == DDR {
			cl = fmt.Sprintf("%3.1f", t.CL)
		}
		l.Addf(latencyLabel(t), "%s-%d-%d-%d", cl, t.RCD, t.RP, t.RAS)
	}
}

func (m *Module) ddr3Lines(l *report.Lines) {
	m.revisionLines(l)
	m.vendorLines(l)
	if m.Organization.Ranks == 0 {
		return
	}

	m.capacityLine(l)
	l.Add("Voltage", strings.Join(m.Voltages, " "))

	o := m.Organization
	l.Addf("Organisation", "%d rank%s, %d bank%s%s, %d rows/%d columns (%dMBitx%d)",
		o.Ranks, plural(o.Ranks), o.Banks, plural(o.Banks), each(o.Ranks),
		o.Rows, o.Columns, o.RankMbit(0), o.Width)

	for _, t := range m.Timings {
		l.Add(latencyLabel(t), t.String())
	}

	if m.XMP != nil {
		l.Continue("XMP revision " + m.XMP.Revision)
		for _, p := range m.XMP.Profiles {
			l.Addf(p.Name+" profile", "%dMHz at %s, latencies %s", p.Latencies.FrequencyMHz, p.Voltage, p.Latencies)
		}
	}
}

func (m *Module) ddr4Lines(l *report.Lines) {
	m.revisionLines(l)
	if m.BytesUsed > 256 && !m.VendorInfo {
		l.Add("Vendor", "not available, insufficient data read")
	}
	m.vendorLines(l)
	if m.Organization.Ranks == 0 {
		return
	}

	m.capacityLine(l)
	if m.ExtensionChecksum != nil {
		l.Add("Extension Checksum", m.ExtensionChecksum.String())
	}
	if m.Dimensions != "" {
		l.Add("Dimensions", m.Dimensions)
	}
	l.Add("Voltage", strings.Join(m.Voltages, " "))

	o := m.Organization
	l.Addf("Organisation", "%d rank%s, %d bank group%s, %d bank%s%s, %d rows/%d columns (%dMBitx%d per bank group)",
		o.Ranks, plural(o.Ranks), o.BankGroups, plural(o.BankGroups),
		o.Banks, plural(o.Banks), each(o.BankGroups),
		o.Rows, o.Columns, o.RankMbit(0), o.Width)
	l.Add("Chip Organisation", m.ChipOrganization)
	if m.SecondaryOrganization != "" {
		l.Add("Secondary Organisation", m.SecondaryOrganization)
	}

	if m.Diagnostics.Has(diag.UnknownTimebase) {
		l.Add("Timing", "Unknown timebases, not calculating timing information")
		return
	}
	if cr := m.ClockRange; cr != nil {
		l.Addf("Clock Range", "%.0fMHz - %.0fMHz (%dps - %dps period)", cr.MinMHz, cr.MaxMHz, cr.MaxPeriodPs, cr.MinPeriodPs)
	}
	cls := make([]string, len(m.CASLatencies))
	for i, cl := range m.CASLatencies {
		cls[i] = fmt.Sprintf("%d", cl)
	}
	l.Add("Valid CL values", strings.Join(cls, " "))
	if mt := m.MinTimings; mt != nil {
		l.Addf("Minimum pri timings", "tAA: %gns tRCD: %gns tRP: %gns tRAS: %gns", mt.TAA, mt.TRCD, mt.TRP, mt.TRAS)
	}
	for _, t := range m.Timings {
		l.Add(latencyLabel(t), t.String())
	}
}

// revisionLines emits the SPD revision and CRC entries shared by DDR3/DDR4
func (m *Module) revisionLines(l *report.Lines) {
	rev := m.Revision
	if m.BytesUsed != 0 || m.BytesTotal != 0 {
		rev += fmt.Sprintf(", %d/%d bytes used", m.BytesUsed, m.BytesTotal)
	}
	l.Add("SPD Revision", rev)
	l.Add("Checksum", m.Checksum.String())
}

func (m *Module) vendorLines(l *report.Lines) {
	if !m.VendorInfo {
		return
	}
	l.Addf("Module Vendor", "%s (%04x)", m.Vendor, m.VendorID)
	if m.ChipVendor != "" {
		l.Addf("Chip Vendor", "%s (%04x)", m.ChipVendor, m.ChipVendorID)
	}
	if m.PartNumber != "" {
		l.Add("Part Number", m.PartNumber)
	}
	if m.ManufacturingDate != "" {
		l.Add("Manufactured", m.ManufacturingDate)
	}
	if m.Serial != "" {
		l.Add("Serial Number", m.Serial)
	}
}

func (m *Module) capacityLine(l *report.Lines) {
	if m.ECC {
		l.Addf("Part Type", "%s (ECC) %d/%dMB", m.partType(), m.UsableMB, m.CapacityMB)
		return
	}
	l.Addf("Part Type", "%s %dMB", m.partType(), m.CapacityMB)
}

// partType joins generation, module type and attributes
func (m *Module) partType() string {
	parts := []string{}
	switch m.Generation {
	case DDR3, DDR4:
		parts = append(parts, m.Generation.String())
		if m.ModuleType != "" {
			parts = append(parts, m.ModuleType)
		}
	default:
		parts = append(parts, m.ModuleType)
	}
	parts = append(parts, m.Attributes...)
	return strings.Join(parts, " ")
}

func latencyLabel(t timing.Latencies) string {
	return fmt.Sprintf("Latencies at %dMHz", t.FrequencyMHz)
}

func each(n int) string {
	if n > 1 {
		return " each"
	}
	return ""
}
