// Package inventory summarises a scan and cross-checks the decoded
// module capacity against the memory the host reports.
package inventory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/mscrnt/decode-dimm/pkg/decoder"
	"github.com/mscrnt/decode-dimm/pkg/detect"
	"github.com/mscrnt/decode-dimm/pkg/report"
)

// MemoryFunc reports host memory
type MemoryFunc func(ctx context.Context) (*mem.VirtualMemoryStat, error)

// Summary counts what a scan found
type Summary struct {
	Modules     int    `json:"modules"`
	Displays    int    `json:"displays"`
	Failed      int    `json:"failed"`
	InstalledMB int    `json:"installedMB"`
	HostMB      uint64 `json:"hostMB,omitempty"`
}

// Summarize counts decoded modules and displays and totals the usable
// module capacity
func Summarize(recs []*decoder.Record) Summary {
	var s Summary
	for _, r := range recs {
		switch {
		case r.Fatal():
			s.Failed++
		case r.Format == detect.EDID:
			s.Displays++
		case r.Module != nil:
			s.Modules++
			s.InstalledMB += r.CapacityMB()
		}
	}
	return s
}

// CheckHost fills HostMB. A nil fn uses gopsutil.
func (s *Summary) CheckHost(ctx context.Context, fn MemoryFunc) error {
	if fn == nil {
		fn = mem.VirtualMemoryWithContext
	}
	vm, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get host memory: %w", err)
	}
	s.HostMB = vm.Total >> 20
	return nil
}

// Lines renders the summary
func (s Summary) Lines() report.Lines {
	var l report.Lines
	l.Addf("Modules", "%d decoded, %dMB installed", s.Modules, s.InstalledMB)
	if s.Displays > 0 {
		l.Addf("Displays", "%d", s.Displays)
	}
	if s.Failed > 0 {
		l.Addf("Failed", "%d record(s) could not be decoded", s.Failed)
	}
	if s.HostMB == 0 || s.InstalledMB == 0 {
		return l
	}

	installed := uint64(s.InstalledMB)
	switch {
	case s.HostMB < installed:
		l.Addf("Host Memory", "%dMB, %dMB less than installed (reserved by firmware or devices)", s.HostMB, installed-s.HostMB)
	case s.HostMB > installed:
		l.Addf("Host Memory", "%dMB, %dMB more than decoded (some modules were not readable)", s.HostMB, s.HostMB-installed)
	default:
		l.Addf("Host Memory", "%dMB, matches installed", s.HostMB)
	}
	return l
}

// Report converts the summary for presentation
func (s Summary) Report() report.Record {
	return report.Record{
		Title:   "Summary",
		Address: -1,
		Format:  "summary",
		Lines:   s.Lines(),
		Detail:  s,
	}
}
