// Package timing converts SPD time-base encoded values into clock counts.
package timing

import (
	"fmt"
	"math"
	"strconv"
)

// epsilon absorbs float error when a product lands exactly on a clock edge
const epsilon = 1e-9

// ddr4Guard is the fixed correction JEDEC adds before truncating a
// picosecond ratio to clocks (0.974 of a clock).
const ddr4Guard = 974

// TimeBase is a medium/fine time base pair in picoseconds. FinePs is zero
// for formats without a fine correction.
type TimeBase struct {
	MediumPs float64
	FinePs   float64
}

// DDR4 time bases: MTB 125 ps, FTB 1 ps
var DDR4 = TimeBase{MediumPs: 125, FinePs: 1}

// NewMTB builds a time base from the dividend/divisor pair stored in
// DDR3-style SPD (value in ns). A zero divisor yields a zero time base.
func NewMTB(dividend, divisor byte) TimeBase {
	if divisor == 0 {
		return TimeBase{}
	}
	return TimeBase{MediumPs: float64(dividend) * 1000 / float64(divisor)}
}

// Ps returns raw × MTB + fine × FTB
func (tb TimeBase) Ps(raw int, fine int8) float64 {
	return float64(raw)*tb.MediumPs + float64(fine)*tb.FinePs
}

// Ns returns Ps in nanoseconds
func (tb TimeBase) Ns(raw int, fine int8) float64 {
	return tb.Ps(raw, fine) / 1000
}

// Clocks returns ceil(ns × MHz / 1000), the clock count needed to cover ns
// at the given frequency.
func Clocks(ns float64, mhz int) int {
	return int(math.Ceil(ns*float64(mhz)/1000 - epsilon))
}

// CyclesCeil returns ceil(ns / cycleNs). It returns 0 if cycleNs is not
// positive.
func CyclesCeil(ns, cycleNs float64) int {
	if cycleNs <= 0 {
		return 0
	}
	return int(math.Ceil(ns/cycleNs - epsilon))
}

// PsToClocks converts a minimum time to clocks at a clock period, both in
// ps, the way the DDR4 annex specifies: ((min*1000/period)+974)/1000 in
// integer arithmetic. It returns 0 for a non-positive period.
func PsToClocks(minPs, periodPs int) int {
	if periodPs <= 0 {
		return 0
	}
	return (minPs*1000/periodPs + ddr4Guard) / 1000
}

// FrequencyMHz returns the clock rate for a period in ps
func FrequencyMHz(periodPs float64) float64 {
	if periodPs <= 0 {
		return 0
	}
	return 1e6 / periodPs
}

// CASMap is a CAS-latency-supported bitmap. Bit i set means CL Base+i is
// supported.
type CASMap struct {
	Bits  uint32
	Base  int
	Width int
}

// DDR3CAS builds the 15-bit DDR3 bitmap (bytes 14/15) anchored at CL 4
func DDR3CAS(lsb, msb byte) CASMap {
	return CASMap{Bits: (uint32(msb)<<8 | uint32(lsb)) & 0x7FFF, Base: 4, Width: 15}
}

// DDR4CAS builds the 30-bit DDR4 bitmap (bytes 20..23). Bit 7 of the last
// byte selects the high range starting at CL 23 instead of CL 7.
func DDR4CAS(b []byte) CASMap {
	if len(b) < 4 {
		return CASMap{Base: 7, Width: 30}
	}
	m := CASMap{
		Bits:  (uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])) & 0x3FFFFFFF,
		Base:  7,
		Width: 30,
	}
	if b[3]&0x80 != 0 {
		m.Base = 23
	}
	return m
}

// Supports reports whether cl is set in the bitmap
func (m CASMap) Supports(cl int) bool {
	i := cl - m.Base
	if i < 0 || i >= m.Width || i >= 32 {
		return false
	}
	return m.Bits&(1<<uint(i)) != 0
}

// Resolve scans upward from candidate to the first supported CL. It never
// returns a value below candidate. ok is false when nothing at or above
// candidate is supported.
func (m CASMap) Resolve(candidate int) (int, bool) {
	cl := candidate
	if cl < m.Base {
		cl = m.Base
	}
	for ; cl < m.Base+m.Width; cl++ {
		if m.Supports(cl) {
			return cl, true
		}
	}
	return 0, false
}

// Supported lists the supported CL values in ascending order
func (m CASMap) Supported() []int {
	var out []int
	for cl := m.Base; cl < m.Base+m.Width; cl++ {
		if m.Supports(cl) {
			out = append(out, cl)
		}
	}
	return out
}

// Latencies is one row of a timing profile. CL is zero when no supported
// value could be resolved; half clocks occur on DDR.
type Latencies struct {
	FrequencyMHz int     `json:"frequencyMHz"`
	CL           float64 `json:"cl"`
	RCD          int     `json:"trcd"`
	RP           int     `json:"trp"`
	RAS          int     `json:"tras"`
}

// CLString formats CL, or "undefined" when it could not be resolved
func (l Latencies) CLString() string {
	if l.CL == 0 {
		return "undefined"
	}
	return strconv.FormatFloat(l.CL, 'f', -1, 64)
}

// String renders CL-tRCD-tRP-tRAS
func (l Latencies) String() string {
	return fmt.Sprintf("%s-%d-%d-%d", l.CLString(), l.RCD, l.RP, l.RAS)
}

// Profile is an ordered set of latencies, highest frequency first
type Profile []Latencies
