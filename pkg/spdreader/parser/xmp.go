package parser

import (
	"fmt"
	"math"

	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// XMP header layout, relative to DDR3XMP
const (
	xmpSignature  = 0x4A0C // bytes 0C 4A
	xmpOrgConf    = 2
	xmpRevision   = 3
	xmpMTB1       = 4 // dividend, divisor
	xmpMTB2       = 6
	xmpProfile1   = 9
	xmpProfileLen = 35
)

// XMP profile layout, relative to the profile start
const (
	xmpVoltage     = 0
	xmpMinTck      = 1
	xmpMinTaa      = 2
	xmpCasLatency  = 3 // LSB, MSB
	xmpMinTrp      = 6
	xmpMinTrcd     = 7
	xmpUpperNibble = 9
	xmpMinTrasLsb  = 10
)

// HasXMP reports whether the XMP signature is present
func HasXMP(data []byte) bool {
	return len(data) >= DDR3XMP+2 && le16(data, DDR3XMP) == xmpSignature
}

// parseXMP decodes the XMP 1.x block embedded in DDR3 SPD
func parseXMP(data []byte) (*XMP, bool) {
	if !HasXMP(data) || len(data) < DDR3XMP+xmpProfile1+2*xmpProfileLen {
		return nil, false
	}
	hdr := data[DDR3XMP:]
	hi, lo := nibbles(hdr[xmpRevision])
	x := &XMP{Revision: fmt.Sprintf("%d.%d", hi, lo)}

	profiles := []struct {
		name string
		bit  byte
		mtb  int
	}{
		{"Certified", 0x01, xmpMTB1},
		{"Extreme", 0x02, xmpMTB2},
	}
	for i, p := range profiles {
		if hdr[xmpOrgConf]&p.bit == 0 {
			continue
		}
		tb := timing.NewMTB(hdr[p.mtb], hdr[p.mtb+1])
		start := xmpProfile1 + i*xmpProfileLen
		x.Profiles = append(x.Profiles, xmpProfile(p.name, hdr[start:start+xmpProfileLen], tb))
	}
	return x, true
}

func xmpProfile(name string, p []byte, tb timing.TimeBase) XMPProfile {
	out := XMPProfile{Name: name, Voltage: xmpVoltageString(p[xmpVoltage])}

	tck := float64(p[xmpMinTck])
	if tck == 0 || tb.MediumPs == 0 {
		return out
	}
	cas := timing.DDR3CAS(p[xmpCasLatency], p[xmpCasLatency+1])
	tras := float64(int(p[xmpUpperNibble]&0x0F)<<8 | int(p[xmpMinTrasLsb]))

	l := timing.Latencies{
		FrequencyMHz: int(math.Round(timing.FrequencyMHz(tck * tb.MediumPs))),
		RCD:          timing.CyclesCeil(float64(p[xmpMinTrcd]), tck),
		RP:           timing.CyclesCeil(float64(p[xmpMinTrp]), tck),
		RAS:          timing.CyclesCeil(tras, tck),
	}
	if cl, ok := cas.Resolve(timing.CyclesCeil(float64(p[xmpMinTaa]), tck)); ok {
		l.CL = float64(cl)
	}
	out.Latencies = l
	return out
}

// xmpVoltageString decodes bits 6:5 as volts and bits 4:0 as 50 mV steps
func xmpVoltageString(v byte) string {
	mv := int((v>>5)&0x03)*1000 + int(v&0x1F)*50
	return fmt.Sprintf("%d.%02dV", mv/1000, (mv%1000)/10)
}
