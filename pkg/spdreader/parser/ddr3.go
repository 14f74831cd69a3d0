package parser

import (
	"math"

	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/jedec"
	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// SPD byte offsets for DDR3 (JEDEC Annex K)
const (
	DDR3ModuleType   = 0x03 // Module type, low nibble
	DDR3DensityBanks = 0x04 // SDRAM density and banks
	DDR3Addressing   = 0x05 // Row/column address bits
	DDR3Voltage      = 0x06 // Nominal voltage
	DDR3Organization = 0x07 // Ranks and device width
	DDR3BusWidth     = 0x08 // Bus width and extension
	DDR3MtbDividend  = 0x0A // Medium timebase dividend
	DDR3MtbDivisor   = 0x0B // Medium timebase divisor
	DDR3MinCycleTime = 0x0C // tCKmin
	DDR3CasLatencies = 0x0E // CAS latencies supported, LSB then MSB
	DDR3MinTaa       = 0x10 // tAAmin
	DDR3MinTrcd      = 0x12 // tRCDmin
	DDR3MinTrp       = 0x14 // tRPmin
	DDR3UpperNibbles = 0x15 // tRAS/tRC upper nibbles
	DDR3MinTrasLsb   = 0x16 // tRASmin LSB
	DDR3ModuleMfgID  = 0x75 // Module manufacturer id, packed (117)
	DDR3MfgDate      = 0x78 // Year, week BCD
	DDR3Serial       = 0x7A // Module serial number (4 bytes)
	DDR3CRC          = 0x7E // CRC, LSB then MSB
	DDR3PartNumber   = 0x80 // Part number (18 bytes)
	DDR3DramMfgID    = 0x94 // DRAM manufacturer id, packed (148)
	DDR3XMP          = 0xB0 // XMP header (176)
)

var ddr3ModuleTypes = []string{
	"Undefined", "RDIMM", "UDIMM", "SO-DIMM",
	"MICRO-DIMM", "Mini-RDIMM", "Mini-UDIMM", "Mini-CDIMM",
	"72b-SO-UDIMM", "72b-SO-RDIMM", "72b-SO-CDIMM", "LRDIMM",
	"16b-SO-DIMM", "32b-SO-DIMM",
}

// Standard DDR3 clock frequencies in MHz, fastest first
var ddr3Frequencies = []int{1500, 1466, 1400, 1333, 1200, 1066, 1000, 933, 900, 800, 667, 533, 400}

func ddr3BytesUsed(b byte) int {
	switch b & 0x0F {
	case 1:
		return 128
	case 2:
		return 176
	case 3:
		return 256
	}
	return 0
}

func ddr3BytesTotal(b byte) int {
	if (b>>4)&0x07 == 1 {
		return 256
	}
	return 0
}

// DDR3CRCRange returns the byte count covered by the CRC: bit 7 of byte 0
// limits it to bytes 0..116.
func DDR3CRCRange(b byte) int {
	if b&0x80 != 0 {
		return checksum.CRCRangeShort
	}
	return checksum.CRCRangeFull
}

// parseDDR3 decodes DDR3 SPD data
func parseDDR3(data []byte) (*Module, error) {
	m := &Module{Generation: DDR3}
	if err := requireLength(data, MinLength); err != nil {
		return fail(m, err)
	}

	// SPD information
	used := data[SPDBytesUsed]
	m.Revision = revision(data[SPDRevision])
	if used&0x0F != 0 && used&0x70 != 0 {
		m.BytesUsed = ddr3BytesUsed(used)
		m.BytesTotal = ddr3BytesTotal(used)
	}
	m.Checksum = checksum.VerifyCRC16(data, DDR3CRCRange(used), DDR3CRC)
	if !m.Checksum.Match {
		m.Diagnostics.Add(diag.ChecksumMismatch, "CRC %04X, stored %04X", m.Checksum.Computed, m.Checksum.Expected)
	}

	// Vendor information
	m.VendorInfo = true
	m.VendorID = le16(data, DDR3ModuleMfgID)
	m.Vendor = resolvePacked(m, m.VendorID)
	m.ManufacturingDate = bcdDate(data[DDR3MfgDate], data[DDR3MfgDate+1])
	m.Serial = serial(data, DDR3Serial)
	if ddr3BytesUsed(used) > 128 {
		if id := le16(data, DDR3DramMfgID); id != 0 {
			m.ChipVendorID = id
			m.ChipVendor = resolvePacked(m, id)
		}
		m.PartNumber = text(data, DDR3PartNumber, 18)
	}

	// General module type
	org := data[DDR3Organization]
	ranks := int((org>>3)&0x07) + 1
	if err := checkRanks(ranks); err != nil {
		return fail(m, err)
	}
	banks := 8 << ((data[DDR3DensityBanks] >> 4) & 0x07)
	if err := checkBanks("bank", banks, MaxBanksDDR3); err != nil {
		return fail(m, err)
	}
	addr := data[DDR3Addressing]
	width, ecc := eccWidth(data[DDR3BusWidth])
	m.Organization = Organization{
		Ranks:       ranks,
		Rows:        int((addr>>3)&0x07) + 12,
		Columns:     int(addr&0x07) + 9,
		Banks:       banks,
		Width:       width,
		DeviceWidth: 4 << (org & 0x07),
	}
	m.ECC = ecc
	m.CapacityMB = int(m.Organization.CapacityBytes() >> 20)
	m.UsableMB = m.CapacityMB
	if ecc {
		m.UsableMB = m.CapacityMB * 8 / 9
	}

	if t := int(data[DDR3ModuleType] & 0x0F); t != 0 {
		if t < len(ddr3ModuleTypes) {
			m.ModuleType = ddr3ModuleTypes[t]
		} else {
			m.ModuleType = "Reserved"
		}
	}

	// Voltage
	v := data[DDR3Voltage]
	if v&0x01 == 0 {
		m.Voltages = append(m.Voltages, "1.5V")
	}
	if v&0x02 != 0 {
		m.Voltages = append(m.Voltages, "1.35V")
	}
	if v&0x04 != 0 {
		m.Voltages = append(m.Voltages, "1.25V")
	}

	// Timing
	tb := timing.NewMTB(data[DDR3MtbDividend], data[DDR3MtbDivisor])
	cas := timing.DDR3CAS(data[DDR3CasLatencies], data[DDR3CasLatencies+1])
	m.CASLatencies = cas.Supported()
	m.Timings = ddr3Timings(data, tb, cas)

	if xmp, ok := parseXMP(data); ok {
		m.XMP = xmp
	}
	return m, nil
}

// ddr3Timings evaluates the standard frequencies the module is rated for
func ddr3Timings(data []byte, tb timing.TimeBase, cas timing.CASMap) timing.Profile {
	tck := tb.Ns(int(data[DDR3MinCycleTime]), 0)
	if tck <= 0 {
		return nil
	}
	rated := int(math.Round(1000 / tck))

	taa := tb.Ns(int(data[DDR3MinTaa]), 0)
	trcd := tb.Ns(int(data[DDR3MinTrcd]), 0)
	trp := tb.Ns(int(data[DDR3MinTrp]), 0)
	tras := tb.Ns(int(data[DDR3UpperNibbles]&0x0F)<<8|int(data[DDR3MinTrasLsb]), 0)

	var profile timing.Profile
	for _, f := range ddr3Frequencies {
		if f > rated {
			continue
		}
		l := timing.Latencies{
			FrequencyMHz: f,
			RCD:          timing.Clocks(trcd, f),
			RP:           timing.Clocks(trp, f),
			RAS:          timing.Clocks(tras, f),
		}
		if cl, ok := cas.Resolve(timing.Clocks(taa, f)); ok {
			l.CL = float64(cl)
		}
		profile = append(profile, l)
	}
	return profile
}

// resolvePacked resolves a packed vendor id and records unknown ids
func resolvePacked(m *Module, id uint16) string {
	name := jedec.ResolvePacked(id)
	if name == jedec.Unknown || name == jedec.Invalid {
		m.Diagnostics.Add(diag.UnknownVendorID, "%s vendor id %04x", name, id)
	}
	return name
}
