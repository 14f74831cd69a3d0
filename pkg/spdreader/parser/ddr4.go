package parser

import (
	"fmt"

	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// SPD byte offsets for DDR4 (JEDEC Annex L)
const (
	SPDModuleType      = 0x03 // Module Type
	SPDDensityBanks    = 0x04 // SDRAM Density and Banks
	SPDAddressing      = 0x05 // SDRAM Addressing
	SPDPrimaryPackage  = 0x06 // Primary SDRAM package type
	SPDSecondaryPkg    = 0x0A // Secondary SDRAM package type
	SPDVoltage         = 0x0B // Module nominal voltage
	SPDModuleOrg       = 0x0C // Module Organization
	SPDPrimaryBus      = 0x0D // Module Memory Bus Width
	SPDTimebases       = 0x11 // Timebases
	SPDMinCycleTime    = 0x12 // Minimum Cycle Time (tCKAVGmin)
	SPDMaxCycleTime    = 0x13 // Maximum Cycle Time (tCKAVGmax)
	SPDCasLatencies1   = 0x14 // CAS Latencies Supported, First Byte
	SPDMinCasLatency   = 0x18 // Minimum CAS Latency Time (tAAmin)
	SPDMinRasToCas     = 0x19 // Minimum RAS to CAS Delay Time (tRCDmin)
	SPDMinRasPrecharge = 0x1A // Minimum Row Precharge Delay Time (tRPmin)
	SPDUpperNibbles    = 0x1B // Upper nibbles for tRAS and tRC
	SPDMinActive       = 0x1C // Minimum Active to Precharge Delay Time (tRASmin)
	SPDFineTrp         = 0x79 // Fine offset for tRPmin
	SPDFineTrcd        = 0x7A // Fine offset for tRCDmin
	SPDFineTaa         = 0x7B // Fine offset for tAAmin
	SPDFineMaxTck      = 0x7C // Fine offset for tCKAVGmax
	SPDFineMinTck      = 0x7D // Fine offset for tCKAVGmin
	SPDBaseCRC         = 0x7E // CRC for bytes 0..125

	// Module-specific section (starts at 128)
	SPDModuleHeight    = 0x80 // Raw card extension, module nominal height
	SPDModuleThickness = 0x81 // Module maximum thickness
	SPDModuleCRC       = 0xFE // CRC for bytes 128..253

	SPDModuleMfgIDLsb = 0x140 // Module Manufacturer ID Code, LSB
	SPDModuleMfgDateY = 0x143 // Module Manufacturing Date Year
	SPDModuleSerial   = 0x145 // Module Serial Number (4 bytes)
	SPDModulePartNum  = 0x149 // Module Part Number (20 bytes)
	SPDDramMfgIDLsb   = 0x15E // DRAM Manufacturer ID Code, LSB
)

// DDR4VendorLength is the buffer length needed for the manufacturing block
const DDR4VendorLength = 384

var ddr4ModuleTypes = [16]string{
	"Extended", "RDIMM", "UDIMM", "SO-DIMM",
	"LRDIMM", "Mini-RDIMM", "Mini-UDIMM", "Reserved",
	"72b-SO-RDIMM", "72b-SO-UDIMM", "Reserved", "Reserved",
	"16b-SO-DIMM", "32b-SO-DIMM", "Reserved", "Reserved",
}

// Standard DDR4 clocks and their periods in ps, fastest first
var ddr4Frequencies = []struct {
	mhz, periodPs int
}{
	{1600, 625},
	{1466, 682},
	{1333, 750},
	{1200, 833},
	{933, 1072},
	{667, 1499},
}

// DDR4BytesUsed decodes the bytes-used nibble of byte 0
func DDR4BytesUsed(b byte) int {
	switch b & 0x0F {
	case 1:
		return 128
	case 2:
		return 256
	case 3:
		return 384
	case 4:
		return 512
	}
	return 0
}

// DDR4BytesTotal decodes the SPD device size field of byte 0
func DDR4BytesTotal(b byte) int {
	switch (b >> 4) & 0x07 {
	case 1:
		return 256
	case 2:
		return 512
	}
	return 0
}

// ddr4Unbuffered reports module types that carry the unbuffered block
func ddr4Unbuffered(t byte) bool {
	switch t & 0x0F {
	case 0x02, 0x03, 0x06, 0x09, 0x0C, 0x0D:
		return true
	}
	return false
}

// ddr4DensityMbit returns the die density in Mbit, or 0 when reserved
func ddr4DensityMbit(b byte) int {
	switch b & 0x0F {
	case 0:
		return 256
	case 1:
		return 512
	case 2:
		return 1024
	case 3:
		return 2048
	case 4:
		return 4096
	case 5:
		return 8192
	case 6:
		return 16384
	case 7:
		return 32768
	case 8:
		return 12288
	case 9:
		return 24576
	}
	return 0
}

// ddr4SecondaryDensityMbit applies the secondary package density ratio
func ddr4SecondaryDensityMbit(density, pkg byte) int {
	ratio := (pkg >> 2) & 0x03
	d := density & 0x0F
	switch ratio {
	case 0:
		return ddr4DensityMbit(density)
	case 1:
		return map[byte]int{1: 256, 2: 512, 3: 1024, 4: 2048, 5: 4096, 6: 12288, 7: 24576, 8: 8192, 9: 16384}[d]
	case 2:
		return map[byte]int{2: 256, 3: 512, 4: 1024, 5: 2048, 6: 8192, 7: 16384, 8: 4096, 9: 12288}[d]
	}
	return 0
}

// ddr4Package names a package type byte
func ddr4Package(pkg byte) string {
	dies := int((pkg >> 4) & 0x07)
	switch pkg & 0x03 {
	case 0:
		if pkg&0x80 != 0 {
			return "Unspecified Non-Monolithic Device"
		}
		return "SDP (Single Die Package)"
	case 1:
		switch dies {
		case 1:
			return "DDP (Dual Die Package)"
		case 2:
			return "QDP (Quad Die Package)"
		}
		return "Unknown Multi Die Package"
	case 2:
		if dies == 0 {
			return "Unknown single load stack"
		}
		return fmt.Sprintf("%dH 3DS (%d SDRAM die single load stack)", dies, dies)
	}
	return "(Reserved)"
}

func ddr4Height(b byte) string {
	h := int(b & 0x1F)
	switch h {
	case 0:
		return "<= 15mm"
	case 31:
		return ">= 45mm"
	}
	return fmt.Sprintf("%dmm - %dmm", 14+h, 15+h)
}

func ddr4Thickness(v int) string {
	switch v {
	case 0:
		return "<= 1mm"
	case 15:
		return "> 15mm"
	}
	return fmt.Sprintf("%dmm - %dmm", v, v+1)
}

// parseDDR4 parses DDR4 SPD data
func parseDDR4(data []byte) (*Module, error) {
	m := &Module{Generation: DDR4}
	if err := requireLength(data, MinLength); err != nil {
		return fail(m, err)
	}

	// SPD information
	used := data[SPDBytesUsed]
	m.Revision = revision(data[SPDRevision])
	if used&0x0F != 0 && used&0x70 != 0 {
		m.BytesUsed = DDR4BytesUsed(used)
		m.BytesTotal = DDR4BytesTotal(used)
	}
	m.Checksum = checksum.VerifyCRC16(data, checksum.CRCRangeFull, SPDBaseCRC)
	if !m.Checksum.Match {
		m.Diagnostics.Add(diag.ChecksumMismatch, "CRC %04X, stored %04X", m.Checksum.Computed, m.Checksum.Expected)
	}

	// Vendor information; a short read leaves VendorInfo unset
	if m.BytesUsed > 256 {
		if len(data) >= DDR4VendorLength {
			m.VendorInfo = true
			m.VendorID = le16(data, SPDModuleMfgIDLsb)
			m.Vendor = resolvePacked(m, m.VendorID)
			if id := le16(data, SPDDramMfgIDLsb); id != 0 {
				m.ChipVendorID = id
				m.ChipVendor = resolvePacked(m, id)
			}
			m.PartNumber = text(data, SPDModulePartNum, 20)
			m.Serial = serial(data, SPDModuleSerial)
			m.ManufacturingDate = bcdDate(data[SPDModuleMfgDateY], data[SPDModuleMfgDateY+1])
		}
	}

	// General module type
	org := data[SPDModuleOrg]
	ranks := int((org>>3)&0x07) + 1
	if err := checkRanks(ranks); err != nil {
		return fail(m, err)
	}
	density := data[SPDDensityBanks]
	banks := 4 << ((density >> 4) & 0x03)
	groups := 1 << ((density >> 6) & 0x03)
	if err := checkBanks("bank", banks, MaxBanksDDR4); err != nil {
		return fail(m, err)
	}
	if err := checkBanks("bank group", groups, MaxBankGroupsDDR4); err != nil {
		return fail(m, err)
	}
	addr := data[SPDAddressing]
	width, ecc := eccWidth(data[SPDPrimaryBus])
	m.Organization = Organization{
		Ranks:       ranks,
		Rows:        int((addr>>3)&0x07) + 12,
		Columns:     int(addr&0x07) + 9,
		Banks:       banks,
		BankGroups:  groups,
		Width:       width,
		DeviceWidth: 4 << (org & 0x07),
	}
	m.ECC = ecc
	m.CapacityMB = int(m.Organization.CapacityBytes() >> 20)
	m.UsableMB = m.CapacityMB
	if ecc {
		m.UsableMB = m.CapacityMB * 8 / 9
	}

	moduleType := data[SPDModuleType]
	if moduleType&0x0F != 0 {
		m.ModuleType = ddr4ModuleTypes[moduleType&0x0F]
	}
	if ddr4Unbuffered(moduleType) {
		ext := checksum.VerifyCRC16(data[128:], checksum.CRCRangeFull, SPDModuleCRC-128)
		m.ExtensionChecksum = &ext
		if !ext.Match {
			m.Diagnostics.Add(diag.ChecksumMismatch, "extension CRC %04X, stored %04X", ext.Computed, ext.Expected)
		}
		thickness := data[SPDModuleThickness]
		m.Dimensions = fmt.Sprintf("Height: %s, Thickness above PCB: Front %s, Back %s",
			ddr4Height(data[SPDModuleHeight]),
			ddr4Thickness(int(thickness&0x0F)),
			ddr4Thickness(int(thickness>>4)))
	}

	// Voltage
	v := data[SPDVoltage]
	if v&0x01 != 0 {
		m.Voltages = append(m.Voltages, "1.2V operable")
	}
	if v&0x02 != 0 {
		m.Voltages = append(m.Voltages, "1.2V endurant")
	}
	if v&0xFC != 0 {
		m.Voltages = append(m.Voltages, "(Unknown)")
	}

	// Chip organisation
	primary := data[SPDPrimaryPackage]
	perDie := ""
	if primary&0x80 != 0 {
		perDie = " per die"
	}
	m.ChipOrganization = fmt.Sprintf("%s, %sBitx%d%s",
		ddr4Package(primary), megabits(ddr4DensityMbit(density)), m.Organization.DeviceWidth, perDie)
	if secondary := data[SPDSecondaryPkg]; secondary != 0 {
		m.SecondaryOrganization = fmt.Sprintf("%s, %sBitx%d%s",
			ddr4Package(secondary), megabits(ddr4SecondaryDensityMbit(density, secondary)), m.Organization.DeviceWidth, perDie)
	}

	// Primary timings
	if data[SPDTimebases] != 0 {
		m.Diagnostics.Add(diag.UnknownTimebase, "Unknown timebases, not calculating timing information")
		return m, nil
	}
	ddr4Timings(m, data)
	return m, nil
}

// ddr4Timings fills clock range, CAS list, minimum timings and latencies
func ddr4Timings(m *Module, data []byte) {
	tb := timing.DDR4
	fine := func(off int) int8 { return int8(data[off]) }

	tckMin := int(tb.Ps(int(data[SPDMinCycleTime]), fine(SPDFineMinTck)))
	tckMax := int(tb.Ps(int(data[SPDMaxCycleTime]), fine(SPDFineMaxTck)))
	cr := &ClockRange{MinPeriodPs: tckMin, MaxPeriodPs: tckMax}
	cr.MaxMHz = timing.FrequencyMHz(float64(tckMin))
	cr.MinMHz = timing.FrequencyMHz(float64(tckMax))
	m.ClockRange = cr

	cas := timing.DDR4CAS(data[SPDCasLatencies1 : SPDCasLatencies1+4])
	m.CASLatencies = cas.Supported()

	taa := int(tb.Ps(int(data[SPDMinCasLatency]), fine(SPDFineTaa)))
	trcd := int(tb.Ps(int(data[SPDMinRasToCas]), fine(SPDFineTrcd)))
	trp := int(tb.Ps(int(data[SPDMinRasPrecharge]), fine(SPDFineTrp)))
	tras := int(tb.Ps(int(data[SPDUpperNibbles]&0x0F)<<8|int(data[SPDMinActive]), 0))
	m.MinTimings = &MinTimings{
		TAA:  float64(taa) / 1000,
		TRCD: float64(trcd) / 1000,
		TRP:  float64(trp) / 1000,
		TRAS: float64(tras) / 1000,
	}

	for _, f := range ddr4Frequencies {
		if float64(f.mhz) < cr.MinMHz || float64(f.mhz) > cr.MaxMHz {
			continue
		}
		l := timing.Latencies{
			FrequencyMHz: f.mhz,
			RCD:          timing.PsToClocks(trcd, f.periodPs),
			RP:           timing.PsToClocks(trp, f.periodPs),
			RAS:          timing.PsToClocks(tras, f.periodPs),
		}
		if cl, ok := cas.Resolve(timing.PsToClocks(taa, f.periodPs)); ok {
			l.CL = float64(cl)
		}
		m.Timings = append(m.Timings, l)
	}
}
