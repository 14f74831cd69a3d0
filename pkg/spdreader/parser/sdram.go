package parser

import (
	"math"

	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/jedec"
	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// SPD byte offsets for SDR, DDR and DDR2 (JEDEC Annex D / E)
const (
	SDRRowAddr     = 0x03 // Row address bits, second rank in the high nibble (SDR/DDR)
	SDRColAddr     = 0x04 // Column address bits, second rank in the high nibble (SDR/DDR)
	SDRRanks       = 0x05 // Number of ranks
	SDRDataWidth   = 0x06 // Module data width LSB, MSB follows
	SDRCycleMax0   = 0x09 // Minimum cycle time at highest CL
	SDRConfigType  = 0x0B // Parity / ECC configuration
	SDRBanks       = 0x11 // Banks per device
	SDRCasLatency  = 0x12 // CAS latency bitmap
	SDRModuleType  = 0x14 // DDR2 module type
	SDRModuleAttr  = 0x15 // Module attributes
	SDRCycleMax1   = 0x17 // Minimum cycle time one step below highest CL
	SDRCycleMax2   = 0x19 // Minimum cycle time two steps below highest CL
	SDRMinTrp      = 0x1B // tRP
	SDRMinTrcd     = 0x1D // tRCD
	SDRMinTras     = 0x1E // tRAS in ns
	SDRChecksum    = 0x3F // Checksum over bytes 0..62
	SDRVendorID    = 0x40 // JEDEC ID, 8 bytes with continuation codes
	SDRPartNumber  = 0x49 // Part number, 18 bytes
	SDRVendorBytes = 71   // bytes written required for the vendor id
	SDRPartBytes   = 90   // bytes written required for the part number
)

// Configuration type bits (byte 11)
const (
	configDataParity = 1 << 0
	configDataECC    = 1 << 1
	configAddrParity = 1 << 2
)

// Module attribute bits (byte 21, SDR/DDR)
const (
	attrBuffered   = 1 << 0
	attrRegistered = 1 << 1
)

// DDR2 module types (byte 20)
var ddr2ModuleTypes = map[byte]string{
	0x00: "unspecified module type",
	0x01: "RDIMM",
	0x02: "UDIMM",
	0x04: "SO-DIMM",
	0x06: "72b-SO-CDIMM",
	0x07: "72b-SO-RDIMM",
	0x08: "Micro-DIMM",
	0x10: "Mini-RDIMM",
	0x20: "Mini-UDIMM",
}

func ddr2ModuleType(t byte) (name string, registered bool) {
	name, ok := ddr2ModuleTypes[t]
	if !ok {
		return "invalid module type", false
	}
	return name, t == 0x01 || t == 0x07 || t == 0x10
}

// parseSDRAM decodes the combined SDR/DDR/DDR2 layout
func parseSDRAM(data []byte, gen Generation) (*Module, error) {
	m := &Module{Generation: gen}
	if err := requireLength(data, MinLength); err != nil {
		return fail(m, err)
	}

	m.Checksum = checksum.VerifySum8(data, checksum.SDRAMRange)
	if !m.Checksum.Match {
		m.Diagnostics.Add(diag.ChecksumMismatch, "checksum %02X, stored %02X", m.Checksum.Computed, m.Checksum.Expected)
	}

	// Vendor information
	written := int(data[SPDBytesUsed])
	m.Vendor = jedec.Unknown
	if written >= SDRVendorBytes {
		m.VendorInfo = true
		m.Vendor = jedec.Resolve(data[SDRVendorID : SDRVendorID+8])
		if m.Vendor == jedec.Unknown {
			m.Diagnostics.Add(diag.UnknownVendorID, "unknown vendor id % X", data[SDRVendorID:SDRVendorID+8])
		}
		if written >= SDRPartBytes {
			m.PartNumber = text(data, SDRPartNumber, 18)
		}
	}

	// General module type
	ranks := int(data[SDRRanks] & 0x07)
	if gen == DDR2 {
		ranks++
	}
	if err := checkRanks(ranks); err != nil {
		return fail(m, err)
	}

	banks := int(data[SDRBanks])
	if err := checkBanks("bank", banks, MaxBanksSDRAM); err != nil {
		return fail(m, err)
	}

	org := Organization{
		Ranks: ranks,
		Banks: banks,
		Width: int(data[SDRDataWidth]) + int(data[SDRDataWidth+1])*256,
	}
	org.Rows, org.AltRows = sdramAddressBits(data[SDRRowAddr], gen)
	org.Columns, org.AltColumns = sdramAddressBits(data[SDRColAddr], gen)
	if org.AltRows == org.Rows && org.AltColumns == org.Columns {
		org.AltRows, org.AltColumns = 0, 0
	}
	m.Organization = org

	for r := 0; r < ranks; r++ {
		m.CapacityMB += org.RankMbit(r) * (org.Width / 8)
	}
	m.UsableMB = m.CapacityMB

	switch gen {
	case SDR:
		m.ModuleType = "SDR SDRAM"
	case DDR:
		m.ModuleType = "DDR SDRAM"
	case DDR2:
		name, registered := ddr2ModuleType(data[SDRModuleType])
		m.ModuleType = "DDR2 " + name
		if registered {
			m.Attributes = append(m.Attributes, "registered")
		}
	}
	if gen != DDR2 {
		if data[SDRModuleAttr]&attrBuffered != 0 {
			m.Attributes = append(m.Attributes, "buffered")
		}
		if data[SDRModuleAttr]&attrRegistered != 0 {
			m.Attributes = append(m.Attributes, "registered")
		}
	}

	config := data[SDRConfigType]
	switch {
	case config&configDataECC != 0:
		m.Attributes = append(m.Attributes, "data ECC")
		m.ECC = true
	case config&configDataParity != 0:
		m.Attributes = append(m.Attributes, "parity")
		m.ECC = true
	}
	if m.ECC {
		m.UsableMB = int(math.Ceil(float64(m.CapacityMB) * 8 / 9))
	}
	if config&configAddrParity != 0 {
		m.Attributes = append(m.Attributes, "address/command parity")
	}

	m.Timings = sdramTimings(data, gen)
	return m, nil
}

// sdramAddressBits splits a row or column byte into the first rank value
// and the value for the remaining ranks. Values below 7 are offset by 15.
func sdramAddressBits(b byte, gen Generation) (first, rest int) {
	hi, lo := nibbles(b)
	first = lo
	if gen != DDR2 {
		rest = hi
	}
	if rest == 0 {
		rest = first
	}
	if first < 7 {
		first += 15
	}
	if rest < 7 {
		rest += 15
	}
	return first, rest
}

// sdramTimings walks the CAS bitmap from the highest supported CL down,
// up to three steps, each with its own cycle-time byte.
func sdramTimings(data []byte, gen Generation) timing.Profile {
	var profile timing.Profile
	cycleBytes := [3]int{SDRCycleMax0, SDRCycleMax1, SDRCycleMax2}

	cas := data[SDRCasLatency]
	maxBit := -1
	for bit := 6; bit >= 0; bit-- {
		if cas&(1<<uint(bit)) == 0 {
			continue
		}
		if maxBit < 0 {
			maxBit = bit
		}
		step := maxBit - bit
		if step >= len(cycleBytes) {
			break
		}
		cycNs := sdramCycleNs(data[cycleBytes[step]])
		if cycNs <= 0 {
			continue
		}

		l := timing.Latencies{
			FrequencyMHz: int(1000 / cycNs),
			RAS:          timing.CyclesCeil(float64(data[SDRMinTras]), cycNs),
		}
		trcd := float64(data[SDRMinTrcd])
		trp := float64(data[SDRMinTrp])
		switch gen {
		case SDR:
			l.CL = float64(1 + bit)
		case DDR:
			l.CL = 1 + float64(bit)*0.5
			trcd /= 4
			trp /= 4
		case DDR2:
			l.CL = float64(bit)
			trcd /= 4
			trp /= 4
		}
		l.RCD = timing.CyclesCeil(trcd, cycNs)
		l.RP = timing.CyclesCeil(trp, cycNs)
		profile = append(profile, l)
	}
	return profile
}
