package parser

import (
	"github.com/mscrnt/decode-dimm/pkg/diag"
)

// Common SPD byte offsets
const (
	SPDBytesUsed = 0x00 // Bytes written (SDR family) / bytes used and CRC coverage
	SPDRevision  = 0x01 // SPD revision (DDR3/DDR4) / total bytes (SDR family)
	SPDDramType  = 0x02 // DRAM device type
)

// Memory types
const (
	DramTypeSDR   = 0x04
	DramTypeDDR   = 0x07
	DramTypeDDR2  = 0x08
	DramTypeDDR3  = 0x0B
	DramTypeDDR4  = 0x0C
	DramTypeDDR4E = 0x0E
)

// MaxRanks is the largest rank count the decoders accept
const MaxRanks = 8

// Largest bank counts per device the decoders accept. Larger values come
// from reserved encodings or corrupt data.
const (
	MaxBanksSDRAM     = 8
	MaxBanksDDR3      = 64
	MaxBanksDDR4      = 8
	MaxBankGroupsDDR4 = 4
)

// MinLength is the smallest buffer any SPD decoder accepts
const MinLength = 256

// ParseSPD decodes raw SPD data. Non-fatal conditions are recorded in
// Module.Diagnostics; a fatal one is returned as a diag.Diagnostic error
// together with whatever was decoded before it.
func ParseSPD(data []byte) (*Module, error) {
	if len(data) < 3 {
		return nil, diag.New(diag.InsufficientData, "SPD data too short: %d bytes", len(data))
	}

	switch data[SPDDramType] {
	case DramTypeSDR:
		return parseSDRAM(data, SDR)
	case DramTypeDDR:
		return parseSDRAM(data, DDR)
	case DramTypeDDR2:
		return parseSDRAM(data, DDR2)
	case DramTypeDDR3:
		return parseDDR3(data)
	case DramTypeDDR4, DramTypeDDR4E:
		return parseDDR4(data)
	default:
		return nil, diag.New(diag.UnsupportedMemoryType, "Unsupported memory type %d", data[SPDDramType])
	}
}

// requireLength reports InsufficientData when data is shorter than n
func requireLength(data []byte, n int) error {
	if len(data) < n {
		return diag.New(diag.InsufficientData, "Insufficient data read (%d of %d bytes), aborting decode", len(data), n)
	}
	return nil
}

// checkRanks reports UnsupportedRankCount above MaxRanks
func checkRanks(ranks int) error {
	if ranks > MaxRanks {
		return diag.New(diag.UnsupportedRankCount, "Unsupported rank count: support for a minimum of %d ranks required", ranks)
	}
	return nil
}

// checkBanks reports UnsupportedBankCount when n exceeds limit. what names
// the unit, "bank" or "bank group".
func checkBanks(what string, n, limit int) error {
	if n > limit {
		return diag.New(diag.UnsupportedBankCount, "Unsupported %s count: support for a minimum of %d %ss required", what, n, what)
	}
	return nil
}

// fail records a fatal diagnostic on m and returns it as the error
func fail(m *Module, err error) (*Module, error) {
	if d, ok := err.(diag.Diagnostic); ok {
		m.Diagnostics = append(m.Diagnostics, d)
	}
	return m, err
}
