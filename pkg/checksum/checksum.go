// Package checksum implements the fixed-range integrity checks used by SPD
// and EDID records.
package checksum

import "fmt"

// SDRAMRange is the number of leading bytes covered by the SDR/DDR/DDR2
// checksum; the sum itself is stored in the byte that follows.
const SDRAMRange = 63

// CRC16 ranges for DDR3 and DDR4
const (
	CRCRangeFull  = 126
	CRCRangeShort = 117
)

// Result is the outcome of a checksum comparison. Both values are always
// populated; a mismatch never prevents further decoding. ZeroSum results
// have no stored value; Computed is the residual of the block sum.
type Result struct {
	Computed uint16 `json:"computed"`
	Expected uint16 `json:"expected"`
	Match    bool   `json:"match"`
	Width    int    `json:"width"` // significant bits: 8 or 16
	ZeroSum  bool   `json:"zero_sum,omitempty"`
}

// String formats the result the way the decoders report it. A mismatch
// against a stored value shows both, e.g. "8B25 (stored 8B24), not correct".
func (r Result) String() string {
	verb := "%04X"
	if r.Width == 8 {
		verb = "%02X"
	}
	if r.Match {
		return fmt.Sprintf(verb+", correct", r.Computed)
	}
	if r.ZeroSum {
		return fmt.Sprintf(verb+", not correct", r.Computed)
	}
	return fmt.Sprintf(verb+" (stored "+verb+"), not correct", r.Computed, r.Expected)
}

// Sum8 returns the sum of data[0:n] modulo 256. n is clamped to len(data).
func Sum8(data []byte, n int) uint8 {
	if n > len(data) {
		n = len(data)
	}
	var sum uint8
	for _, b := range data[:n] {
		sum += b
	}
	return sum
}

// CRC16 computes a CRC-16/XMODEM (poly 0x1021, init 0, MSB first, no final
// xor) over data[0:n]. n is clamped to len(data).
func CRC16(data []byte, n int) uint16 {
	if n > len(data) {
		n = len(data)
	}
	var crc uint16
	for _, b := range data[:n] {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// VerifySum8 compares the 8-bit sum of data[0:n] with the byte at data[n]
func VerifySum8(data []byte, n int) Result {
	r := Result{Computed: uint16(Sum8(data, n)), Width: 8}
	if n < len(data) {
		r.Expected = uint16(data[n])
		r.Match = r.Computed == r.Expected
	}
	return r
}

// VerifyZeroSum checks that the bytes of data[0:n] sum to zero, the EDID
// block rule. Computed holds the residual sum, Expected is always zero.
func VerifyZeroSum(data []byte, n int) Result {
	sum := Sum8(data, n)
	return Result{Computed: uint16(sum), Match: sum == 0 && n <= len(data), Width: 8, ZeroSum: true}
}

// VerifyCRC16 compares the CRC of data[0:n] with the little-endian value
// stored at data[at:at+2].
func VerifyCRC16(data []byte, n, at int) Result {
	r := Result{Computed: CRC16(data, n), Width: 16}
	if at >= 0 && at+1 < len(data) {
		r.Expected = uint16(data[at]) | uint16(data[at+1])<<8
		r.Match = r.Computed == r.Expected
	}
	return r
}
