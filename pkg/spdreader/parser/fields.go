package parser

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// le16 reads a little-endian uint16 at off
func le16(data []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(data[off : off+2])
}

// nibbles splits b into high and low nibble
func nibbles(b byte) (hi, lo int) {
	return int(b >> 4), int(b & 0x0F)
}

// revision formats a BCD-style revision byte as major.minor
func revision(b byte) string {
	hi, lo := nibbles(b)
	return fmt.Sprintf("%d.%d", hi, lo)
}

// text extracts a fixed-width text field, dropping NUL, 0xFF and blank
// fill from the end. Non-printable bytes are replaced with '?'.
func text(data []byte, off, width int) string {
	field := data[off : off+width]
	n := len(field)
	for n > 0 && (field[n-1] == 0x00 || field[n-1] == 0xFF || field[n-1] == ' ') {
		n--
	}
	var sb strings.Builder
	for _, c := range field[:n] {
		if c < 0x20 || c > 0x7E {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(c)
	}
	return strings.TrimSpace(sb.String())
}

// serial formats a 4-byte serial number
func serial(data []byte, off int) string {
	return fmt.Sprintf("%08X", binary.LittleEndian.Uint32(data[off:off+4]))
}

// bcdDate formats a BCD year/week pair; empty when either is zero
func bcdDate(year, week byte) string {
	if year == 0 || week == 0 {
		return ""
	}
	return fmt.Sprintf("20%02x-W%02x", year, week)
}

// sdramCycleNs decodes the SDR/DDR/DDR2 cycle-time byte: ns in the high
// nibble, tenths (or one of four fixed fractions) in the low nibble.
func sdramCycleNs(b byte) float64 {
	hi, lo := nibbles(b)
	var frac float64
	switch {
	case lo < 10:
		frac = float64(lo) / 10
	case lo == 0x0A:
		frac = 0.25
	case lo == 0x0B:
		frac = 1.0 / 3.0
	case lo == 0x0C:
		frac = 2.0 / 3.0
	case lo == 0x0D:
		frac = 0.75
	}
	return float64(hi) + frac
}

// eccWidth reports whether a DDR3/DDR4 bus width byte declares the 8-bit
// extension and returns the total width.
func eccWidth(b byte) (width int, ecc bool) {
	width = 8 << (b & 0x07)
	if (b>>3)&0x03 == 1 {
		return width + 8, true
	}
	return width, false
}

// plural returns "s" unless n is 1
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// megabits formats a Mbit count as "NM" or "NG"
func megabits(m int) string {
	if m < 1024 {
		return fmt.Sprintf("%dM", m)
	}
	return fmt.Sprintf("%dG", m/1024)
}
