package parser

import (
	"github.com/mscrnt/decode-dimm/pkg/checksum"
)

func putText(data []byte, off, width int, s string, fill byte) {
	for i := 0; i < width; i++ {
		if i < len(s) {
			data[off+i] = s[i]
		} else {
			data[off+i] = fill
		}
	}
}

func putCRC(data []byte, start, n, at int) {
	crc := checksum.CRC16(data[start:], n)
	data[at] = byte(crc)
	data[at+1] = byte(crc >> 8)
}

// newDDR4 builds a 512-byte DDR4-2400 8GB single rank x8 UDIMM
func newDDR4() []byte {
	d := make([]byte, 512)
	d[0x00] = 0x23 // 384 used, 512 total
	d[0x01] = 0x11
	d[0x02] = DramTypeDDR4
	d[0x03] = 0x02 // UDIMM
	d[0x04] = 0x85 // 8Gb, 4 banks, 4 bank groups
	d[0x05] = 0x21 // 16 rows, 10 columns
	d[0x06] = 0x00 // SDP
	d[0x0B] = 0x03
	d[0x0C] = 0x01 // x8, 1 rank
	d[0x0D] = 0x03 // 64 bit
	d[0x12] = 0x07 // 875ps, fine -42 -> 833ps
	d[0x13] = 0x0C // 1500ps
	d[0x14] = 0xF8 // CL 10..18
	d[0x15] = 0x0F
	d[0x18] = 0x6E // 13.75ns
	d[0x19] = 0x6E
	d[0x1A] = 0x6E
	d[0x1B] = 0x01 // tRAS upper nibble
	d[0x1C] = 0x00 // tRAS 256 MTB = 32ns
	d[0x7D] = 0xD6 // -42
	putCRC(d, 0, 126, 0x7E)

	d[0x80] = 0x11 // 31mm - 32mm
	d[0x81] = 0x11
	putCRC(d, 128, 126, 0xFE)

	d[0x140] = 0x80
	d[0x141] = 0xCE
	d[0x143] = 0x19
	d[0x144] = 0x22
	copy(d[0x145:], []byte{0x01, 0x02, 0x03, 0x04})
	putText(d, 0x149, 20, "M378A1K43CB2-CRC", ' ')
	d[0x15E] = 0x80
	d[0x15F] = 0xCE
	return d
}

// newDDR3 builds a DDR3-1600 4GB dual rank UDIMM with one XMP profile
func newDDR3() []byte {
	d := make([]byte, 256)
	d[0x00] = 0x92 // CRC over 117 bytes, 176 used, 256 total
	d[0x01] = 0x10
	d[0x02] = DramTypeDDR3
	d[0x03] = 0x02 // UDIMM
	d[0x04] = 0x03 // 2Gb, 8 banks
	d[0x05] = 0x19 // 15 rows, 10 columns
	d[0x06] = 0x00 // 1.5V
	d[0x07] = 0x09 // 2 ranks, x8
	d[0x08] = 0x03 // 64 bit
	d[0x0A] = 1
	d[0x0B] = 8
	d[0x0C] = 0x0A // 1.25ns
	d[0x0E] = 0xFE // CL 5..11
	d[0x10] = 0x69 // 13.125ns
	d[0x12] = 0x69
	d[0x14] = 0x69
	d[0x15] = 0x11
	d[0x16] = 0x18 // tRAS 0x118 = 35ns
	d[0x75] = 0x80
	d[0x76] = 0xAD
	d[0x78] = 0x12
	d[0x79] = 0x34
	copy(d[0x7A:], []byte{0xAA, 0xBB, 0xCC, 0xDD})
	putText(d, 0x80, 18, "HMT351U6CFR8C-PB", ' ')
	d[0x94] = 0x80
	d[0x95] = 0xAD

	// XMP, Certified profile only
	d[0xB0] = 0x0C
	d[0xB1] = 0x4A
	d[0xB2] = 0x01
	d[0xB3] = 0x12
	d[0xB4] = 1
	d[0xB5] = 8
	p := d[0xB9:]
	p[0] = 0x2D // 1.65V
	p[1] = 0x0A
	p[2] = 0x48 // 9ns
	p[3] = 0xFE
	p[6] = 0x48
	p[7] = 0x48
	p[10] = 0xC0 // 24ns

	putCRC(d, 0, 117, 0x7E)
	return d
}

// newDDR builds a 512MB dual rank DDR module
func newDDR() []byte {
	d := make([]byte, 256)
	d[0x00] = 0x80
	d[0x01] = 0x08
	d[0x02] = DramTypeDDR
	d[0x03] = 0x0D
	d[0x04] = 0x0A
	d[0x05] = 0x02
	d[0x06] = 0x40
	d[0x09] = 0x50 // 5ns
	d[0x11] = 0x04
	d[0x12] = 0x1C // CL 2, 2.5, 3
	d[0x15] = 0x20
	d[0x17] = 0x60 // 6ns
	d[0x19] = 0x75 // 7.5ns
	d[0x1B] = 0x3C // 15ns in quarter ns
	d[0x1D] = 0x3C
	d[0x1E] = 0x28 // 40ns
	d[0x40] = 0x7F
	d[0x41] = 0x98
	putText(d, 0x49, 18, "KVR400X64C3A/512", 0xFF)
	d[0x3F] = checksum.Sum8(d, checksum.SDRAMRange)
	return d
}
