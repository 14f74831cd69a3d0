// Package edid decodes VESA EDID base blocks and their CEA-861 extension.
package edid

import (
	"bytes"
	"fmt"

	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
)

// BlockSize is the size of the base block and of each extension block
const BlockSize = 128

// MaxLength is the most this decoder reads: base block plus one extension
const MaxLength = 2 * BlockSize

// Header is the fixed pattern at the start of every base block
var Header = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Base block offsets
const (
	offManufacturer  = 0x08 // big-endian, three 5-bit letters
	offProduct       = 0x0A // little-endian
	offSerial        = 0x0C // little-endian
	offWeek          = 0x10
	offYear          = 0x11
	offVersion       = 0x12
	offRevision      = 0x13
	offInput         = 0x14
	offHorzSize      = 0x15
	offVertSize      = 0x16
	offGamma         = 0x17
	offFeatures      = 0x18
	offEstablished   = 0x23
	offManufacturerT = 0x25
	offStandard      = 0x26
	offDescriptors   = 0x36
	offExtensions    = 0x7E

	descriptorLen   = 18
	descriptorCount = 4
	standardCount   = 8
)

// IsEDID reports whether data starts with the EDID header
func IsEDID(data []byte) bool {
	return len(data) >= len(Header) && bytes.Equal(data[:len(Header)], Header)
}

// Length returns the number of bytes a complete record needs, derived from
// the extension count and capped at MaxLength.
func Length(data []byte) int {
	if len(data) <= offExtensions {
		return BlockSize
	}
	n := BlockSize * (1 + int(data[offExtensions]))
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Version is the EDID structure version and revision
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// AtLeast reports whether v is major.minor or newer
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Input describes the video input definition byte
type Input struct {
	Digital bool `json:"digital"`

	// analog
	VoltageLevel  string `json:"voltage_level,omitempty"`
	BlankToBlack  bool   `json:"blank_to_black,omitempty"`
	SeparateSync  bool   `json:"separate_sync,omitempty"`
	CompositeSync bool   `json:"composite_sync,omitempty"`
	SyncOnGreen   bool   `json:"sync_on_green,omitempty"`
	SerratedVSync bool   `json:"serrated_vsync,omitempty"`

	// digital, up to 1.3
	DFP bool `json:"dfp,omitempty"`

	// digital, 1.4
	Interface    string `json:"interface,omitempty"`
	BitsPerColor int    `json:"bits_per_color,omitempty"`
}

// Features is the feature support byte. Bits 0 and 1 changed meaning in
// EDID 1.4, so Preferred and Continuous are read against Version.
type Features struct {
	Standby   bool `json:"standby"`
	Suspend   bool `json:"suspend"`
	ActiveOff bool `json:"active_off"`

	// ColorEncoding is set when Color names a 1.4 digital colour encoding
	// rather than an analog colour type.
	ColorEncoding bool   `json:"color_encoding"`
	Color         string `json:"color"`
	SRGB          bool   `json:"srgb"`

	// 1.3: first detailed timing is the preferred timing
	// 1.4: preferred timing includes the native pixel format and refresh
	Preferred bool `json:"preferred"`

	// 1.3: default GTF timings supported
	// 1.4: continuous frequency display
	Continuous bool `json:"continuous"`
}

// StandardTiming is one two-byte standard timing entry
type StandardTiming struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Refresh int `json:"refresh"`
}

func (s StandardTiming) String() string {
	return fmt.Sprintf("%dx%d@%d", s.Width, s.Height, s.Refresh)
}

// EDID is a decoded base block plus its optional extension
type EDID struct {
	Version  Version         `json:"version"`
	Checksum checksum.Result `json:"checksum"`

	Manufacturer string `json:"manufacturer"`
	Product      uint16 `json:"product"`
	Serial       uint32 `json:"serial,omitempty"`
	Week         int    `json:"week,omitempty"`
	Year         int    `json:"year,omitempty"`

	Input       Input    `json:"input"`
	WidthCm     int      `json:"width_cm,omitempty"`
	HeightCm    int      `json:"height_cm,omitempty"`
	AspectRatio string   `json:"aspect_ratio,omitempty"`
	Gamma       float64  `json:"gamma,omitempty"`
	Features    Features `json:"features"`

	Established         []string         `json:"established,omitempty"`
	ManufacturerTimings []string         `json:"manufacturer_timings,omitempty"`
	Standard            []StandardTiming `json:"standard,omitempty"`
	Descriptors         []Descriptor     `json:"descriptors,omitempty"`

	Extensions   int  `json:"extensions"`
	ExtensionTag byte `json:"extension_tag,omitempty"`
	CEA          *CEA `json:"cea,omitempty"`
	// Truncated is set when an extension is declared but not supplied
	Truncated bool `json:"truncated,omitempty"`

	Diagnostics diag.List `json:"diagnostics,omitempty"`
}

// Parse decodes an EDID record. A bad header or a short buffer returns the
// partial record together with a fatal diagnostic; all other conditions are
// recorded in Diagnostics.
func Parse(data []byte) (*EDID, error) {
	e := &EDID{}
	if len(data) < BlockSize {
		return e.fail(diag.New(diag.InsufficientData,
			"Insufficient data read (%d of %d bytes), aborting decode", len(data), BlockSize))
	}
	e.Checksum = checksum.VerifyZeroSum(data, BlockSize)
	if !IsEDID(data) {
		return e.fail(diag.New(diag.InvalidHeader, "Invalid EDID header"))
	}
	if !e.Checksum.Match {
		e.Diagnostics.Add(diag.ChecksumMismatch, "EDID checksum %02X, not correct", e.Checksum.Computed)
	}

	e.parseBase(data[:BlockSize])

	e.Extensions = int(data[offExtensions])
	switch {
	case e.Extensions == 0:
	case e.Extensions > 1:
		e.Diagnostics.Add(diag.MultipleExtensionsUnsupported,
			"More than one Extension (%d found) not supported", e.Extensions)
	case len(data) < MaxLength:
		e.Truncated = true
	default:
		e.parseExtension(data[BlockSize:MaxLength])
	}
	return e, nil
}

func (e *EDID) fail(d diag.Diagnostic) (*EDID, error) {
	e.Diagnostics = append(e.Diagnostics, d)
	return e, d
}

func (e *EDID) parseBase(b []byte) {
	e.Version = Version{Major: int(b[offVersion]), Minor: int(b[offRevision])}
	e.Manufacturer = manufacturer(b)
	e.Product = uint16(b[offProduct]) | uint16(b[offProduct+1])<<8
	serial := uint32(b[offSerial]) | uint32(b[offSerial+1])<<8 | uint32(b[offSerial+2])<<16 | uint32(b[offSerial+3])<<24
	if serial != 0 && serial != 0x01010101 {
		e.Serial = serial
	}
	if y := int(b[offYear]); y != 0 {
		e.Year = 1990 + y
		e.Week = int(b[offWeek])
	}

	e.Input = e.parseInput(b[offInput])
	e.parseSize(b[offHorzSize], b[offVertSize])
	if g := b[offGamma]; g != 0 {
		e.Gamma = (float64(g) + 100) / 100
	}
	e.Features = e.parseFeatures(b[offFeatures])

	est := uint16(b[offEstablished])<<8 | uint16(b[offEstablished+1])
	for i, name := range establishedTimings {
		if est&(1<<uint(i)) != 0 {
			e.Established = append(e.Established, name)
		}
	}
	if mt := b[offManufacturerT]; mt&0x80 != 0 {
		e.ManufacturerTimings = append(e.ManufacturerTimings, "Apple Mac II 1152x870@75")
	} else if mt&0x7F != 0 {
		e.ManufacturerTimings = append(e.ManufacturerTimings, fmt.Sprintf("manufacturer specific (%02x)", mt&0x7F))
	}

	for i := 0; i < standardCount; i++ {
		if st, ok := standardTiming(b[offStandard+2*i], b[offStandard+2*i+1], e.Version); ok {
			e.Standard = append(e.Standard, st)
		}
	}

	for i := 0; i < descriptorCount; i++ {
		off := offDescriptors + i*descriptorLen
		e.Descriptors = append(e.Descriptors, parseDescriptor(b[off:off+descriptorLen], e.Version))
	}
}

// manufacturer decodes the big-endian PNP id: bits 14:10, 9:5, 4:0, each
// a letter offset from '@'.
func manufacturer(b []byte) string {
	id := uint16(b[offManufacturer])<<8 | uint16(b[offManufacturer+1])
	return string([]byte{
		byte((id>>10)&31) + '@',
		byte((id>>5)&31) + '@',
		byte(id&31) + '@',
	})
}

func (e *EDID) parseInput(v byte) Input {
	in := Input{Digital: v&0x80 != 0}
	if !in.Digital {
		in.VoltageLevel = voltageLevels[(v>>5)&3]
		in.BlankToBlack = v&0x10 != 0
		in.SeparateSync = v&0x08 != 0
		in.CompositeSync = v&0x04 != 0
		in.SyncOnGreen = v&0x02 != 0
		in.SerratedVSync = v&0x01 != 0
		return in
	}
	if !e.Version.AtLeast(1, 4) {
		in.DFP = v&0x01 != 0
		return in
	}
	if t := v & 0x0F; t != 0 && t < 0x0F {
		in.Interface = interfaceNames[t]
	}
	if d := (v >> 4) & 7; d != 0 && d < 7 {
		in.BitsPerColor = bitsPerColor[d]
	}
	return in
}

// parseSize reads the screen size, or from 1.4 on an aspect ratio when one
// of the two bytes is zero.
func (e *EDID) parseSize(h, v byte) {
	switch {
	case h != 0 && v != 0:
		e.WidthCm, e.HeightCm = int(h), int(v)
	case e.Version.AtLeast(1, 4) && h != 0:
		// stored value = aspect ratio * 100 - 99
		switch h {
		case 26:
			e.AspectRatio = "Landscape 5:4"
		case 34:
			e.AspectRatio = "Landscape 4:3"
		case 61:
			e.AspectRatio = "Landscape 16:10"
		case 79:
			e.AspectRatio = "Landscape 16:9"
		default:
			e.AspectRatio = fmt.Sprintf("Landscape %4.2f:1", (float64(h)+99)/100)
		}
	case e.Version.AtLeast(1, 4) && v != 0:
		// stored value = 100 / aspect ratio - 99
		switch v {
		case 26:
			e.AspectRatio = "Portrait 4:5"
		case 34:
			e.AspectRatio = "Portrait 3:4"
		case 61:
			e.AspectRatio = "Portrait 10:16"
		case 79:
			e.AspectRatio = "Portrait 9:16"
		default:
			e.AspectRatio = fmt.Sprintf("Portrait %4.2f:1", 100/(float64(v)+99))
		}
	}
}

func (e *EDID) parseFeatures(v byte) Features {
	f := Features{
		Standby:    v&0x80 != 0,
		Suspend:    v&0x40 != 0,
		ActiveOff:  v&0x20 != 0,
		SRGB:       v&0x04 != 0,
		Preferred:  v&0x02 != 0,
		Continuous: v&0x01 != 0,
	}
	c := (v >> 3) & 3
	if e.Version.AtLeast(1, 4) && e.Input.Digital {
		f.ColorEncoding = true
		f.Color = colorEncodings[c]
	} else {
		f.Color = colorTypes[c]
	}
	return f
}

// standardTiming decodes one entry. 0x0000, 0x0101 and 0x2020 mark unused
// slots.
func standardTiming(b0, b1 byte, v Version) (StandardTiming, bool) {
	raw := uint16(b0)<<8 | uint16(b1)
	if raw == 0x0000 || raw == 0x0101 || raw == 0x2020 {
		return StandardTiming{}, false
	}
	x := (int(b0) + 31) << 3
	var y int
	switch (b1 >> 6) & 3 {
	case 0:
		if v.AtLeast(1, 3) {
			y = 10 * x / 16
		} else {
			y = x
		}
	case 1:
		y = 3 * x / 4
	case 2:
		y = 4 * x / 5
	case 3:
		y = 9 * x / 16
	}
	// 1366x768 has no exact encoding
	if (x == 1360 && y == 765) || (x == 1368 && y == 769) {
		x, y = 1366, 768
	}
	return StandardTiming{Width: x, Height: y, Refresh: int(b1&63) + 60}, true
}
