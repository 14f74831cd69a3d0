package edid

import (
	"fmt"

	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
)

// HDMIOUI is the IEEE OUI of the HDMI Licensing vendor-specific data block
const HDMIOUI = 0x000C03

// CEA is a decoded CEA-861 extension block
type CEA struct {
	Version  int             `json:"version"`
	Checksum checksum.Result `json:"checksum"`

	Underscan bool `json:"underscan"`
	Audio     bool `json:"audio"`
	YCbCr444  bool `json:"ycbcr444"`
	YCbCr422  bool `json:"ycbcr422"`

	Descriptors []Descriptor `json:"descriptors,omitempty"`
	Blocks      []DataBlock  `json:"blocks,omitempty"`
}

// DataBlock is one tag-length-value record of the data block collection.
// The populated payload field depends on Type.
type DataBlock struct {
	Type   int `json:"type"`
	ExtTag int `json:"ext_tag,omitempty"`
	Length int `json:"length"`

	AudioFormats []AudioFormat `json:"audio,omitempty"`
	Video        []VideoMode   `json:"video,omitempty"`
	OUI          uint32        `json:"oui,omitempty"`
	HDMI         *HDMI         `json:"hdmi,omitempty"`
	Speakers     []string      `json:"speakers,omitempty"`
	Colorimetry  []string      `json:"colorimetry,omitempty"`
}

// AudioFormat is one short audio descriptor
type AudioFormat struct {
	Format   int    `json:"format"`
	Extended int    `json:"extended,omitempty"`
	Codec    string `json:"codec"`
	Channels int    `json:"channels"`
	// SampleRates in Hz, in bitmask order
	SampleRates    []int `json:"sample_rates"`
	BitDepths      []int `json:"bit_depths,omitempty"`
	MaxBitrateKbit int   `json:"max_bitrate_kbit,omitempty"`
	Profile        int   `json:"profile,omitempty"`
}

// VideoMode is one short video descriptor
type VideoMode struct {
	VIC    int    `json:"vic"`
	Name   string `json:"name"`
	Native bool   `json:"native"`
}

// HDMI is the HDMI vendor-specific data block payload
type HDMI struct {
	PhysicalAddress string   `json:"physical_address"`
	Supports        []string `json:"supports,omitempty"`
	MaxTMDSMHz      int      `json:"max_tmds_mhz,omitempty"`
	InvalidLatency  bool     `json:"invalid_latency,omitempty"`
	Latency         *Latency `json:"latency,omitempty"`
	Interlaced      *Latency `json:"interlaced,omitempty"`
}

// Latency values in ms; -1 means not given
type Latency struct {
	Video int `json:"video"`
	Audio int `json:"audio"`
}

func (l Latency) String() string {
	s := ""
	if l.Video >= 0 {
		s = fmt.Sprintf("Video: %dms", l.Video)
	}
	if l.Audio >= 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("Audio: %dms", l.Audio)
	}
	return s
}

func (e *EDID) parseExtension(ext []byte) {
	e.ExtensionTag = ext[0]
	if ext[0] != extCEA861 {
		return
	}
	c := parseCEA(ext, e.Version)
	e.CEA = c
	if !c.Checksum.Match {
		e.Diagnostics.Add(diag.InvalidExtensionChecksum,
			"CEA-861 extension checksum %02X, not correct", c.Checksum.Computed)
	}
}

// parseCEA decodes a 128-byte CEA-861 block. Nothing past the header is
// read when the block checksum fails.
func parseCEA(ext []byte, v Version) *CEA {
	c := &CEA{Version: int(ext[1]), Checksum: checksum.VerifyZeroSum(ext, BlockSize)}
	if !c.Checksum.Match {
		return c
	}

	flags := ext[3]
	c.Underscan = flags&0x80 != 0
	c.Audio = flags&0x40 != 0
	c.YCbCr444 = flags&0x20 != 0
	c.YCbCr422 = flags&0x10 != 0

	// byte 2 is the offset of the first detailed timing; data blocks live
	// between byte 4 and that offset. Zero means neither is present.
	dtd := int(ext[2])
	if dtd < 4 || dtd > BlockSize-1 {
		return c
	}
	for off := dtd; off+descriptorLen <= BlockSize-1; off += descriptorLen {
		if ext[off] == 0 && ext[off+1] == 0 {
			break
		}
		c.Descriptors = append(c.Descriptors, parseDescriptor(ext[off:off+descriptorLen], v))
	}

	if c.Version < 3 {
		return c
	}
	for i := 4; i < dtd; {
		typ := int(ext[i]>>5) & 7
		n := int(ext[i] & 31)
		end := i + 1 + n
		if end > dtd {
			break
		}
		c.Blocks = append(c.Blocks, dataBlock(typ, ext[i+1:end]))
		i = end
	}
	return c
}

func dataBlock(typ int, p []byte) DataBlock {
	b := DataBlock{Type: typ, Length: len(p)}
	switch typ {
	case ceaAudio:
		b.AudioFormats = audioFormatsOf(p)
	case ceaVideo:
		b.Video = videoModes(p)
	case ceaVendor:
		if len(p) >= 3 {
			b.OUI = uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
			if b.OUI == HDMIOUI {
				b.HDMI = hdmiBlock(p[3:])
			}
		}
	case ceaSpeaker:
		if len(p) == 3 {
			b.Speakers = speakers(p)
		}
	case ceaExtended:
		if len(p) > 0 {
			b.ExtTag = int(p[0])
			if b.ExtTag == ceaColorimetry && len(p) > 1 {
				for i, name := range colorimetryNames {
					if p[1]&(1<<uint(i)) != 0 {
						b.Colorimetry = append(b.Colorimetry, name)
					}
				}
			}
		}
	}
	return b
}

// audioFormatsOf decodes 3-byte short audio descriptors:
// format code bits 6:3 and channels-1 bits 2:0, the sample rate bitmask,
// then a format dependent byte.
func audioFormatsOf(p []byte) []AudioFormat {
	var out []AudioFormat
	for i := 0; i+2 < len(p); i += 3 {
		a := AudioFormat{
			Format:   int(p[i]>>3) & 15,
			Channels: int(p[i]&7) + 1,
		}
		if a.Format == audioExtended {
			a.Extended = int(p[i+2]>>3) & 31
			if name, ok := audioExtendedFormats[a.Extended]; ok {
				a.Codec = name
			} else {
				a.Codec = fmt.Sprintf("(extended %d)", a.Extended)
			}
		} else {
			a.Codec = audioFormats[a.Format]
		}

		for bit, hz := range sampleRates {
			if p[i+1]&(1<<uint(bit)) != 0 {
				a.SampleRates = append(a.SampleRates, hz)
			}
		}

		extra := p[i+2]
		switch {
		case a.Format == audioLPCM:
			for bit, depth := range lpcmDepths {
				if extra&(1<<uint(bit)) != 0 {
					a.BitDepths = append(a.BitDepths, depth)
				}
			}
		case a.Format >= audioAC3 && a.Format <= audioATRAC:
			a.MaxBitrateKbit = 8 * int(extra)
		case a.Format == audioWMAPro:
			a.Profile = int(extra & 7)
		}
		out = append(out, a)
	}
	return out
}

func videoModes(p []byte) []VideoMode {
	out := make([]VideoMode, 0, len(p))
	for _, b := range p {
		m := VideoMode{VIC: int(b & 0x7F), Native: b&0x80 != 0, Name: "(unknown)"}
		if m.VIC >= 1 && m.VIC <= len(ceaModes) {
			m.Name = ceaModes[m.VIC-1]
		}
		out = append(out, m)
	}
	return out
}

// hdmiBlock decodes the payload after the OUI. Fields past the end of the
// block are treated as absent.
func hdmiBlock(p []byte) *HDMI {
	at := func(i int) byte {
		if i < len(p) {
			return p[i]
		}
		return 0
	}
	h := &HDMI{
		PhysicalAddress: fmt.Sprintf("%x.%x.%x.%x", at(0)>>4, at(0)&15, at(1)>>4, at(1)&15),
		MaxTMDSMHz:      5 * int(at(3)),
	}
	for _, f := range hdmiVideoFlags {
		if at(2)&f.bit != 0 {
			h.Supports = append(h.Supports, f.name)
		}
	}
	switch at(4) & 0xC0 {
	case 0x40:
		h.InvalidLatency = true
	case 0x80:
		h.Latency = &Latency{Video: latencyMs(at(5)), Audio: latencyMs(at(6))}
	case 0xC0:
		h.Latency = &Latency{Video: latencyMs(at(5)), Audio: latencyMs(at(6))}
		h.Interlaced = &Latency{Video: latencyMs(at(7)), Audio: latencyMs(at(8))}
	}
	return h
}

// latencyMs converts an HDMI latency byte; 0 and 255 mean unknown
func latencyMs(b byte) int {
	if b == 0 || b == 255 {
		return -1
	}
	return (int(b) - 1) * 2
}

func speakers(p []byte) []string {
	bits := uint16(p[0]) | uint16(p[1])<<8
	var out []string
	for i, name := range speakerPositions {
		if bits&(1<<uint(i)) != 0 {
			out = append(out, name)
		}
	}
	return out
}
