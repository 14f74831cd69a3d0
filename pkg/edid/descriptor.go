package edid

import (
	"bytes"
	"fmt"
	"math"
)

// DescriptorKind identifies the content of an 18-byte descriptor slot
type DescriptorKind int

const (
	DetailedTimingDescriptor DescriptorKind = iota
	SerialDescriptor
	StringDescriptor
	NameDescriptor
	RangeLimitsDescriptor
	DummyDescriptor
	VendorDescriptor
	StandardTimingsDescriptor
	UnhandledDescriptor
	InvalidDescriptor
)

// Descriptor is one 18-byte slot. Exactly one of Timing, Text, Limits or
// Standard is meaningful, selected by Kind.
type Descriptor struct {
	Kind     DescriptorKind   `json:"kind"`
	Tag      byte             `json:"tag,omitempty"`
	Timing   *DetailedTiming  `json:"timing,omitempty"`
	Text     string           `json:"text,omitempty"`
	Limits   *RangeLimits     `json:"limits,omitempty"`
	Standard []StandardTiming `json:"standard,omitempty"`
}

// DetailedTiming is a decoded detailed timing descriptor
type DetailedTiming struct {
	PixelClockKHz int `json:"pixel_clock_khz"`

	Width      int `json:"width"`
	HSyncStart int `json:"hsync_start"`
	HSyncEnd   int `json:"hsync_end"`
	HTotal     int `json:"htotal"`
	Height     int `json:"height"`
	VSyncStart int `json:"vsync_start"`
	VSyncEnd   int `json:"vsync_end"`
	VTotal     int `json:"vtotal"`

	WidthMm  int `json:"width_mm"`
	HeightMm int `json:"height_mm"`
	HBorder  int `json:"hborder,omitempty"`
	VBorder  int `json:"vborder,omitempty"`

	HFreqKHz   float64 `json:"hfreq_khz"`
	Refresh    int     `json:"refresh"`
	Interlaced bool    `json:"interlaced,omitempty"`
	Sync       string  `json:"sync"`
	Stereo     string  `json:"stereo,omitempty"`
}

// String renders the mode line: geometry, refresh, pixel clock in MHz and
// the horizontal and vertical timing quadruples.
func (t DetailedTiming) String() string {
	interlace := ""
	if t.Interlaced {
		interlace = " Interlace"
	}
	return fmt.Sprintf("%dx%d@%d (%.2f %d %d %d %d %d %d %d %d%s %s)",
		t.Width, t.Height, t.Refresh, float64(t.PixelClockKHz)/1000,
		t.Width, t.HSyncStart, t.HSyncEnd, t.HTotal,
		t.Height, t.VSyncStart, t.VSyncEnd, t.VTotal,
		interlace, t.Sync)
}

// RangeLimits is the display range limits descriptor (tag 0xFD)
type RangeLimits struct {
	MinVRate      int  `json:"min_vrate"`
	MaxVRate      int  `json:"max_vrate"`
	MinHRate      int  `json:"min_hrate"`
	MaxHRate      int  `json:"max_hrate"`
	MaxPixelMHz   int  `json:"max_pixel_mhz"`
	TimingSupport byte `json:"timing_support"`
	CVTMajor      int  `json:"cvt_major,omitempty"`
	CVTMinor      int  `json:"cvt_minor,omitempty"`
}

func (r RangeLimits) String() string {
	return fmt.Sprintf("Max clock = %dMHz, Refresh = %d-%dHz, HSync %d-%dkHz",
		r.MaxPixelMHz, r.MinVRate, r.MaxVRate, r.MinHRate, r.MaxHRate)
}

// parseDescriptor decodes one slot. A non-zero pixel clock means a detailed
// timing; otherwise byte 3 is the display descriptor tag.
func parseDescriptor(d []byte, v Version) Descriptor {
	if d[0] != 0 || d[1] != 0 {
		return Descriptor{Kind: DetailedTimingDescriptor, Timing: detailedTiming(d)}
	}
	tag := d[3]
	if d[2] != 0 || (d[4] != 0 && !v.AtLeast(1, 4)) {
		return Descriptor{Kind: InvalidDescriptor, Tag: tag}
	}
	switch {
	case tag <= tagVendorLast:
		return Descriptor{Kind: VendorDescriptor, Tag: tag}
	case tag == tagDummy:
		return Descriptor{Kind: DummyDescriptor, Tag: tag}
	case tag == tagSerial:
		return Descriptor{Kind: SerialDescriptor, Tag: tag, Text: descriptorText(d)}
	case tag == tagString:
		return Descriptor{Kind: StringDescriptor, Tag: tag, Text: descriptorText(d)}
	case tag == tagName:
		return Descriptor{Kind: NameDescriptor, Tag: tag, Text: descriptorText(d)}
	case tag == tagRangeLimits:
		return Descriptor{Kind: RangeLimitsDescriptor, Tag: tag, Limits: rangeLimits(d)}
	case tag == tagExtraStandardTiming:
		var st []StandardTiming
		for i := 5; i+1 < 17; i += 2 {
			if s, ok := standardTiming(d[i], d[i+1], v); ok {
				st = append(st, s)
			}
		}
		return Descriptor{Kind: StandardTimingsDescriptor, Tag: tag, Standard: st}
	}
	return Descriptor{Kind: UnhandledDescriptor, Tag: tag}
}

// descriptorText returns the 13 data bytes up to the first line feed
func descriptorText(d []byte) string {
	s := d[5:descriptorLen]
	if i := bytes.IndexByte(s, 0x0A); i >= 0 {
		s = s[:i]
	}
	return string(bytes.TrimRight(s, "\x00"))
}

func detailedTiming(d []byte) *DetailedTiming {
	hi := func(b byte, shift uint) int { return int((b>>shift)&0x0F) << 8 }
	sync := d[11]

	t := &DetailedTiming{PixelClockKHz: (int(d[0]) | int(d[1])<<8) * 10}
	t.Width = int(d[2]) | hi(d[4], 4)
	t.HTotal = t.Width + (int(d[3]) | hi(d[4], 0))
	t.HSyncStart = t.Width + (int(d[8]) | int((sync>>6)&3)<<8)
	t.HSyncEnd = t.HSyncStart + (int(d[9]) | int((sync>>4)&3)<<8)

	t.Height = int(d[5]) | hi(d[7], 4)
	t.VTotal = t.Height + (int(d[6]) | hi(d[7], 0))
	t.VSyncStart = t.Height + (int((d[10]>>4)&0x0F) | int((sync>>2)&3)<<8)
	t.VSyncEnd = t.VSyncStart + (int(d[10]&0x0F) | int(sync&3)<<8)

	t.WidthMm = int(d[12]) | hi(d[14], 4)
	t.HeightMm = int(d[13]) | hi(d[14], 0)
	t.HBorder, t.VBorder = int(d[15]), int(d[16])

	if t.HTotal > 0 {
		t.HFreqKHz = float64(t.PixelClockKHz) / float64(t.HTotal)
	}
	if t.VTotal > 0 {
		t.Refresh = int(math.Round(t.HFreqKHz * 1000 / float64(t.VTotal)))
	}

	flags := d[17]
	t.Interlaced = flags&0x80 != 0
	t.Sync = syncType(flags)
	t.Stereo = stereoMode(flags)
	return t
}

func syncType(flags byte) string {
	sign := func(set bool) string {
		if set {
			return "+"
		}
		return "-"
	}
	switch flags & 0x18 {
	case 0x10:
		return "Composite " + sign(flags&0x02 != 0) + "CSync"
	case 0x18:
		return sign(flags&0x02 != 0) + "HSync " + sign(flags&0x04 != 0) + "VSync"
	}
	if flags&0x02 != 0 {
		return "Composite"
	}
	return "Composite SyncOnGreen"
}

// stereoMode decodes bits 6:5 together with bit 0
func stereoMode(flags byte) string {
	switch ((flags >> 4) & 6) | (flags & 1) {
	case 2:
		return "Field sequential stereo, right image on sync"
	case 3:
		return "2-way interleaved stereo, right image on even lines"
	case 4:
		return "Field sequential stereo, left image on sync"
	case 5:
		return "2-way interleaved stereo, left image on even lines"
	case 6:
		return "4-way interleaved stereo"
	case 7:
		return "Side-by-Side interleaved stereo"
	}
	return ""
}

// rangeLimits decodes tag 0xFD. Byte 4 carries +255 offset flags for the
// vertical and horizontal minimum and maximum rates.
func rangeLimits(d []byte) *RangeLimits {
	offset := func(bit byte) int {
		if d[4]&bit != 0 {
			return 255
		}
		return 0
	}
	r := &RangeLimits{
		MinVRate:      int(d[5]) + offset(0x01),
		MaxVRate:      int(d[6]) + offset(0x02),
		MinHRate:      int(d[7]) + offset(0x04),
		MaxHRate:      int(d[8]) + offset(0x08),
		MaxPixelMHz:   int(d[9]) * 10,
		TimingSupport: d[10],
	}
	if r.TimingSupport == 4 {
		r.CVTMajor, r.CVTMinor = int(d[11]>>4), int(d[11]&0x0F)
	}
	return r
}

// support renders the video timing support byte, which only applies to
// continuous frequency displays.
func (r RangeLimits) support() string {
	switch r.TimingSupport {
	case 0, 1:
		return ""
	case 2:
		return "Secondary GTF information"
	case 4:
		return fmt.Sprintf("CVT %d.%d information", r.CVTMajor, r.CVTMinor)
	}
	return fmt.Sprintf("Invalid video timing support (%02x)", r.TimingSupport)
}
