package edid

import (
	"errors"
	"testing"

	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/report"
	. "github.com/onsi/gomega"
)

// seal stores the byte that makes a 128-byte block sum to zero
func seal(block []byte) {
	var sum byte
	for _, b := range block[:BlockSize-1] {
		sum += b
	}
	block[BlockSize-1] = -sum
}

func putDescriptorText(d []byte, tag byte, s string) {
	d[3] = tag
	for i := 5; i < descriptorLen; i++ {
		d[i] = 0x20
	}
	n := copy(d[5:], s)
	if 5+n < descriptorLen {
		d[5+n] = 0x0A
	}
}

var dtd1080p = []byte{
	0x02, 0x3A, 0x80, 0x18, 0x71, 0x38, 0x2D, 0x40,
	0x58, 0x2C, 0x45, 0x00, 0x13, 0x2B, 0x21, 0x00,
	0x00, 0x1E,
}

var dtd720p = []byte{
	0x01, 0x1D, 0x00, 0x72, 0x51, 0xD0, 0x1E, 0x20,
	0x6E, 0x28, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x1E,
}

// newEDID builds a 1.4 DisplayPort monitor with one CEA-861 extension
func newEDID() []byte {
	d := make([]byte, MaxLength)
	copy(d, Header)
	d[0x08], d[0x09] = 0x10, 0xAC // DEL
	d[0x0A], d[0x0B] = 0xB1, 0xA0
	copy(d[0x0C:], []byte{0x53, 0x31, 0x4E, 0x4C})
	d[0x10], d[0x11] = 20, 29
	d[0x12], d[0x13] = 1, 4
	d[0x14] = 0xA5 // digital, 8 bpc, DisplayPort
	d[0x15], d[0x16] = 53, 30
	d[0x17] = 0x78
	d[0x18] = 0x3A
	d[0x23], d[0x24] = 0x21, 0x08
	std := []byte{0xD1, 0xC0, 0x81, 0x80, 0x81, 0x00, 0x8B, 0xC0}
	copy(d[0x26:], std)
	for i := 0x26 + len(std); i < 0x36; i++ {
		d[i] = 0x01
	}

	copy(d[0x36:], dtd1080p)
	putDescriptorText(d[0x48:0x5A], tagName, "DELL U2419H")
	copy(d[0x5A:], []byte{0x00, 0x00, 0x00, 0xFD, 0x00, 0x38, 0x4C, 0x1E, 0x53, 0x11, 0x00, 0x0A, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20})
	putDescriptorText(d[0x6C:0x7E], tagSerial, "ABC123")
	d[0x7E] = 1
	seal(d[:BlockSize])

	c := d[BlockSize:]
	c[0], c[1], c[3] = extCEA861, 3, 0xF1
	blocks := []byte{
		0x43, 0x90, 0x04, 0x03, // video: VIC 16 native, 4, 3
		0x23, 0x09, 0x07, 0x07, // audio: LPCM 2ch
		0x83, 0x01, 0x00, 0x00, // speakers
		0x6A, 0x03, 0x0C, 0x00, 0x10, 0x00, 0x38, 0x2D, 0x80, 0x0B, 0x0B, // HDMI
	}
	copy(c[4:], blocks)
	c[2] = byte(4 + len(blocks))
	copy(c[4+len(blocks):], dtd720p)
	seal(c)
	return d
}

func lineText(lines report.Lines, label string) string {
	for _, l := range lines {
		if l.Label == label {
			return l.Text
		}
	}
	return ""
}

func TestParseBaseBlock(test *testing.T) {
	t := NewWithT(test)

	e, err := Parse(newEDID())
	t.Expect(err).ToNot(HaveOccurred())
	t.Expect(e.Diagnostics).To(BeEmpty())
	t.Expect(e.Checksum.Match).To(BeTrue())
	t.Expect(e.Version).To(Equal(Version{Major: 1, Minor: 4}))
	t.Expect(e.Manufacturer).To(Equal("DEL"))
	t.Expect(e.Product).To(Equal(uint16(41137)))
	t.Expect(e.Serial).To(Equal(uint32(0x4C4E3153)))
	t.Expect(e.Year).To(Equal(2019))
	t.Expect(e.Week).To(Equal(20))

	t.Expect(e.Input.Digital).To(BeTrue())
	t.Expect(e.Input.Interface).To(Equal("DisplayPort"))
	t.Expect(e.Input.BitsPerColor).To(Equal(8))
	t.Expect(e.WidthCm).To(Equal(53))
	t.Expect(e.HeightCm).To(Equal(30))
	t.Expect(e.Gamma).To(BeNumerically("~", 2.2, 1e-9))

	t.Expect(e.Established).To(Equal([]string{"VESA 1024x768@60", "VESA 800x600@60", "IBM VGA 640x480@60"}))
	t.Expect(e.Standard).To(Equal([]StandardTiming{
		{1920, 1080, 60}, {1280, 1024, 60}, {1280, 800, 60}, {1366, 768, 60},
	}))

	t.Expect(e.Descriptors).To(HaveLen(4))
	dt := e.Descriptors[0].Timing
	t.Expect(dt).ToNot(BeNil())
	t.Expect(dt.HTotal).To(Equal(2200))
	t.Expect(dt.VTotal).To(Equal(1125))
	t.Expect(dt.Refresh).To(Equal(60))
	t.Expect(dt.WidthMm).To(Equal(531))
	t.Expect(dt.HeightMm).To(Equal(299))
	t.Expect(e.Descriptors[1]).To(Equal(Descriptor{Kind: NameDescriptor, Tag: tagName, Text: "DELL U2419H"}))
	t.Expect(e.Descriptors[2].Limits).To(Equal(&RangeLimits{
		MinVRate: 56, MaxVRate: 76, MinHRate: 30, MaxHRate: 83, MaxPixelMHz: 170,
	}))
	t.Expect(e.Descriptors[3].Text).To(Equal("ABC123"))

	lines := e.Lines()
	t.Expect(lineText(lines, "Detailed Timing")).To(Equal("1920x1080@60 (148.50 1920 2008 2052 2200 1080 1084 1089 1125 +HSync +VSync)"))
	t.Expect(lineText(lines, "Interface")).To(Equal("Digital, type DisplayPort, 8 bits per primary color"))
	t.Expect(lineText(lines, "Power Management")).To(Equal("DPM compliant"))
	t.Expect(lineText(lines, "Color Encoding")).To(Equal("RGB 4:4:4 & YCrCb 4:4:4 & YCrCb 4:2:2"))
	t.Expect(lineText(lines, "Range Limits")).To(Equal("Max clock = 170MHz, Refresh = 56-76Hz, HSync 30-83kHz"))
	t.Expect(lineText(lines, "Serial Number")).To(Equal("1280192851 (4c4e3153)"))
	t.Expect(lineText(lines, "Manufactured")).To(Equal("Week 20/2019"))
}

func TestParseCEA861(test *testing.T) {
	t := NewWithT(test)

	e, err := Parse(newEDID())
	t.Expect(err).ToNot(HaveOccurred())
	c := e.CEA
	t.Expect(c).ToNot(BeNil())
	t.Expect(c.Version).To(Equal(3))
	t.Expect(c.Checksum.Match).To(BeTrue())
	t.Expect(c.Underscan && c.Audio && c.YCbCr444 && c.YCbCr422).To(BeTrue())

	t.Expect(c.Blocks).To(HaveLen(4))
	t.Expect(c.Blocks[0].Video).To(Equal([]VideoMode{
		{VIC: 16, Name: "1920x1080p@59.94Hz/60Hz DAR: 16:9 PAR: 1:1", Native: true},
		{VIC: 4, Name: "1280x720p@59.94Hz/60Hz DAR: 16:9 PAR: 1:1"},
		{VIC: 3, Name: "720x480p@59.94Hz/60Hz DAR: 16:9 PAR: 32:27"},
	}))
	t.Expect(c.Blocks[1].AudioFormats).To(Equal([]AudioFormat{{
		Format: audioLPCM, Codec: "LPCM", Channels: 2,
		SampleRates: []int{32000, 44100, 48000},
		BitDepths:   []int{16, 20, 24},
	}}))
	t.Expect(c.Blocks[2].Speakers).To(Equal([]string{"Front Right/Left"}))

	h := c.Blocks[3].HDMI
	t.Expect(h).ToNot(BeNil())
	t.Expect(h.PhysicalAddress).To(Equal("1.0.0.0"))
	t.Expect(h.Supports).To(Equal([]string{"36bpp", "30bpp", "YCbCr in Deep Color Modes"}))
	t.Expect(h.MaxTMDSMHz).To(Equal(225))
	t.Expect(h.Latency).To(Equal(&Latency{Video: 20, Audio: 20}))
	t.Expect(h.Interlaced).To(BeNil())

	t.Expect(c.Descriptors).To(HaveLen(1))
	t.Expect(c.Descriptors[0].Timing.String()).To(Equal("1280x720@60 (74.25 1280 1390 1430 1650 720 725 730 750 +HSync +VSync)"))

	lines := e.Lines()
	t.Expect(lineText(lines, "Audio")).To(Equal("Codec LPCM, max 2 channels, 32kHz, 44.1kHz, 48kHz, 16bit, 20bit, 24bit"))
	t.Expect(lineText(lines, "Video")).To(Equal("CEA Timing 1920x1080p@59.94Hz/60Hz DAR: 16:9 PAR: 1:1 (native)"))
	t.Expect(lineText(lines, "Device")).To(Equal("underscans IT video formats, supports audio, supports YCbCr 4:4:4 / 4:2:2"))
	t.Expect(lines).To(ContainElement(report.Line{Text: "Latency: Video: 20ms Audio: 20ms"}))
}

func TestLPCMSampleRatesKeepBitOrder(test *testing.T) {
	t := NewWithT(test)

	a := audioFormatsOf([]byte{0x09, 0x07, 0x00})
	t.Expect(a).To(HaveLen(1))
	t.Expect(a[0].SampleRates).To(Equal([]int{32000, 44100, 48000}))
	t.Expect(a[0].String()).To(Equal("Codec LPCM, max 2 channels, 32kHz, 44.1kHz, 48kHz"))
}

func TestAudioFormatExtras(test *testing.T) {
	t := NewWithT(test)

	a := audioFormatsOf([]byte{
		0x15, 0x07, 0x50, // AC-3 6ch, 640kbit
		0x71, 0x04, 0x03, // WMA Pro, profile 3
		0x7F, 0x18, 0x20, // extended 4: HE-AAC
	})
	t.Expect(a).To(HaveLen(3))
	t.Expect(a[0].Codec).To(Equal("AC-3"))
	t.Expect(a[0].Channels).To(Equal(6))
	t.Expect(a[0].MaxBitrateKbit).To(Equal(640))
	t.Expect(a[1].String()).To(Equal("Codec WMA Pro, max 2 channels, 48kHz, Profile 3"))
	t.Expect(a[2].Codec).To(Equal("HE-AAC"))
	t.Expect(a[2].SampleRates).To(Equal([]int{88200, 96000}))
}

func TestChecksumBitFlip(test *testing.T) {
	t := NewWithT(test)

	good, err := Parse(newEDID())
	t.Expect(err).ToNot(HaveOccurred())

	data := newEDID()
	data[0x19] ^= 0x01 // chromaticity, not decoded
	bad, err := Parse(data)
	t.Expect(err).ToNot(HaveOccurred())

	t.Expect(bad.Checksum.Match).To(BeFalse())
	t.Expect(bad.Checksum.Computed).ToNot(Equal(good.Checksum.Computed))
	t.Expect(bad.Diagnostics.Has(diag.ChecksumMismatch)).To(BeTrue())

	bad.Checksum, bad.Diagnostics = good.Checksum, good.Diagnostics
	t.Expect(bad).To(Equal(good))
}

func TestInvalidHeader(test *testing.T) {
	t := NewWithT(test)

	data := newEDID()
	data[1] = 0x00
	e, err := Parse(data)
	t.Expect(errors.Is(err, diag.ErrInvalidHeader)).To(BeTrue())
	t.Expect(e.Manufacturer).To(BeEmpty())
	t.Expect(e.Lines()).To(BeEmpty())
}

func TestShortBuffer(test *testing.T) {
	t := NewWithT(test)

	_, err := Parse(newEDID()[:64])
	t.Expect(errors.Is(err, diag.ErrInsufficientData)).To(BeTrue())
}

func TestExtensionHandling(test *testing.T) {
	t := NewWithT(test)

	test.Run("multiple", func(test *testing.T) {
		t := NewWithT(test)
		data := newEDID()
		data[offExtensions] = 2
		seal(data[:BlockSize])
		e, err := Parse(data)
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(e.Diagnostics.Has(diag.MultipleExtensionsUnsupported)).To(BeTrue())
		t.Expect(e.CEA).To(BeNil())
		t.Expect(lineText(e.Lines(), "Extensions")).To(Equal("2 found, not supported"))
	})

	test.Run("bad checksum", func(test *testing.T) {
		t := NewWithT(test)
		data := newEDID()
		data[BlockSize+5] ^= 0x80
		e, err := Parse(data)
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(e.Diagnostics.Has(diag.InvalidExtensionChecksum)).To(BeTrue())
		t.Expect(e.CEA.Blocks).To(BeEmpty())
		t.Expect(e.Manufacturer).To(Equal("DEL"))
	})

	test.Run("truncated", func(test *testing.T) {
		t := NewWithT(test)
		e, err := Parse(newEDID()[:BlockSize])
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(e.Truncated).To(BeTrue())
		t.Expect(e.CEA).To(BeNil())
	})

	t.Expect(Length(newEDID())).To(Equal(MaxLength))
}

func TestFeatureByteByVersion(test *testing.T) {
	t := NewWithT(test)

	data := newEDID()
	data[offFeatures] = 0x0B // colour bits 01, preferred, bit 0
	data[offRevision] = 3
	seal(data[:BlockSize])
	e, err := Parse(data)
	t.Expect(err).ToNot(HaveOccurred())
	t.Expect(e.Features.ColorEncoding).To(BeFalse())
	t.Expect(e.Features.Color).To(Equal("RGB color"))
	t.Expect(e.Input.Interface).To(BeEmpty())
	t.Expect(e.Input.DFP).To(BeTrue())
	lines := e.Lines()
	t.Expect(lines).To(ContainElement(report.Line{Text: "First detailed timing is preferred timing"}))
	t.Expect(lines).To(ContainElement(report.Line{Text: "Display supports timings based on default GTF standard values"}))

	data[offRevision] = 4
	seal(data[:BlockSize])
	e, err = Parse(data)
	t.Expect(err).ToNot(HaveOccurred())
	t.Expect(e.Features.ColorEncoding).To(BeTrue())
	t.Expect(e.Features.Color).To(Equal("RGB 4:4:4 & YCrCb 4:4:4"))
	lines = e.Lines()
	t.Expect(lines).To(ContainElement(report.Line{Text: "Display is of continuous frequency type"}))
	t.Expect(lineText(lines, "Range Limits")).To(Equal("Max clock = 170MHz, Refresh = 56-76Hz, HSync 30-83kHz"))
}

func TestStandardTiming(test *testing.T) {
	t := NewWithT(test)

	v13 := Version{1, 3}
	cases := []struct {
		b0, b1 byte
		v      Version
		want   StandardTiming
		ok     bool
	}{
		{0x01, 0x01, v13, StandardTiming{}, false},
		{0x20, 0x20, v13, StandardTiming{}, false},
		{0x00, 0x00, v13, StandardTiming{}, false},
		{0x81, 0x00, Version{1, 2}, StandardTiming{1280, 1280, 60}, true},
		{0x81, 0x00, v13, StandardTiming{1280, 800, 60}, true},
		{0x61, 0x4F, v13, StandardTiming{1024, 768, 75}, true},
		{0x8B, 0xC0, v13, StandardTiming{1366, 768, 60}, true},
	}
	for _, tc := range cases {
		got, ok := standardTiming(tc.b0, tc.b1, tc.v)
		t.Expect(ok).To(Equal(tc.ok))
		t.Expect(got).To(Equal(tc.want))
	}
}

func TestAnalogInput(test *testing.T) {
	t := NewWithT(test)

	data := newEDID()
	data[offInput] = 0x0E
	seal(data[:BlockSize])
	e, err := Parse(data)
	t.Expect(err).ToNot(HaveOccurred())
	t.Expect(e.Input.Digital).To(BeFalse())
	t.Expect(e.Features.Color).To(Equal("undefined"))
	lines := e.Lines()
	t.Expect(lineText(lines, "Interface")).To(Equal("Analog, voltage level 0.700 : 0.300 : 1.000 Vp-p, blank level = black level"))
	t.Expect(lines).To(ContainElement(report.Line{Text: "Sync on Green supported"}))
}

func TestHDMIInterlacedLatency(test *testing.T) {
	t := NewWithT(test)

	h := hdmiBlock([]byte{0x21, 0x00, 0x00, 0x00, 0xC0, 0x01, 0xFF, 0x06, 0x00})
	t.Expect(h.PhysicalAddress).To(Equal("2.1.0.0"))
	t.Expect(h.Latency).To(Equal(&Latency{Video: 0, Audio: -1}))
	t.Expect(h.Interlaced).To(Equal(&Latency{Video: 10, Audio: -1}))
	t.Expect(h.Latency.String()).To(Equal("Video: 0ms"))

	short := hdmiBlock([]byte{0x10})
	t.Expect(short.PhysicalAddress).To(Equal("1.0.0.0"))
	t.Expect(short.Latency).To(BeNil())
}
