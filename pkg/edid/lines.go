package edid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mscrnt/decode-dimm/pkg/report"
)

// Lines renders the record as ordered label/text entries
func (e *EDID) Lines() report.Lines {
	var l report.Lines
	if e.Version.Major == 0 && e.Manufacturer == "" {
		return l
	}
	l.Add("EDID Version", e.Version.String())
	l.Add("Checksum", e.Checksum.String())
	l.Add("Vendor", e.Manufacturer)
	l.Addf("Product", "%d", e.Product)
	if e.Serial != 0 {
		l.Addf("Serial Number", "%d (%x)", e.Serial, e.Serial)
	}
	if e.Year != 0 {
		switch {
		case e.Week == 0:
			l.Addf("Manufactured", "%d", e.Year)
		case e.Week == 0xFF:
			l.Addf("Model Year", "%d", e.Year)
		case e.Week < 0x37:
			l.Addf("Manufactured", "Week %d/%d", e.Week, e.Year)
		}
	}

	e.inputLines(&l)

	switch {
	case e.WidthCm != 0:
		l.Addf("Screen Size", "%dx%dcm", e.WidthCm, e.HeightCm)
	case e.AspectRatio != "":
		l.Add("Aspect Ratio", e.AspectRatio)
	}
	if e.Gamma != 0 {
		l.Addf("Gamma", "%4.2f", e.Gamma)
	}
	e.featureLines(&l)

	listLines(&l, "Established Timing", e.Established)
	listLines(&l, "Manufacturer Timing", e.ManufacturerTimings)
	for i, st := range e.Standard {
		label := ""
		if i == 0 {
			label = "Standard Timing"
		}
		l.Add(label, st.String())
	}

	for _, d := range e.Descriptors {
		e.descriptorLines(&l, d)
	}

	switch {
	case e.Extensions > 1:
		l.Addf("Extensions", "%d found, not supported", e.Extensions)
	case e.Truncated:
		l.Addf("Extensions", "%d bytes expected, only %d bytes passed", MaxLength, BlockSize)
	case e.CEA != nil:
		e.ceaLines(&l)
	case e.Extensions == 1:
		l.Addf("Extensions", "Unhandled extension %02x", e.ExtensionTag)
	}
	return l
}

func (e *EDID) inputLines(l *report.Lines) {
	in := e.Input
	if !in.Digital {
		setup := "blank level = black level"
		if in.BlankToBlack {
			setup = "blank-to-black setup/pedestal"
		}
		l.Addf("Interface", "Analog, voltage level %s, %s", in.VoltageLevel, setup)
		if in.SeparateSync {
			l.Continue("Separate H&V Sync supported")
		}
		if in.CompositeSync {
			l.Continue("Composite Sync on HSync supported")
		}
		if in.SyncOnGreen {
			l.Continue("Sync on Green supported")
		}
		if in.SerratedVSync {
			l.Continue("Serration on VSync supported")
		}
		return
	}
	s := "Digital"
	if in.DFP {
		s += ", compatible with VESA DFP 1.x TMDS"
	}
	if in.Interface != "" {
		s += ", type " + in.Interface
	}
	if in.BitsPerColor > 0 {
		s += fmt.Sprintf(", %d bits per primary color", in.BitsPerColor)
	}
	l.Add("Interface", s)
}

func (e *EDID) featureLines(l *report.Lines) {
	f := e.Features
	switch {
	case !f.Standby && !f.Suspend && !f.ActiveOff:
		l.Add("Power Management", "none")
	case !f.Standby && !f.Suspend:
		l.Add("Power Management", "DPM compliant")
	default:
		var modes []string
		if f.Standby {
			modes = append(modes, "Standby")
		}
		if f.Suspend {
			modes = append(modes, "Suspend")
		}
		if f.ActiveOff {
			modes = append(modes, "Active-Off")
		}
		l.Add("Power Management", "DPMS, supported modes: "+strings.Join(modes, " "))
	}

	if f.ColorEncoding {
		l.Add("Color Encoding", f.Color)
	} else {
		l.Add("Color Type", f.Color)
	}

	not := func(set bool, s string) string {
		if set {
			return ""
		}
		return s
	}
	l.Addf("Features", "sRGB is%s the default color space", not(f.SRGB, " not"))
	if e.Version.AtLeast(1, 4) {
		l.Continue(fmt.Sprintf("Preferred timing does%s include the native pixel format and refresh rate", not(f.Preferred, " not")))
		l.Continue(fmt.Sprintf("Display is of %scontinuous frequency type", not(f.Continuous, "non-")))
		return
	}
	if f.Preferred {
		l.Continue("First detailed timing is preferred timing")
	}
	if f.Continuous {
		l.Continue("Display supports timings based on default GTF standard values")
	}
}

func (e *EDID) descriptorLines(l *report.Lines, d Descriptor) {
	switch d.Kind {
	case DetailedTimingDescriptor:
		l.Add("Detailed Timing", d.Timing.String())
		if d.Timing.Stereo != "" {
			l.Continue(d.Timing.Stereo)
		}
	case SerialDescriptor:
		l.Add("Display Serial", d.Text)
	case StringDescriptor:
		l.Add("String", d.Text)
	case NameDescriptor:
		l.Add("Name", d.Text)
	case RangeLimitsDescriptor:
		s := d.Limits.String()
		if e.Features.Continuous {
			if extra := d.Limits.support(); extra != "" {
				s += ", " + extra
			}
		}
		l.Add("Range Limits", s)
	case StandardTimingsDescriptor:
		for _, st := range d.Standard {
			l.Add("Standard Timing", st.String())
		}
	case VendorDescriptor:
		l.Addf("Descriptor", "Manufacturer specified data (tag 0x%02x)", d.Tag)
	case UnhandledDescriptor:
		l.Addf("Descriptor", "Unhandled tag 0x%02x", d.Tag)
	case InvalidDescriptor:
		l.Add("Descriptor", "Warning: invalid device descriptor block")
	}
}

func (e *EDID) ceaLines(l *report.Lines) {
	c := e.CEA
	l.Addf("CEA-861 Version", "%d", c.Version)
	l.Add("CEA Checksum", c.Checksum.String())
	if !c.Checksum.Match {
		return
	}

	var dev []string
	if c.Underscan {
		dev = append(dev, "underscans IT video formats")
	}
	if c.Audio {
		dev = append(dev, "supports audio")
	}
	switch {
	case c.YCbCr444 && c.YCbCr422:
		dev = append(dev, "supports YCbCr 4:4:4 / 4:2:2")
	case c.YCbCr444 || c.YCbCr422:
		dev = append(dev, "invalid YCbCr support")
	}
	if len(dev) > 0 {
		l.Add("Device", strings.Join(dev, ", "))
	}

	for _, d := range c.Descriptors {
		e.descriptorLines(l, d)
	}
	for _, b := range c.Blocks {
		blockLines(l, b)
	}
}

func blockLines(l *report.Lines, b DataBlock) {
	switch b.Type {
	case ceaAudio:
		for i, a := range b.AudioFormats {
			label := ""
			if i == 0 {
				label = "Audio"
			}
			l.Add(label, a.String())
		}
	case ceaVideo:
		for i, m := range b.Video {
			label := ""
			if i == 0 {
				label = "Video"
			}
			native := ""
			if m.Native {
				native = " (native)"
			}
			l.Add(label, "CEA Timing "+m.Name+native)
		}
	case ceaVendor:
		if b.HDMI == nil {
			if b.Length >= 3 {
				l.Addf("Vendor Block", "Unknown vendor %06x", b.OUI)
			}
			return
		}
		hdmiLines(l, b.HDMI)
	case ceaSpeaker:
		if len(b.Speakers) > 0 {
			l.Add("Speakers", strings.Join(b.Speakers, ", "))
		}
	case ceaExtended:
		if b.ExtTag == ceaColorimetry {
			l.Add("Colorimetry", strings.Join(b.Colorimetry, ", "))
			return
		}
		l.Addf("Data Block", "Unhandled CEA extended data block id %d length %d", b.ExtTag, b.Length-1)
	default:
		l.Addf("Data Block", "Unhandled CEA data block id %d length %d", b.Type, b.Length)
	}
}

func hdmiLines(l *report.Lines, h *HDMI) {
	l.Add("HDMI", "address "+h.PhysicalAddress)
	if len(h.Supports) > 0 {
		l.Continue("Supports " + strings.Join(h.Supports, ", "))
	}
	if h.MaxTMDSMHz != 0 {
		l.Continue(fmt.Sprintf("Maximum TMDS clock: %dMHz", h.MaxTMDSMHz))
	}
	switch {
	case h.InvalidLatency:
		l.Continue("Invalid latency flag")
	case h.Interlaced != nil:
		l.Continue("Latency for progressive operation: " + h.Latency.String())
		l.Continue("Latency for interlaced operation: " + h.Interlaced.String())
	case h.Latency != nil:
		l.Continue("Latency: " + h.Latency.String())
	}
}

func (a AudioFormat) String() string {
	parts := []string{"Codec " + a.Codec, fmt.Sprintf("max %d channels", a.Channels)}
	for _, hz := range a.SampleRates {
		parts = append(parts, strconv.FormatFloat(float64(hz)/1000, 'f', -1, 64)+"kHz")
	}
	for _, d := range a.BitDepths {
		parts = append(parts, fmt.Sprintf("%dbit", d))
	}
	switch {
	case a.MaxBitrateKbit != 0:
		parts = append(parts, fmt.Sprintf("maximum bitrate %dkbit", a.MaxBitrateKbit))
	case a.Format == audioWMAPro:
		parts = append(parts, fmt.Sprintf("Profile %d", a.Profile))
	}
	return strings.Join(parts, ", ")
}

func listLines(l *report.Lines, label string, items []string) {
	for i, s := range items {
		if i == 0 {
			l.Add(label, s)
			continue
		}
		l.Continue(s)
	}
}
