package edid

var voltageLevels = [4]string{
	"0.700 : 0.300 : 1.000 Vp-p",
	"0.714 : 0.286 : 1.000 Vp-p",
	"1.000 : 0.400 : 1.400 Vp-p",
	"0.700 : 0.000 : 0.700 Vp-p",
}

// digital interface types, EDID 1.4 byte 20 bits 3:0
var interfaceNames = [16]string{
	"undefined", "DVI", "HDMI-a", "HDMI-b", "MDDI", "DisplayPort",
	"reserved", "reserved", "reserved", "reserved", "reserved",
	"reserved", "reserved", "reserved", "reserved", "reserved",
}

// bits per primary colour, EDID 1.4 byte 20 bits 6:4; 0 and 7 are not rendered
var bitsPerColor = [8]int{0, 6, 8, 10, 12, 14, 16, -1}

var colorTypes = [4]string{
	"monochrome/grayscale",
	"RGB color",
	"non-RGB color",
	"undefined",
}

var colorEncodings = [4]string{
	"RGB 4:4:4",
	"RGB 4:4:4 & YCrCb 4:4:4",
	"RGB 4:4:4 & YCrCb 4:2:2",
	"RGB 4:4:4 & YCrCb 4:4:4 & YCrCb 4:2:2",
}

// establishedTimings is indexed by bit position of bytes 35/36 read big-endian
var establishedTimings = [16]string{
	"VESA 1280x1024@75",
	"VESA 1024x768@75",
	"VESA 1024x768@70",
	"VESA 1024x768@60",
	"IBM 1024x768@87 interlaced",
	"Apple Mac II 832x624@75",
	"VESA 800x600@75",
	"VESA 800x600@72",
	"VESA 800x600@60",
	"VESA 800x600@56",
	"VESA 640x480@75",
	"VESA 640x480@72",
	"Apple Mac II 640x480@67",
	"IBM VGA 640x480@60",
	"IBM XGA2 720x400@88",
	"IBM VGA 720x400@70",
}

// Display descriptor tags
const (
	tagVendorLast          = 0x0F
	tagDummy               = 0x10
	tagExtraStandardTiming = 0xFA
	tagName                = 0xFC
	tagRangeLimits         = 0xFD
	tagString              = 0xFE
	tagSerial              = 0xFF
)

// Extension block tags
const (
	extCEA861 = 0x02
)

// CEA data block types
const (
	ceaAudio    = 1
	ceaVideo    = 2
	ceaVendor   = 3
	ceaSpeaker  = 4
	ceaExtended = 7
)

const ceaColorimetry = 5

// audio format codes with special extra-byte semantics
const (
	audioLPCM     = 1
	audioAC3      = 2
	audioATRAC    = 8
	audioWMAPro   = 14
	audioExtended = 15
)

var audioFormats = [15]string{
	"From Header", "LPCM", "AC-3", "MPEG-1", "MP3", "MPEG-2", "AAC LC", "DTS",
	"ATRAC", "DSD", "E-AC-3", "DTS-HD", "MLP", "DST", "WMA Pro",
}

// extended audio type codes, byte 3 bits 7:3 when the format code is 15
var audioExtendedFormats = map[int]string{
	4:  "HE-AAC",
	5:  "HE-AACv2",
	6:  "MPEG Surround",
	7:  "MPEG-4 AAC LC",
	8:  "DRA",
	9:  "MPEG-4 HE-AAC + MPEG Surround",
	11: "MPEG-4 AAC LC + MPEG Surround",
}

// sample rate bitmask, in bit order
var sampleRates = [7]int{32000, 44100, 48000, 88200, 96000, 176400, 192000}

var lpcmDepths = [3]int{16, 20, 24}

var hdmiVideoFlags = []struct {
	bit  byte
	name string
}{
	{0x80, "ACP/ISRC1/ISRC2 packets"},
	{0x40, "48bpp"},
	{0x20, "36bpp"},
	{0x10, "30bpp"},
	{0x08, "YCbCr in Deep Color Modes"},
	{0x01, "Dual-Link DVI"},
}

// speaker allocation, bits 0..10 across the first two payload bytes
var speakerPositions = [11]string{
	"Front Right/Left",
	"LFE",
	"Front Center",
	"Rear Right/Left",
	"Rear Center",
	"Front Right/Left Center",
	"Rear Right/Left Center",
	"Front Right/Left Wide",
	"Front Right/Left High",
	"Top Center",
	"Front Center High",
}

var colorimetryNames = [8]string{
	"xvYCC601", "xvYCC709", "sYCC601", "opYCC601",
	"opRGB", "BT2020cYCC", "BT2020YCC", "BT2020RGB",
}

// ceaModes is indexed by VIC-1
var ceaModes = [64]string{
	"640x480p@59.94Hz/60Hz DAR: 4:3 PAR: 1:1",
	"720x480p@59.94Hz/60Hz DAR: 4:3 PAR: 8:9",
	"720x480p@59.94Hz/60Hz DAR: 16:9 PAR: 32:27",
	"1280x720p@59.94Hz/60Hz DAR: 16:9 PAR: 1:1",
	"1920x1080i@59.94Hz/60Hz DAR: 16:9 PAR: 1:1",
	"720(1440)x480i@59.94Hz/60Hz DAR: 4:3 PAR: 8:9",
	"720(1440)x480i@59.94Hz/60Hz DAR: 16:9 PAR: 32:27",
	"720(1440)x240p@59.94Hz/60Hz DAR: 4:3 PAR: 4:9",
	"720(1440)x240p@59.94Hz/60Hz DAR: 16:9 PAR: 16:27",
	"2880x480i@59.94Hz/60Hz DAR: 4:3 PAR: 2:9 - 20:9",
	"2880x480i@59.94Hz/60Hz DAR: 16:9 PAR: 8:27 - 80:27",
	"2880x240p@59.94Hz/60Hz DAR: 4:3 PAR: 1:9 - 10:9",
	"2880x240p@59.94Hz/60Hz DAR: 16:9 PAR: 4:27 - 40:27",
	"1440x480p@59.94Hz/60Hz DAR: 4:3 PAR: 4:9 or 8:9",
	"1440x480p@59.94Hz/60Hz DAR: 16:9 PAR: 16:27 or 32:27",
	"1920x1080p@59.94Hz/60Hz DAR: 16:9 PAR: 1:1",
	"720x576p@50Hz DAR: 4:3 PAR: 16:15",
	"720x576p@50Hz DAR: 16:9 PAR: 64:45",
	"1280x720p@50Hz DAR: 16:9 PAR: 1:1",
	"1920x1080i@50Hz DAR: 16:9 PAR: 1:1",
	"720(1440)x576i@50Hz DAR: 4:3 PAR: 16:15",
	"720(1440)x576i@50Hz DAR: 16:9 PAR: 64:45",
	"720(1440)x288p@50Hz DAR: 4:3 PAR: 8:15",
	"720(1440)x288p@50Hz DAR: 16:9 PAR: 32:45",
	"2880x576i@50Hz DAR: 4:3 PAR: 2:15 - 20:15",
	"2880x576i@50Hz DAR: 16:9 PAR: 16:45 - 160:45",
	"2880x288p@50Hz DAR: 4:3 PAR: 1:15 - 10:15",
	"2880x288p@50Hz DAR: 16:9 PAR: 8:45 - 80:45",
	"1440x576p@50Hz DAR: 4:3 PAR: 8:15 or 16:15",
	"1440x576p@50Hz DAR: 16:9 PAR: 32:45 or 64:45",
	"1920x1080p@50Hz DAR: 16:9 PAR: 1:1",
	"1920x1080p@23.97Hz/24Hz DAR: 16:9 PAR: 1:1",
	"1920x1080p@25Hz DAR: 16:9 PAR: 1:1",
	"1920x1080p@29.97Hz/30Hz DAR: 16:9 PAR: 1:1",
	"2880x480p@59.94Hz/60Hz DAR: 4:3 PAR: 2:9, 4:9, or 8:9",
	"2880x480p@59.94Hz/60Hz DAR: 16:9 PAR: 8:27, 16:27, or 32:27",
	"2880x576p@50Hz DAR: 4:3 PAR: 4:15, 8:15, or 16:15",
	"2880x576p@50Hz DAR: 16:9 PAR: 16:45, 32:45, or 64:45",
	"1920x1080i (1250 total)@50Hz DAR: 16:9 PAR: 1:1",
	"1920x1080i@100Hz DAR: 16:9 PAR: 1:1",
	"1280x720p@100Hz DAR: 16:9 PAR: 1:1",
	"720x576p@100Hz DAR: 4:3 PAR: 16:15",
	"720x576p@100Hz DAR: 16:9 PAR: 64:45",
	"720(1440)x576i@100Hz DAR: 4:3 PAR: 16:15",
	"720(1440)x576i@100Hz DAR: 16:9 PAR: 64:45",
	"1920x1080i@119.88/120Hz DAR: 16:9 PAR: 1:1",
	"1280x720p@119.88/120Hz DAR: 16:9 PAR: 1:1",
	"720x480p@119.88/120Hz DAR: 4:3 PAR: 8:9",
	"720x480p@119.88/120Hz DAR: 16:9 PAR: 32:27",
	"720(1440)x480i@119.88/120Hz DAR: 4:3 PAR: 8:9",
	"720(1440)x480i@119.88/120Hz DAR: 16:9 PAR: 32:27",
	"720x576p@200Hz DAR: 4:3 PAR: 16:15",
	"720x576p@200Hz DAR: 16:9 PAR: 64:45",
	"720(1440)x576i@200Hz DAR: 4:3 PAR: 16:15",
	"720(1440)x576i@200Hz DAR: 16:9 PAR: 64:45",
	"720x480p@239.76/240Hz DAR: 4:3 PAR: 8:9",
	"720x480p@239.76/240Hz DAR: 16:9 PAR: 32:27",
	"720(1440)x480i@239.76/240Hz DAR: 4:3 PAR: 8:9",
	"720(1440)x480i@239.76/240Hz DAR: 16:9 PAR: 32:27",
	"1280x720p@23.97Hz/24Hz DAR: 16:9 PAR: 1:1",
	"1280x720p@25Hz DAR: 16:9 PAR: 1:1",
	"1280x720p@29.97Hz/30Hz DAR: 16:9 PAR: 1:1",
	"1920x1080p@119.88/120Hz DAR: 16:9 PAR: 1:1",
	"1920x1080p@100Hz DAR: 16:9 PAR: 1:1",
}
