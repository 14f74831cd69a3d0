package parser

import (
	"github.com/mscrnt/decode-dimm/pkg/checksum"
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/timing"
)

// Generation identifies the SPD layout family
type Generation int

const (
	SDR Generation = iota + 1
	DDR
	DDR2
	DDR3
	DDR4
)

func (g Generation) String() string {
	switch g {
	case SDR:
		return "SDR"
	case DDR:
		return "DDR"
	case DDR2:
		return "DDR2"
	case DDR3:
		return "DDR3"
	case DDR4:
		return "DDR4"
	}
	return "unknown"
}

// Module represents decoded SPD data
type Module struct {
	Generation Generation      `json:"generation"`
	Revision   string          `json:"revision,omitempty"`
	BytesUsed  int             `json:"bytesUsed,omitempty"`
	BytesTotal int             `json:"bytesTotal,omitempty"`
	Checksum   checksum.Result `json:"checksum"`

	// DDR4 unbuffered modules carry a second CRC over the module block
	ExtensionChecksum *checksum.Result `json:"extensionChecksum,omitempty"`

	VendorInfo        bool   `json:"vendorInfo"` // vendor block present and read
	Vendor            string `json:"vendor,omitempty"`
	VendorID          uint16 `json:"vendorId,omitempty"`
	ChipVendor        string `json:"chipVendor,omitempty"`
	ChipVendorID      uint16 `json:"chipVendorId,omitempty"`
	PartNumber        string `json:"partNumber,omitempty"`
	Serial            string `json:"serial,omitempty"`
	ManufacturingDate string `json:"manufacturingDate,omitempty"`

	ModuleType string   `json:"moduleType,omitempty"`
	Attributes []string `json:"attributes,omitempty"` // buffered, registered, parity...
	ECC        bool     `json:"ecc"`

	Organization Organization `json:"organization"`
	CapacityMB   int          `json:"capacityMB"` // raw, including check bits
	UsableMB     int          `json:"usableMB"`

	Voltages   []string `json:"voltages,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`

	ChipOrganization      string `json:"chipOrganization,omitempty"`
	SecondaryOrganization string `json:"secondaryOrganization,omitempty"`

	ClockRange   *ClockRange    `json:"clockRange,omitempty"`
	CASLatencies []int          `json:"casLatencies,omitempty"`
	MinTimings   *MinTimings    `json:"minTimings,omitempty"`
	Timings      timing.Profile `json:"timings"`
	XMP          *XMP           `json:"xmp,omitempty"`

	Diagnostics diag.List `json:"diagnostics,omitempty"`
}

// Organization describes the addressing of the module
type Organization struct {
	Ranks   int `json:"ranks"`
	Rows    int `json:"rows"`
	Columns int `json:"columns"`

	// Geometry of ranks after the first when it differs (SDR/DDR only)
	AltRows    int `json:"altRows,omitempty"`
	AltColumns int `json:"altColumns,omitempty"`

	Banks       int `json:"banks"`
	BankGroups  int `json:"bankGroups,omitempty"`
	Width       int `json:"width"` // module data width in bits, check bits included
	DeviceWidth int `json:"deviceWidth,omitempty"`
}

// rankGeometry returns rows and columns for a rank index
func (o Organization) rankGeometry(rank int) (rows, cols int) {
	if rank > 0 && o.AltRows != 0 {
		return o.AltRows, o.AltColumns
	}
	return o.Rows, o.Columns
}

// bankGroups treats a zero bank group count as one
func (o Organization) bankGroups() int {
	if o.BankGroups == 0 {
		return 1
	}
	return o.BankGroups
}

// RankMbit returns the addressable Mbit per rank per data line (per bank
// group when the module has them): 2^(rows+columns-20) × banks.
func (o Organization) RankMbit(rank int) int {
	rows, cols := o.rankGeometry(rank)
	return int(mbits(rows+cols) * uint64(o.Banks))
}

// CapacityBytes returns ranks × 2^(rows+columns) × bank groups × banks ×
// width/8.
func (o Organization) CapacityBytes() uint64 {
	var total uint64
	for r := 0; r < o.Ranks; r++ {
		rows, cols := o.rankGeometry(r)
		total += Capacity(1, rows, cols, o.Banks*o.bankGroups(), o.Width)
	}
	return total
}

// Capacity evaluates ranks × 2^(rows+columns) × banks × width/8 in bytes
func Capacity(ranks, rows, columns, banks, width int) uint64 {
	if rows+columns <= 0 || rows+columns >= 48 {
		return 0
	}
	return uint64(ranks) << uint(rows+columns) * uint64(banks) * uint64(width/8)
}

// mbits returns 2^bits / 2^20 without shifting by a negative amount
func mbits(bits int) uint64 {
	if bits < 20 || bits >= 60 {
		return 0
	}
	return 1 << uint(bits-20)
}

// ClockRange is the DDR4 supported clock range
type ClockRange struct {
	MinMHz      float64 `json:"minMHz"`
	MaxMHz      float64 `json:"maxMHz"`
	MinPeriodPs int     `json:"minPeriodPs"`
	MaxPeriodPs int     `json:"maxPeriodPs"`
}

// MinTimings are the DDR4 minimum primary timings in ns
type MinTimings struct {
	TAA  float64 `json:"taa"`
	TRCD float64 `json:"trcd"`
	TRP  float64 `json:"trp"`
	TRAS float64 `json:"tras"`
}

// XMP is a decoded DDR3 Extreme Memory Profile block
type XMP struct {
	Revision string       `json:"revision"`
	Profiles []XMPProfile `json:"profiles"`
}

// XMPProfile is one enabled XMP profile
type XMPProfile struct {
	Name      string           `json:"name"`
	Voltage   string           `json:"voltage"`
	Latencies timing.Latencies `json:"latencies"`
}
