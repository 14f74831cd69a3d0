// Package detect classifies a raw identification record and reports how
// many bytes its decoder needs.
package detect

import (
	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/edid"
	"github.com/mscrnt/decode-dimm/pkg/spdreader/parser"
)

// Format is the decoder a record is routed to
type Format int

const (
	Unknown Format = iota
	SDRAM          // SDR, DDR and DDR2 share one layout family
	DDR3
	DDR4
	EDID
)

func (f Format) String() string {
	switch f {
	case SDRAM:
		return "sdram"
	case DDR3:
		return "ddr3"
	case DDR4:
		return "ddr4"
	case EDID:
		return "edid"
	}
	return "unknown"
}

// Result describes a detected record.
//
// Min is the length below which decoding is not attempted. Want is the
// length a byte source should read to get the whole record; it is never
// smaller than Min.
type Result struct {
	Format Format `json:"format"`
	Tag    byte   `json:"tag"`
	Min    int    `json:"min"`
	Want   int    `json:"want"`
}

// Detect inspects the memory type tag at byte 2 and the EDID header.
// An unrecognised tag is returned as an UnsupportedMemoryType diagnostic
// alongside a Result carrying the tag.
func Detect(data []byte) (Result, error) {
	if len(data) < 3 {
		return Result{}, diag.New(diag.InsufficientData, "Insufficient data read (%d of %d bytes), aborting decode", len(data), 3)
	}
	if edid.IsEDID(data) {
		return Result{Format: EDID, Min: edid.BlockSize, Want: edid.Length(data)}, nil
	}

	tag := data[parser.SPDDramType]
	r := Result{Tag: tag, Min: parser.MinLength, Want: parser.MinLength}
	switch tag {
	case parser.DramTypeSDR, parser.DramTypeDDR, parser.DramTypeDDR2:
		r.Format = SDRAM
	case parser.DramTypeDDR3:
		r.Format = DDR3
	case parser.DramTypeDDR4, parser.DramTypeDDR4E:
		r.Format = DDR4
		if used := parser.DDR4BytesUsed(data[parser.SPDBytesUsed]); used > r.Want {
			r.Want = used
		}
	default:
		return Result{Tag: tag}, diag.New(diag.UnsupportedMemoryType, "Unsupported memory type %d", tag)
	}
	return r, nil
}

// Check reports InsufficientData when n bytes are not enough to decode
// the detected format
func (r Result) Check(n int) error {
	if n < r.Min {
		return diag.New(diag.InsufficientData, "Insufficient data read (%d of %d bytes), aborting decode", n, r.Min)
	}
	return nil
}
