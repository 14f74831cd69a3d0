// Package diag defines the conditions a decoder can report about a single
// record. None of them terminate a scan; the fatal ones end the record.
package diag

import (
	"errors"
	"fmt"
)

// Kind classifies a diagnostic
type Kind int

const (
	InsufficientData Kind = iota + 1
	UnsupportedMemoryType
	ChecksumMismatch
	UnsupportedRankCount
	UnknownVendorID
	InvalidExtensionChecksum
	MultipleExtensionsUnsupported
	InvalidHeader
	UnknownTimebase
	UnsupportedBankCount
)

// Sentinel errors, one per kind, for use with errors.Is
var (
	ErrInsufficientData              = errors.New("insufficient data")
	ErrUnsupportedMemoryType         = errors.New("unsupported memory type")
	ErrChecksumMismatch              = errors.New("checksum mismatch")
	ErrUnsupportedRankCount          = errors.New("unsupported rank count")
	ErrUnknownVendorID               = errors.New("unknown vendor id")
	ErrInvalidExtensionChecksum      = errors.New("invalid extension checksum")
	ErrMultipleExtensionsUnsupported = errors.New("multiple extensions unsupported")
	ErrInvalidHeader                 = errors.New("invalid header")
	ErrUnknownTimebase               = errors.New("unknown timebase")
	ErrUnsupportedBankCount          = errors.New("unsupported bank count")
)

var sentinels = map[Kind]error{
	InsufficientData:              ErrInsufficientData,
	UnsupportedMemoryType:         ErrUnsupportedMemoryType,
	ChecksumMismatch:              ErrChecksumMismatch,
	UnsupportedRankCount:          ErrUnsupportedRankCount,
	UnknownVendorID:               ErrUnknownVendorID,
	InvalidExtensionChecksum:      ErrInvalidExtensionChecksum,
	MultipleExtensionsUnsupported: ErrMultipleExtensionsUnsupported,
	InvalidHeader:                 ErrInvalidHeader,
	UnknownTimebase:               ErrUnknownTimebase,
	UnsupportedBankCount:          ErrUnsupportedBankCount,
}

// String returns the kind name
func (k Kind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fatal reports whether the kind ends decoding of the current record
func (k Kind) Fatal() bool {
	switch k {
	case InsufficientData, UnsupportedMemoryType, UnsupportedRankCount, UnsupportedBankCount, InvalidHeader:
		return true
	}
	return false
}

// Diagnostic is one reported condition
type Diagnostic struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// New creates a diagnostic with a formatted message
func New(kind Kind, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements error
func (d Diagnostic) Error() string {
	return d.Message
}

// Unwrap returns the sentinel for the diagnostic kind
func (d Diagnostic) Unwrap() error {
	return sentinels[d.Kind]
}

// List is an ordered set of diagnostics for one record
type List []Diagnostic

// Add appends a diagnostic
func (l *List) Add(kind Kind, format string, args ...interface{}) {
	*l = append(*l, New(kind, format, args...))
}

// Has reports whether any diagnostic of the kind is present
func (l List) Has(kind Kind) bool {
	for _, d := range l {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Fatal returns the first fatal diagnostic, if any
func (l List) Fatal() (Diagnostic, bool) {
	for _, d := range l {
		if d.Kind.Fatal() {
			return d, true
		}
	}
	return Diagnostic{}, false
}
