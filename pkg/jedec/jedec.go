// Package jedec resolves JEP106 manufacturer identification codes.
//
// A JEP106 code is a run of continuation bytes (0x7F), one per bank
// skipped, followed by the terminal ID byte. The terminal byte carries an
// odd parity bit in bit 7 and is matched as stored.
package jedec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// Continuation marks "look in the next bank"
	Continuation = 0x7F

	// BankWidth is the number of banks the table covers (banks 0..10)
	BankWidth = 11

	// Unknown is returned when no table entry matches
	Unknown = "unknown"

	// Invalid is returned for a packed id whose bank is outside the table
	Invalid = "invalid"
)

// Vendor is one JEP106 table entry. Bank is the number of continuation
// bytes preceding ID.
type Vendor struct {
	Bank int
	ID   byte
	Name string
}

// Code returns the canonical continuation sequence for the entry
func (v Vendor) Code() []byte {
	seq := make([]byte, v.Bank+1)
	for i := 0; i < v.Bank; i++ {
		seq[i] = Continuation
	}
	seq[v.Bank] = v.ID
	return seq
}

// Packed returns the 16-bit form used by DDR3/DDR4 SPD: bank count with
// odd parity in the low byte, ID in the high byte.
func (v Vendor) Packed() uint16 {
	return uint16(v.ID)<<8 | uint16(withParity(byte(v.Bank)))
}

// matches walks seq against the entry's canonical sequence
func (v Vendor) matches(seq []byte) bool {
	for i, want := range v.Code() {
		if i >= len(seq) || seq[i] != want {
			return false
		}
		if want != Continuation {
			return true
		}
	}
	return false
}

// Lookup scans the table for seq. The first matching entry wins.
func Lookup(seq []byte) (Vendor, bool) {
	for _, v := range vendors {
		if v.matches(seq) {
			return v, true
		}
	}
	return Vendor{}, false
}

// Resolve returns the vendor name for a continuation sequence, or Unknown
func Resolve(seq []byte) string {
	if v, ok := Lookup(seq); ok {
		return v.Name
	}
	return Unknown
}

// Expand rebuilds the continuation sequence for a packed 16-bit id.
// ok is false when the bank index is outside the table.
func Expand(packed uint16) (seq []byte, ok bool) {
	bank := int(packed & 0x7F)
	if bank >= BankWidth {
		return nil, false
	}
	return Vendor{Bank: bank, ID: byte(packed >> 8)}.Code(), true
}

// ResolvePacked returns the vendor name for a packed 16-bit id. A bank
// index outside the table yields Invalid without scanning.
func ResolvePacked(packed uint16) string {
	seq, ok := Expand(packed)
	if !ok {
		return Invalid
	}
	return Resolve(seq)
}

// Pad extends a short continuation sequence to the full bank width with
// zero bytes so it can be compared against any table entry.
func Pad(seq []byte) []byte {
	if len(seq) >= BankWidth {
		return seq
	}
	out := make([]byte, BankWidth)
	copy(out, seq)
	return out
}

// ParseSequence reads a continuation sequence written as hex, with or
// without a 0x prefix and separators ("7F7F01", "0x7f 0x7f 0x01",
// "7f:7f:01").
func ParseSequence(s string) ([]byte, error) {
	clean := strings.NewReplacer("0x", "", "0X", "", " ", "", ":", "", "-", "", ",", "").Replace(s)
	if clean == "" {
		return nil, fmt.Errorf("empty vendor id")
	}
	seq, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("vendor id %q: %w", s, err)
	}
	return seq, nil
}

func withParity(b byte) byte {
	b &= 0x7F
	ones := 0
	for v := b; v != 0; v >>= 1 {
		ones += int(v & 1)
	}
	if ones%2 == 0 {
		b |= 0x80
	}
	return b
}
