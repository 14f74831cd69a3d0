package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestDiagnosticUnwrap(t *testing.T) {
	d := New(InsufficientData, "need %d bytes, have %d", 256, 128)
	if d.Error() != "need 256 bytes, have 128" {
		t.Errorf("unexpected message %q", d.Error())
	}
	if !errors.Is(d, ErrInsufficientData) {
		t.Error("diagnostic should unwrap to ErrInsufficientData")
	}

	wrapped := fmt.Errorf("record 0x50: %w", d)
	if !errors.Is(wrapped, ErrInsufficientData) {
		t.Error("wrapped diagnostic should still match its sentinel")
	}
	if errors.Is(wrapped, ErrChecksumMismatch) {
		t.Error("diagnostic should not match an unrelated sentinel")
	}
}

func TestKindFatal(t *testing.T) {
	tests := []struct {
		kind  Kind
		fatal bool
	}{
		{InsufficientData, true},
		{UnsupportedMemoryType, true},
		{UnsupportedRankCount, true},
		{UnsupportedBankCount, true},
		{InvalidHeader, true},
		{ChecksumMismatch, false},
		{UnknownVendorID, false},
		{InvalidExtensionChecksum, false},
		{MultipleExtensionsUnsupported, false},
		{UnknownTimebase, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Fatal(); got != tt.fatal {
				t.Errorf("Fatal() = %v, want %v", got, tt.fatal)
			}
		})
	}
}

func TestList(t *testing.T) {
	var l List
	l.Add(ChecksumMismatch, "checksum %04X != %04X", 0x1234, 0x4321)
	if l.Has(InsufficientData) {
		t.Error("list should not contain InsufficientData")
	}
	if _, ok := l.Fatal(); ok {
		t.Error("checksum mismatch alone is not fatal")
	}

	l.Add(UnsupportedRankCount, "too many ranks")
	d, ok := l.Fatal()
	if !ok || d.Kind != UnsupportedRankCount {
		t.Errorf("Fatal() = %v, %v", d, ok)
	}
	if len(l) != 2 {
		t.Errorf("expected 2 diagnostics, got %d", len(l))
	}
}
