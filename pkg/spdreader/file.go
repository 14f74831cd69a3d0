package spdreader

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Files reads dumps from disk. Each file holds one record, either raw
// binary or hex text.
type Files struct {
	Paths []string
	// Address labels every record; -1 when unknown
	Address int
}

// Name returns the source name
func (f *Files) Name() string {
	return "file"
}

// Read loads every file. The first unreadable or undecodable file aborts
// the read.
func (f *Files) Read(ctx context.Context) ([]RawRecord, error) {
	records := make([]RawRecord, 0, len(f.Paths))
	for _, path := range f.Paths {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		rec, err := ReadFile(path)
		if err != nil {
			return records, err
		}
		rec.Address = f.Address
		records = append(records, rec)
	}
	return records, nil
}

// ReadFile loads one dump
func ReadFile(path string) (RawRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RawRecord{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data, err := ParseDump(raw)
	if err != nil {
		return RawRecord{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(data) > maxRecordLength {
		data = data[:maxRecordLength]
	}
	return RawRecord{Source: path, Bus: -1, Address: -1, Data: data}, nil
}

// ParseDump returns the bytes of a dump. Text made only of hex digits,
// separators and "0x" prefixes is decoded as hex; tokens ending in ':'
// are row offsets and are skipped. Anything else is returned unchanged.
func ParseDump(raw []byte) ([]byte, error) {
	if !isHexText(raw) {
		return raw, nil
	}

	var sb strings.Builder
	for _, tok := range strings.FieldsFunc(string(raw), isSeparator) {
		if strings.HasSuffix(tok, ":") {
			continue
		}
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		if len(tok) == 1 {
			tok = "0" + tok
		}
		sb.WriteString(tok)
	}

	data, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex dump: %w", err)
	}
	return data, nil
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',':
		return true
	}
	return false
}

func isHexText(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	for _, c := range raw {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		case c == 'x' || c == 'X' || c == ':':
		case isSeparator(rune(c)):
		default:
			return false
		}
	}
	return true
}
