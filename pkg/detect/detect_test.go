package detect

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mscrnt/decode-dimm/pkg/diag"
	"github.com/mscrnt/decode-dimm/pkg/edid"
)

func spd(tag, b0 byte) []byte {
	data := make([]byte, 256)
	data[0] = b0
	data[2] = tag
	return data
}

func TestDetect(t *testing.T) {
	header := append([]byte(nil), edid.Header...)
	oneExt := make([]byte, 128)
	copy(oneExt, header)
	oneExt[0x7E] = 1
	threeExt := make([]byte, 128)
	copy(threeExt, header)
	threeExt[0x7E] = 3

	tests := []struct {
		name string
		data []byte
		want Result
	}{
		{"SDR", spd(0x04, 0x80), Result{Format: SDRAM, Tag: 0x04, Min: 256, Want: 256}},
		{"DDR", spd(0x07, 0x80), Result{Format: SDRAM, Tag: 0x07, Min: 256, Want: 256}},
		{"DDR2", spd(0x08, 0x80), Result{Format: SDRAM, Tag: 0x08, Min: 256, Want: 256}},
		{"DDR3", spd(0x0B, 0x92), Result{Format: DDR3, Tag: 0x0B, Min: 256, Want: 256}},
		{"DDR4 384 used", spd(0x0C, 0x23), Result{Format: DDR4, Tag: 0x0C, Min: 256, Want: 384}},
		{"DDR4 128 used", spd(0x0C, 0x11), Result{Format: DDR4, Tag: 0x0C, Min: 256, Want: 256}},
		{"DDR4E", spd(0x0E, 0x24), Result{Format: DDR4, Tag: 0x0E, Min: 256, Want: 512}},
		{"EDID header only", header, Result{Format: EDID, Min: 128, Want: 128}},
		{"EDID one extension", oneExt, Result{Format: EDID, Min: 128, Want: 256}},
		{"EDID capped", threeExt, Result{Format: EDID, Min: 128, Want: 256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.data)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetectErrors(t *testing.T) {
	_, err := Detect([]byte{0x80, 0x08})
	if !errors.Is(err, diag.ErrInsufficientData) {
		t.Errorf("short buffer: got %v, want insufficient data", err)
	}

	r, err := Detect(spd(0x12, 0x80))
	if !errors.Is(err, diag.ErrUnsupportedMemoryType) {
		t.Fatalf("tag 0x12: got %v, want unsupported memory type", err)
	}
	if r.Tag != 0x12 || r.Format != Unknown {
		t.Errorf("tag 0x12: got %+v", r)
	}
	if err.Error() != "Unsupported memory type 18" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCheck(t *testing.T) {
	r := Result{Format: DDR4, Min: 256, Want: 384}

	if err := r.Check(384); err != nil {
		t.Errorf("Check(384) = %v", err)
	}
	if err := r.Check(256); err != nil {
		t.Errorf("Check(256) = %v", err)
	}

	err := r.Check(128)
	var d diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("Check(128) = %v, want diagnostic", err)
	}
	if diff := cmp.Diff(diag.New(diag.InsufficientData, "Insufficient data read (128 of 256 bytes), aborting decode"), d); diff != "" {
		t.Errorf("Check(128) mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatString(t *testing.T) {
	got := []string{Unknown.String(), SDRAM.String(), DDR3.String(), DDR4.String(), EDID.String()}
	want := []string{"unknown", "sdram", "ddr3", "ddr4", "edid"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}
