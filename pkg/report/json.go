package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONSink emits one JSON object per record
type JSONSink struct {
	// Compact disables indentation
	Compact bool
}

// Write encodes every record in order
func (s JSONSink) Write(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	if !s.Compact {
		enc.SetIndent("", "  ")
	}
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode %q: %w", rec.Title, err)
		}
	}
	return nil
}
