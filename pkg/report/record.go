// Package report presents decoded records. Decoders produce ordered
// label/text lines; sinks turn a batch of records into text, JSON or HTML.
package report

import (
	"io"
)

// Record is one decoded EEPROM ready for presentation
type Record struct {
	Title   string `json:"title"`
	Source  string `json:"source,omitempty"`
	Address int    `json:"address"`
	Format  string `json:"format"`
	Lines   Lines  `json:"lines"`

	// Status holds the message that ended decoding early, if any
	Status      string   `json:"status,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`

	// Detail is the decoded structure, emitted by structured sinks
	Detail interface{} `json:"detail,omitempty"`
}

// Sink writes records to an output
type Sink interface {
	Write(w io.Writer, records []Record) error
}
