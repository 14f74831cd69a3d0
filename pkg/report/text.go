package report

import (
	"bufio"
	"fmt"
	"io"
)

// TextSink prints records as aligned label/text lines
type TextSink struct{}

// Write prints each record as its title, its lines and a blank separator
func (TextSink) Write(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if rec.Title != "" {
			fmt.Fprintln(bw, rec.Title)
		}
		for _, l := range rec.Lines {
			fmt.Fprintln(bw, FormatLine(l))
		}
		if rec.Status != "" {
			fmt.Fprintln(bw, rec.Status)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// FormatLine renders one entry with the label padded to a fixed column.
// An unlabelled entry is indented to the same column without a colon.
func FormatLine(l Line) string {
	sep := ' '
	if l.Label != "" {
		sep = ':'
	}
	return fmt.Sprintf("%-19s%c %s", l.Label, sep, l.Text)
}
