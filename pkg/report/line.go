package report

import "fmt"

// Line is one labelled entry of a decoded record. An empty Label continues
// the previous entry.
type Line struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Lines accumulates entries in order
type Lines []Line

// Add appends a labelled entry
func (l *Lines) Add(label, text string) {
	*l = append(*l, Line{Label: label, Text: text})
}

// Addf appends a labelled entry with formatted text
func (l *Lines) Addf(label, format string, args ...interface{}) {
	l.Add(label, fmt.Sprintf(format, args...))
}

// Continue appends an unlabelled entry
func (l *Lines) Continue(text string) {
	l.Add("", text)
}
