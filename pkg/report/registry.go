package report

import (
	"fmt"
	"sort"
	"strings"
)

// NewSink builds the sink for one output format
type NewSink func() Sink

type format struct {
	description string
	build       NewSink
}

// formats is only written from init functions
var formats = map[string]format{}

func init() {
	RegisterFormat("text", "aligned label/text lines, one block per record", func() Sink { return TextSink{} })
	RegisterFormat("json", "one JSON object per record, including the decoded structure", func() Sink { return JSONSink{} })
	RegisterFormat("html", "standalone HTML page, one table per record", func() Sink { return HTMLSink{} })
}

// RegisterFormat makes a sink available as an output format. It panics on
// an empty or duplicate name and must be called from init.
func RegisterFormat(name, description string, build NewSink) {
	if name == "" || build == nil {
		panic("report: RegisterFormat needs a name and a constructor")
	}
	if _, dup := formats[name]; dup {
		panic("report: RegisterFormat called twice for " + name)
	}
	formats[name] = format{description: description, build: build}
}

// New builds the sink registered as name
func New(name string) (Sink, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q, expected one of %s", name, strings.Join(Formats(), ", "))
	}
	return f.build(), nil
}

// Formats returns the registered format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatUsage describes every format for command line help, one indented
// "name  description" entry per line.
func FormatUsage() string {
	var b strings.Builder
	for _, name := range Formats() {
		fmt.Fprintf(&b, "  %-6s %s\n", name, formats[name].description)
	}
	return b.String()
}
