package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"
)

// HTMLSink renders a standalone HTML page with one table per record
type HTMLSink struct {
	// Now stamps the footer; defaults to time.Now
	Now func() time.Time
}

// htmlData contains the data for the page template
type htmlData struct {
	Records     []Record
	GeneratedAt time.Time
}

// Write renders the page
func (s HTMLSink) Write(w io.Writer, records []Record) error {
	tmpl, err := loadHTMLTemplate()
	if err != nil {
		return err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, htmlData{Records: records, GeneratedAt: now()}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// loadHTMLTemplate loads the HTML report template
func loadHTMLTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"statusClass": func(rec Record) string {
			switch {
			case rec.Status != "":
				return "failure"
			case len(rec.Diagnostics) > 0:
				return "warning"
			}
			return "success"
		},
		"rowClass": func(l Line) string {
			if l.Label == "" {
				return "continued"
			}
			return ""
		},
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl, nil
}

// htmlTemplate is the default HTML report template
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>decode-dimm report</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .record {
            background-color: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            padding: 20px 30px;
            margin-bottom: 25px;
            border-left: 4px solid #10B981;
        }
        .record.warning { border-left-color: #F59E0B; }
        .record.failure { border-left-color: #EF4444; }
        h1, h2 { color: #2c3e50; }
        .source { color: #666; font-size: 0.9em; }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        td {
            padding: 4px 10px;
            text-align: left;
            border-bottom: 1px solid #e0e0e0;
            vertical-align: top;
        }
        td.label {
            width: 220px;
            font-weight: 600;
            color: #666;
        }
        tr.continued td { border-top: none; }
        .error-section {
            background-color: #FEE;
            border: 1px solid #FCC;
            border-radius: 4px;
            padding: 10px 15px;
            margin-top: 15px;
        }
        .footer {
            margin-top: 40px;
            text-align: center;
            color: #666;
            font-size: 0.9em;
        }
    </style>
</head>
<body>
    <h1>decode-dimm report</h1>
    {{range .Records}}
    <div class="record {{statusClass .}}">
        <h2>{{.Title}}</h2>
        {{if .Source}}<p class="source">{{.Source}} ({{.Format}})</p>{{end}}
        <table>
            <tbody>
                {{range .Lines}}
                <tr class="{{rowClass .}}">
                    <td class="label">{{.Label}}</td>
                    <td>{{.Text}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>
        {{if or .Status .Diagnostics}}
        <div class="error-section">
            {{if .Status}}<p><strong>{{.Status}}</strong></p>{{end}}
            {{range .Diagnostics}}<p>{{.}}</p>{{end}}
        </div>
        {{end}}
    </div>
    {{end}}
    <div class="footer">
        <p>Generated by decode-dimm on {{formatTime .GeneratedAt}}</p>
    </div>
</body>
</html>
`
