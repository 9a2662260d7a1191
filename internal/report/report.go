// Package report renders pronunciation results as text, JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/template"
)

// Result is one pronounced word.
type Result struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation"`
	Syllables     []string `json:"syllables,omitempty"`
	Meaning       string   `json:"meaning,omitempty"`
	Valid         bool     `json:"valid"`
}

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "csv", "tsv"}

// TextTemplate is the default line format for text output.
const TextTemplate = `{{range .}}{{.Word}} => {{.Pronunciation}}
{{end}}`

// MeaningTemplate adds the meaning after each pronunciation.
const MeaningTemplate = `{{range .}}{{.Word}} => {{.Pronunciation}}{{if .Meaning}}  ({{.Meaning}}){{end}}
{{end}}`

// Writer renders results in one format.
type Writer struct {
	format   string
	template *template.Template
}

// NewWriter creates a writer for format.
func NewWriter(format string) (*Writer, error) {
	w := &Writer{format: format}
	switch format {
	case "text":
		w.template = template.Must(template.New("report").Parse(TextTemplate))
	case "json", "csv", "tsv":
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	return w, nil
}

// SetTemplate replaces the text template.
func (w *Writer) SetTemplate(tmpl string) error {
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	w.template = t
	return nil
}

// Write renders results to out.
func (w *Writer) Write(out io.Writer, results []Result) error {
	switch w.format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case "csv", "tsv":
		return writeDelimited(out, results, w.format == "tsv")
	default:
		if err := w.template.Execute(out, results); err != nil {
			return fmt.Errorf("executing template: %w", err)
		}
		return nil
	}
}

func writeDelimited(out io.Writer, results []Result, tabs bool) error {
	cw := csv.NewWriter(out)
	if tabs {
		cw.Comma = '\t'
	}

	if err := cw.Write([]string{"word", "pronunciation", "meaning", "valid"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		valid := "false"
		if r.Valid {
			valid = "true"
		}
		if err := cw.Write([]string{r.Word, r.Pronunciation, r.Meaning, valid}); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
