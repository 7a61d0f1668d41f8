// Package tmpl renders user supplied Go templates for command output.
package tmpl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

var funcs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"date":  func(layout string, t time.Time) string { return t.Format(layout) },
	"euro":  func(v int) string { return fmt.Sprintf("€%d", v) },
}

// Template is a parsed output template.
type Template struct {
	t *template.Template
}

// Parse compiles text. Escaped "\t" and "\n" sequences are turned into real
// tabs and newlines so templates can be passed on the command line.
//
// Available template functions:
//   - join: Join string slice with separator (e.g., join .Offers ", ")
//   - upper, lower: Change case
//   - date: Format a time with a Go layout (e.g., date "Jan 02" .From)
//   - euro: Format an integer amount as a price
func Parse(text string) (*Template, error) {
	text = strings.NewReplacer(`\t`, "\t", `\n`, "\n").Replace(text)

	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Template{t: t}, nil
}

// Execute renders data into w followed by a newline.
func (t *Template) Execute(w io.Writer, data any) error {
	var buf bytes.Buffer
	if err := t.t.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// Render executes a template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
func Render(text string, data any) (string, error) {
	t, err := Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
