package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter writes command output in one of the supported formats.
// Every listing command accepts --output and routes through this.
type Formatter interface {
	Format(data any) error
}

// TableData is structured output that knows how to render itself as an
// aligned table in text mode. JSON and YAML modes ignore the table shape
// and marshal Raw instead.
type TableData struct {
	Headers []string
	Rows    [][]string
	Raw     any
	Footer  string
}

// FormatterOptions configures output formatting
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// NoColor disables styling in text mode
	NoColor bool
	// Compact disables indentation for JSON and YAML
	Compact bool
}

// NewFormatter creates a formatter for the given --output value
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{Writer: os.Stdout}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	opts *FormatterOptions
}

// Format writes data as JSON
func (f *JSONFormatter) Format(data any) error {
	if td, ok := data.(TableData); ok {
		data = td.Raw
	}
	encoder := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	opts *FormatterOptions
}

// Format writes data as YAML
func (f *YAMLFormatter) Format(data any) error {
	if td, ok := data.(TableData); ok {
		data = td.Raw
	}
	encoder := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent(2)
	}
	defer encoder.Close()
	return encoder.Encode(data)
}

// TextFormatter formats output for humans: tables for table data, plain
// lines for strings and Stringers
type TextFormatter struct {
	opts *FormatterOptions
}

// Format writes data as formatted text
func (f *TextFormatter) Format(data any) error {
	switch v := data.(type) {
	case TableData:
		if _, err := fmt.Fprint(f.opts.Writer, Table(v.Headers, v.Rows, f.opts.NoColor)); err != nil {
			return err
		}
		if v.Footer != "" {
			if _, err := fmt.Fprintln(f.opts.Writer, Dim(v.Footer, f.opts.NoColor)); err != nil {
				return err
			}
		}
		return nil
	case string:
		_, err := fmt.Fprintln(f.opts.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.opts.Writer, v.String())
		return err
	default:
		return fmt.Errorf("text formatter requires table data, a string or a fmt.Stringer")
	}
}

// PageFooter builds the "page X/Y (Z total)" line shown under paginated
// tables
func PageFooter(page, totalPages, total int) string {
	return fmt.Sprintf("page %d/%d (%d total)", page, totalPages, total)
}

var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*YAMLFormatter)(nil)
var _ Formatter = (*TextFormatter)(nil)
