package ux

import (
	"bytes"
	"strings"
	"testing"
)

type testData struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"json format", "json", false},
		{"yaml format", "yaml", false},
		{"text format", "text", false},
		{"empty format defaults to text", "", false},
		{"unknown format", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.format, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	data := testData{Name: "hoodie-noir", Value: 35}
	if err := formatter.Format(data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"name": "hoodie-noir"`) {
		t.Errorf("JSON output missing expected field: %s", output)
	}
	if !strings.Contains(output, `"value": 35`) {
		t.Errorf("JSON output missing expected field: %s", output)
	}
}

func TestJSONFormatterUnwrapsTableData(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("json", &FormatterOptions{Writer: &buf, Compact: true})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	td := TableData{
		Headers: []string{"ID"},
		Rows:    [][]string{{"1"}},
		Raw:     testData{Name: "mug", Value: 10},
	}
	if err := formatter.Format(td); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `"name":"mug"`) {
		t.Errorf("JSON output should marshal Raw, got: %s", output)
	}
	if strings.Contains(output, "Headers") {
		t.Errorf("JSON output should not include table shape: %s", output)
	}
	if strings.Count(output, "\n") > 1 {
		t.Errorf("Compact JSON should be single line, got: %s", output)
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	data := testData{Name: "mug", Value: 10}
	if err := formatter.Format(data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "name: mug") {
		t.Errorf("YAML output missing expected field: %s", output)
	}
	if !strings.Contains(output, "value: 10") {
		t.Errorf("YAML output missing expected field: %s", output)
	}
}

func TestTextFormatterTable(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter("text", &FormatterOptions{Writer: &buf, NoColor: true})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	td := TableData{
		Headers: []string{"ID", "NOM"},
		Rows: [][]string{
			{"1", "Marie Dupont"},
			{"2", "Luc Martin"},
		},
		Footer: PageFooter(1, 3, 42),
	}
	if err := formatter.Format(td); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 2 rows + footer, got %d lines: %s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "NOM") {
		t.Errorf("missing header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Marie Dupont") {
		t.Errorf("missing row: %s", lines[1])
	}
	if lines[3] != "page 1/3 (42 total)" {
		t.Errorf("unexpected footer: %s", lines[3])
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "string data",
			data: "bienvenue",
			want: "bienvenue",
		},
		{
			name:    "struct without String method",
			data:    testData{Name: "mug", Value: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
			if err != nil {
				t.Fatalf("NewFormatter() error = %v", err)
			}

			err = formatter.Format(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("Format() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				output := strings.TrimSpace(buf.String())
				if output != tt.want {
					t.Errorf("Format() output = %q, want %q", output, tt.want)
				}
			}
		})
	}
}
