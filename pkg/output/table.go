package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableWriter lays out aligned columns with a rule under the header.
type TableWriter struct {
	writer    *tabwriter.Writer
	headers   []string
	rows      [][]string
	separator string
}

// NewTableTo creates a table that renders to w.
func NewTableTo(w io.Writer) *TableWriter {
	return &TableWriter{
		writer:    tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		separator: "-",
	}
}

// WithHeaders sets the column headers for the table
func (t *TableWriter) WithHeaders(headers ...string) *TableWriter {
	t.headers = headers
	return t
}

// AddRow adds a row of data to the table
func (t *TableWriter) AddRow(values ...string) *TableWriter {
	t.rows = append(t.rows, values)
	return t
}

// Render writes headers, a rule sized to each header, then rows, and flushes.
func (t *TableWriter) Render() error {
	if len(t.headers) > 0 {
		_, _ = fmt.Fprintln(t.writer, strings.Join(t.headers, "\t"))
		rule := make([]string, len(t.headers))
		for i, h := range t.headers {
			rule[i] = strings.Repeat(t.separator, len(h))
		}
		_, _ = fmt.Fprintln(t.writer, strings.Join(rule, "\t"))
	}
	for _, row := range t.rows {
		_, _ = fmt.Fprintln(t.writer, strings.Join(row, "\t"))
	}
	return t.writer.Flush()
}
