package formats

import (
	"encoding/csv"
	"io"

	"github.com/cube2222/octovalue/value"
)

type CSVFormatter struct {
	writer *csv.Writer
	fields []Field
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{
		writer: csv.NewWriter(w),
	}
}

func (t *CSVFormatter) SetSchema(fields []Field) {
	t.fields = fields
	header := make([]string, len(fields))
	for i := range fields {
		header[i] = fields[i].Name
	}
	t.writer.Write(header)
}

func (t *CSVFormatter) Write(values []value.Value) error {
	if err := checkRow(t.fields, values); err != nil {
		return err
	}
	row := make([]string, len(values))
	for i := range values {
		row[i] = values[i].String()
	}
	return t.writer.Write(row)
}

func (t *CSVFormatter) Close() error {
	t.writer.Flush()
	return t.writer.Error()
}
