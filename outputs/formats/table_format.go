package formats

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/cube2222/octovalue/config"
	"github.com/cube2222/octovalue/value"
)

type TableFormatter struct {
	table  *tablewriter.Table
	fields []Field
}

// NewTableFormatter accepts the colWidth and rowLine options.
func NewTableFormatter(w io.Writer, options map[string]interface{}) (*TableFormatter, error) {
	colWidth, err := config.GetInt(options, "colWidth", config.WithDefault(24))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't get column width")
	}
	rowLine, err := config.GetBool(options, "rowLine", config.WithDefault(false))
	if err != nil {
		return nil, errors.Wrap(err, "couldn't get row line option")
	}

	table := tablewriter.NewWriter(w)
	table.SetColWidth(colWidth)
	table.SetRowLine(rowLine)

	return &TableFormatter{
		table: table,
	}, nil
}

func (t *TableFormatter) SetSchema(fields []Field) {
	t.fields = fields
	header := make([]string, len(fields))
	for i := range fields {
		header[i] = fields[i].Name
	}
	t.table.SetAutoFormatHeaders(false)
	t.table.SetHeader(header)
}

func (t *TableFormatter) Write(values []value.Value) error {
	if err := checkRow(t.fields, values); err != nil {
		return err
	}
	row := make([]string, len(values))
	for i := range values {
		row[i] = values[i].String()
	}
	t.table.Append(row)
	return nil
}

func (t *TableFormatter) Close() error {
	t.table.Render()
	return nil
}
