package formats

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cube2222/octovalue/config"
	"github.com/cube2222/octovalue/value"
)

type Field struct {
	Name string
	Type value.AttrType
}

type Formatter interface {
	SetSchema(fields []Field)
	Write(values []value.Value) error
	Close() error
}

// New creates the formatter configured in cfg.
func New(cfg *config.Config, w io.Writer) (Formatter, error) {
	switch cfg.Output {
	case config.OutputTable:
		return NewTableFormatter(w, cfg.FormatOptions(config.OutputTable))
	case config.OutputJSON:
		return NewJSONFormatter(w), nil
	case config.OutputCSV:
		return NewCSVFormatter(w), nil
	}
	return nil, errors.Errorf("unknown output format: %s", cfg.Output)
}

// ErrRowMismatch is returned when a row doesn't have one value per schema field.
var ErrRowMismatch = errors.New("row doesn't match schema")

func checkRow(fields []Field, values []value.Value) error {
	if len(values) != len(fields) {
		return errors.Wrapf(ErrRowMismatch, "got %d values for %d fields", len(values), len(fields))
	}
	return nil
}
