package formats

import (
	"io"
	"math"

	"github.com/valyala/fastjson"

	"github.com/cube2222/octovalue/value"
)

type JSONFormatter struct {
	buf    []byte
	arena  *fastjson.Arena
	w      io.Writer
	fields []Field
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{
		buf:   make([]byte, 0, 1024),
		arena: new(fastjson.Arena),
		w:     w,
	}
}

func (t *JSONFormatter) SetSchema(fields []Field) {
	t.fields = fields
}

func (t *JSONFormatter) Write(values []value.Value) error {
	if err := checkRow(t.fields, values); err != nil {
		return err
	}
	obj := t.arena.NewObject()
	for i := range t.fields {
		obj.Set(t.fields[i].Name, ValueToJson(t.arena, values[i]))
	}

	t.buf = obj.MarshalTo(t.buf)
	t.buf = append(t.buf, '\n')
	_, err := t.w.Write(t.buf)
	t.buf = t.buf[:0]
	t.arena.Reset()
	return err
}

// ValueToJson maps numbers and booleans to their JSON counterparts.
// Strings and dates become JSON strings. NaN and infinities have no JSON
// number form and become null.
func ValueToJson(arena *fastjson.Arena, v value.Value) *fastjson.Value {
	switch d := v.Datum().(type) {
	case value.Null, nil:
		return arena.NewNull()
	case value.Int:
		return arena.NewNumberInt(int(d))
	case value.Float:
		if f := float64(d); math.IsNaN(f) || math.IsInf(f, 0) {
			return arena.NewNull()
		}
		return arena.NewNumberString(value.FormatFloat(float64(d)))
	case value.Boolean:
		if d {
			return arena.NewTrue()
		}
		return arena.NewFalse()
	default:
		return arena.NewString(v.String())
	}
}

func (t *JSONFormatter) Close() error {
	return nil
}
