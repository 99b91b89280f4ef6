// Package value implements the scalar value every part of the engine passes
// around: ints, floats, booleans, fixed and variable length strings, dates
// and null, together with their conversion, ordering and textual rules.
//
// A Value is a plain data holder and is not safe for concurrent use.
package value

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Datum is the payload of a Value. Exactly one variant exists per kind.
//
//go-sumtype:decl Datum
type Datum interface {
	AttrType() AttrType
	datum()
}

type Int int32

func (Int) datum()             {}
func (Int) AttrType() AttrType { return AttrInts }

type Float float32

func (Float) datum()             {}
func (Float) AttrType() AttrType { return AttrFloats }

type Boolean bool

func (Boolean) datum()             {}
func (Boolean) AttrType() AttrType { return AttrBooleans }

func (Date) datum()             {}
func (Date) AttrType() AttrType { return AttrDates }

// Chars is a fixed-length character string.
type Chars []byte

func (Chars) datum()             {}
func (Chars) AttrType() AttrType { return AttrChars }

// Text is a variable-length text blob.
type Text []byte

func (Text) datum()             {}
func (Text) AttrType() AttrType { return AttrTexts }

type Null struct{}

func (Null) datum()             {}
func (Null) AttrType() AttrType { return AttrNull }

// Value holds a single Datum. The zero Value is of kind AttrUndefined.
//
// Mutators never write into an existing text buffer, they install a fresh one.
// SetValue copies, plain assignment shares.
type Value struct {
	datum Datum
}

const numericLength = 4

func NewInt(v int32) Value {
	var out Value
	out.SetInt(v)
	return out
}

func NewFloat(v float32) Value {
	var out Value
	out.SetFloat(v)
	return out
}

func NewBoolean(v bool) Value {
	var out Value
	out.SetBoolean(v)
	return out
}

// NewString creates a CHARS value, see SetString for the meaning of n.
func NewString(s string, n int) Value {
	var out Value
	out.SetString(s, n)
	return out
}

func NewNull() Value {
	return Value{datum: Null{}}
}

func NewDate(year, month, day int) (Value, error) {
	date, err := MakeDate(year, month, day)
	if err != nil {
		return Value{}, err
	}
	return Value{datum: date}, nil
}

// FromDatum wraps an existing payload. A nil Datum or a Date that isn't a
// valid calendar date is rejected.
func FromDatum(d Datum) (Value, error) {
	switch d := d.(type) {
	case nil:
		return Value{}, errors.Wrap(ErrTypeMismatch, "nil datum")
	case Date:
		if _, ok := dateFromPacked(d.packed); !ok {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "invalid packed date %d", d.packed)
		}
	}
	return Value{datum: d}, nil
}

func (v Value) Datum() Datum {
	return v.datum
}

func (v Value) AttrType() AttrType {
	if v.datum == nil {
		return AttrUndefined
	}
	return v.datum.AttrType()
}

func (v Value) IsNull() bool {
	_, ok := v.datum.(Null)
	return ok
}

// Length is the byte length of the active payload: the buffer length for
// CHARS and TEXTS, and 4 for every numeric kind, BOOLEANS included, since
// booleans are stored as a 4-byte integer (see RawBytes). NULL and
// undefined values have length 0.
func (v Value) Length() int {
	switch d := v.datum.(type) {
	case Chars:
		return len(d)
	case Text:
		return len(d)
	case Int, Float, Boolean, Date:
		return numericLength
	}
	return 0
}

func (v *Value) SetInt(val int32) {
	v.datum = Int(val)
}

func (v *Value) SetFloat(val float32) {
	v.datum = Float(val)
}

func (v *Value) SetBoolean(val bool) {
	v.datum = Boolean(val)
}

// SetString makes v a CHARS value. With n > 0 at most the first n bytes of s
// are taken, otherwise all of s. Either way the copy stops at the first NUL.
func (v *Value) SetString(s string, n int) {
	if n > 0 && n < len(s) {
		s = s[:n]
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	v.datum = Chars(s)
}

// SetNull reads the first 4 bytes of flag as a 32-bit integer and makes v
// NULL if it is nonzero. A zero flag leaves v untouched, it does not un-null it.
func (v *Value) SetNull(flag []byte) {
	if len(flag) < numericLength {
		log.Warnf("null flag too short: %d bytes", len(flag))
		return
	}
	if int32(binary.LittleEndian.Uint32(flag)) != 0 {
		v.datum = Null{}
	}
}

// NullFlag encodes isNull the way SetNull expects it.
func NullFlag(isNull bool) []byte {
	out := make([]byte, numericLength)
	if isNull {
		binary.LittleEndian.PutUint32(out, 1)
	}
	return out
}

// SetData reinterprets data as the native encoding of v's current kind.
// Undecodable data, including an undefined kind, is logged and ignored.
func (v *Value) SetData(data []byte) {
	d, ok := decodeDatum(v.AttrType(), data)
	if !ok {
		log.Warnf("couldn't decode %d bytes as data type %s", len(data), v.AttrType())
		return
	}
	v.datum = d
}

// Decode builds a value of the given kind from its raw bytes, see RawBytes.
func Decode(t AttrType, data []byte) (Value, error) {
	d, ok := decodeDatum(t, data)
	if !ok {
		return Value{}, ErrTypeMismatch
	}
	return Value{datum: d}, nil
}

func decodeDatum(t AttrType, data []byte) (Datum, bool) {
	switch t {
	case AttrChars, AttrTexts:
		s := data
		if i := bytes.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		buf := append([]byte{}, s...)
		if t == AttrTexts {
			return Text(buf), true
		}
		return Chars(buf), true
	case AttrNull:
		return Null{}, true
	}

	if len(data) < numericLength {
		return nil, false
	}
	raw := binary.LittleEndian.Uint32(data)

	switch t {
	case AttrInts:
		return Int(int32(raw)), true
	case AttrDates:
		date, ok := dateFromPacked(int32(raw))
		if !ok {
			return nil, false
		}
		return date, true
	case AttrFloats:
		return Float(math.Float32frombits(raw)), true
	case AttrBooleans:
		return Boolean(raw != 0), true
	}
	return nil, false
}

// SetValue copies the logical content of other into v.
// other must not be undefined.
func (v *Value) SetValue(other Value) {
	switch d := other.datum.(type) {
	case Int:
		v.SetInt(other.AsInt())
	case Date:
		v.datum = d
	case Float:
		v.SetFloat(other.AsFloat())
	case Boolean:
		v.SetBoolean(other.AsBool())
	case Chars:
		v.datum = Chars(append([]byte{}, d...))
	case Text:
		v.datum = Text(append([]byte{}, d...))
	case Null:
		v.SetNull(NullFlag(other.IsNull()))
	default:
		panic("[BUG] set_value got an undefined value")
	}
}
