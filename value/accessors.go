package value

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cube2222/octovalue/value/lenient"
)

// The As* accessors never fail. Text that doesn't parse reads as zero or false.

func (v Value) AsInt() int32 {
	switch d := v.datum.(type) {
	case Chars:
		return textToInt(string(d))
	case Text:
		return textToInt(string(d))
	case Int:
		return int32(d)
	case Date:
		return d.packed
	case Float:
		return int32(d)
	case Boolean:
		return boolToInt(bool(d))
	}
	log.Warnf("can't read data type %s as int", v.AttrType())
	return 0
}

func textToInt(s string) int32 {
	if i, ok := lenient.ParseInt(s); ok {
		return int32(i)
	}
	log.Tracef("failed to convert string to number. s=%s", s)
	return 0
}

func (v Value) AsFloat() float32 {
	switch d := v.datum.(type) {
	case Chars:
		return textToFloat(string(d))
	case Text:
		return textToFloat(string(d))
	case Int:
		return float32(d)
	case Date:
		// Dates read as their packed YYYYMMDD number, as AsInt does.
		return float32(d.packed)
	case Float:
		return float32(d)
	case Boolean:
		return float32(boolToInt(bool(d)))
	}
	log.Warnf("can't read data type %s as float", v.AttrType())
	return 0
}

func textToFloat(s string) float32 {
	f, ok := lenient.ParseFloat(s)
	if !ok {
		log.Tracef("failed to convert string to float. s=%s", s)
		return 0
	}
	return float32(f)
}

func (v Value) AsBool() bool {
	switch d := v.datum.(type) {
	case Chars:
		return textToBool(string(d))
	case Text:
		return textToBool(string(d))
	case Int:
		return d != 0
	case Date:
		// Every valid date is truthy; none packs to zero.
		return true
	case Float:
		return isNonZeroFloat(float64(d))
	case Boolean:
		return bool(d)
	}
	log.Warnf("can't read data type %s as boolean", v.AttrType())
	return false
}

// textToBool is true for a number that isn't zero, false for zero,
// and otherwise true for any non-empty string.
func textToBool(s string) bool {
	f, floatOK := lenient.ParseFloat(s)
	if floatOK && isNonZeroFloat(f) {
		return true
	}
	i, intOK := lenient.ParseInt(s)
	if intOK && i != 0 {
		return true
	}
	if floatOK || intOK {
		return false
	}
	log.Tracef("failed to convert string to float or integer. s=%s", s)
	return s != ""
}

func isNonZeroFloat(f float64) bool {
	return f >= Epsilon || f <= -Epsilon
}

// AsString is the same as String.
func (v Value) AsString() string {
	return v.String()
}

func (v Value) String() string {
	switch d := v.datum.(type) {
	case Int:
		return strconv.FormatInt(int64(d), 10)
	case Date:
		return strconv.Itoa(d.Year()) + "-" + strconv.Itoa(d.Month()) + "-" + strconv.Itoa(d.Day())
	case Float:
		return FormatFloat(float64(d))
	case Boolean:
		return strconv.Itoa(int(boolToInt(bool(d))))
	case Null:
		return "null"
	case Chars:
		return string(d)
	case Text:
		return string(d)
	}
	log.Warnf("unsupported attr type: %s", v.AttrType())
	return ""
}

// FormatFloat renders f with at most two decimals and no trailing zeros.
func FormatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'f', 2, 64)
	if !strings.Contains(out, ".") {
		return out
	}
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "-0" {
		return "0"
	}
	return out
}

// RawBytes exposes the payload in its storage encoding: the text buffer for
// CHARS and TEXTS, nil for NULL and undefined, and 4 little-endian bytes
// otherwise. The text buffer is shared with v: writing to it changes v, and
// it must not be kept past the next mutation of v.
func (v Value) RawBytes() []byte {
	switch d := v.datum.(type) {
	case Chars:
		return d
	case Text:
		return d
	case Null, nil:
		return nil
	}

	out := make([]byte, numericLength)
	switch d := v.datum.(type) {
	case Int:
		binary.LittleEndian.PutUint32(out, uint32(d))
	case Date:
		binary.LittleEndian.PutUint32(out, uint32(d.packed))
	case Float:
		binary.LittleEndian.PutUint32(out, math.Float32bits(float32(d)))
	case Boolean:
		binary.LittleEndian.PutUint32(out, uint32(boolToInt(bool(d))))
	}
	return out
}
