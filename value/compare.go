package value

import (
	"bytes"
)

// Epsilon is the tolerance under which two floats compare equal,
// and under which a float is considered false.
const Epsilon = 1e-6

// Compare returns -1, 0 or 1 as left is less than, equal to or greater than right.
func Compare(left, right Value) int {
	return left.Compare(right)
}

// Compare orders v against other.
//
// NULL sorts before every other value. Ints and floats compare with each
// other after promoting the int. Any other mix of kinds is unsupported: a
// warning is logged and -1 is returned.
func (v Value) Compare(other Value) int {
	if v.AttrType() == other.AttrType() {
		switch left := v.datum.(type) {
		case Int:
			return compareInt(int32(left), int32(other.datum.(Int)))
		case Date:
			return compareInt(left.packed, other.datum.(Date).packed)
		case Float:
			return compareFloat(float32(left), float32(other.datum.(Float)))
		case Boolean:
			return compareInt(boolToInt(bool(left)), boolToInt(bool(other.datum.(Boolean))))
		case Chars:
			return bytes.Compare(left, other.datum.(Chars))
		case Text:
			return bytes.Compare(left, other.datum.(Text))
		case Null:
			return 0
		default:
			log.Warnf("unsupported type: %s", v.AttrType())
		}
	} else if v.IsNull() {
		return -1
	} else if other.IsNull() {
		return 1
	} else if left, ok := v.datum.(Int); ok {
		if right, ok := other.datum.(Float); ok {
			return compareFloat(float32(left), float32(right))
		}
	} else if left, ok := v.datum.(Float); ok {
		if right, ok := other.datum.(Int); ok {
			return compareFloat(float32(left), float32(right))
		}
	}

	log.Warnf("comparing %s with %s is not supported", v.AttrType(), other.AttrType())
	return -1
}

func compareInt(left, right int32) int {
	if left < right {
		return -1
	} else if left > right {
		return 1
	} else {
		return 0
	}
}

func compareFloat(left, right float32) int {
	diff := left - right
	if diff > Epsilon {
		return 1
	} else if diff < -Epsilon {
		return -1
	} else {
		return 0
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
