package value

import (
	"github.com/pkg/errors"
)

// MaxTextLength is the largest CHARS value that can become TEXTS.
const MaxTextLength = 65535

// TryConvert returns v converted to target without touching v.
//
// A value already of kind target, and NULL, convert to themselves.
// Otherwise only CHARS to DATES and CHARS to TEXTS are supported; every
// other target reports ErrNotImplemented.
func (v Value) TryConvert(target AttrType) (Value, error) {
	current := v.AttrType()
	if current == target || current == AttrNull {
		return v, nil
	}

	switch target {
	case AttrDates:
		chars, ok := v.datum.(Chars)
		if !ok {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "couldn't convert %s to %s", current, target)
		}
		date, ok := parseDate(chars)
		if !ok {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "couldn't convert '%s' to %s", string(chars), target)
		}
		return Value{datum: date}, nil

	case AttrTexts:
		chars, ok := v.datum.(Chars)
		if !ok {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "couldn't convert %s to %s", current, target)
		}
		if len(chars) > MaxTextLength {
			return Value{}, errors.Wrapf(ErrTypeMismatch, "text of length %d exceeds %d bytes", len(chars), MaxTextLength)
		}
		return Value{datum: Text(append([]byte{}, chars...))}, nil

	default:
		return Value{}, errors.Wrapf(ErrNotImplemented, "couldn't convert %s to %s", current, target)
	}
}

// ConvertTo converts v in place. When it fails v keeps its previous kind and payload.
func (v *Value) ConvertTo(target AttrType) error {
	out, err := v.TryConvert(target)
	if err != nil {
		return err
	}
	*v = out
	return nil
}
