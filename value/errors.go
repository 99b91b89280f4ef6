package value

import (
	"github.com/pkg/errors"
)

// RC is the result code reported by conversions.
type RC int

const (
	RCSuccess RC = iota
	RCSchemaFieldTypeMismatch
	RCUnimplemented
)

func (rc RC) String() string {
	switch rc {
	case RCSuccess:
		return "SUCCESS"
	case RCSchemaFieldTypeMismatch:
		return "SCHEMA_FIELD_TYPE_MISMATCH"
	case RCUnimplemented:
		return "UNIMPLEMENTED"
	}
	return "UNKNOWN"
}

var (
	ErrTypeMismatch   = errors.New("schema field type mismatch")
	ErrNotImplemented = errors.New("not implemented")
)

// RCOf maps an error returned by this package back to its result code.
// Errors coming from elsewhere are reported as RCUnimplemented.
func RCOf(err error) RC {
	if err == nil {
		return RCSuccess
	}
	switch errors.Cause(err) {
	case ErrTypeMismatch:
		return RCSchemaFieldTypeMismatch
	default:
		return RCUnimplemented
	}
}
