package cmd

import (
	"fmt"
	"math"

	"github.com/valyala/fastjson/fastfloat"

	"github.com/cube2222/octovalue/value"
)

// parseLiteral builds a value of the named kind. Numbers and booleans must
// be the whole literal, texts and dates go through the conversion engine.
func parseLiteral(kind, literal string) (value.Value, error) {
	t := value.AttrTypeFromString(kind)
	switch t {
	case value.AttrInts:
		i, err := fastfloat.ParseInt64(literal)
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return value.Value{}, fmt.Errorf("invalid ints literal: '%s'", literal)
		}
		return value.NewInt(int32(i)), nil

	case value.AttrFloats:
		f, err := fastfloat.Parse(literal)
		if err != nil {
			return value.Value{}, fmt.Errorf("invalid floats literal: '%s'", literal)
		}
		return value.NewFloat(float32(f)), nil

	case value.AttrBooleans:
		switch literal {
		case "true", "1":
			return value.NewBoolean(true), nil
		case "false", "0":
			return value.NewBoolean(false), nil
		}
		return value.Value{}, fmt.Errorf("invalid booleans literal: '%s'", literal)

	case value.AttrChars:
		return value.NewString(literal, 0), nil

	case value.AttrTexts, value.AttrDates:
		out, err := value.NewString(literal, 0).TryConvert(t)
		if err != nil {
			return value.Value{}, fmt.Errorf("%s: %w", value.RCOf(err), err)
		}
		return out, nil

	case value.AttrNull:
		return value.NewNull(), nil
	}
	return value.Value{}, fmt.Errorf("unknown kind: '%s'", kind)
}
