package value

type AttrType int

const (
	AttrUndefined AttrType = iota
	AttrChars
	AttrInts
	AttrDates
	AttrNull
	AttrTexts
	AttrFloats
	AttrBooleans
)

// AllAttrTypes lists every defined kind in declaration order.
var AllAttrTypes = []AttrType{
	AttrUndefined,
	AttrChars,
	AttrInts,
	AttrDates,
	AttrNull,
	AttrTexts,
	AttrFloats,
	AttrBooleans,
}

func (t AttrType) String() string {
	switch t {
	case AttrUndefined:
		return "undefined"
	case AttrChars:
		return "chars"
	case AttrInts:
		return "ints"
	case AttrDates:
		return "dates"
	case AttrNull:
		return "null"
	case AttrTexts:
		return "texts"
	case AttrFloats:
		return "floats"
	case AttrBooleans:
		return "booleans"
	}
	return "unknown"
}

// AttrTypeFromString is the inverse of AttrType.String. Unknown names map to AttrUndefined.
func AttrTypeFromString(name string) AttrType {
	switch name {
	case "chars":
		return AttrChars
	case "ints":
		return AttrInts
	case "dates":
		return AttrDates
	case "null":
		return AttrNull
	case "texts":
		return AttrTexts
	case "floats":
		return AttrFloats
	case "booleans":
		return AttrBooleans
	}
	return AttrUndefined
}

func (t AttrType) isText() bool {
	return t == AttrChars || t == AttrTexts
}
