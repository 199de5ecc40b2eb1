package ir

import "fmt"

// Type identifies the variant held by a Value.
type Type int

const (
	BoolType Type = iota
	IntType
	FloatType
	DecimalType
	StringType
	DateType
	TimeType
	DateTimeType
	BinaryType
	ListType
	StructType
)

var typeNames = map[Type]string{
	BoolType:     "Bool",
	IntType:      "Int",
	FloatType:    "Float",
	DecimalType:  "Decimal",
	StringType:   "String",
	DateType:     "Date",
	TimeType:     "Time",
	DateTimeType: "DateTime",
	BinaryType:   "Binary",
	ListType:     "List",
	StructType:   "Struct",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("unrecognized type %d", int(t))
	}
	return []byte(s), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		BoolType,
		IntType,
		FloatType,
		DecimalType,
		StringType,
		DateType,
		TimeType,
		DateTimeType,
		BinaryType,
		ListType,
		StructType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, StructType:
		return false
	default:
		return true
	}
}
