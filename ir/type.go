package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	IntegerType
	FloatType
	BoolType
	DatetimeType
	LocalDatetimeType
	LocalDateType
	LocalTimeType
	ArrayType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:        "String",
		IntegerType:       "Integer",
		FloatType:         "Float",
		BoolType:          "Bool",
		DatetimeType:      "Datetime",
		LocalDatetimeType: "LocalDatetime",
		LocalDateType:     "LocalDate",
		LocalTimeType:     "LocalTime",
		ArrayType:         "Array",
		TableType:         "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":        StringType,
		"Integer":       IntegerType,
		"Float":         FloatType,
		"Bool":          BoolType,
		"Datetime":      DatetimeType,
		"LocalDatetime": LocalDatetimeType,
		"LocalDate":     LocalDateType,
		"LocalTime":     LocalTimeType,
		"Array":         ArrayType,
		"Table":         TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntegerType,
		FloatType,
		BoolType,
		DatetimeType,
		LocalDatetimeType,
		LocalDateType,
		LocalTimeType,
		ArrayType,
		TableType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, TableType:
		return false
	default:
		return true
	}
}

// IsTime reports whether t is one of the four date-time kinds.
func (t Type) IsTime() bool {
	switch t {
	case DatetimeType, LocalDatetimeType, LocalDateType, LocalTimeType:
		return true
	default:
		return false
	}
}
