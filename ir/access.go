package ir

import (
	"fmt"
	"time"
)

// The accessor protocol: Index and At navigate composites, the As*
// family extracts scalar payloads.  Failures are reported as errors
// wrapping ErrMissingKey, ErrTypeMismatch or ErrIndexRange, so a
// caller can distinguish an absent key from a wrongly typed value
// with errors.Is.

// Index returns the child bound to key in a table node.
func (y *Node) Index(key string) (*Node, error) {
	if y.Type != TableType {
		return nil, fmt.Errorf("%w: index %q of %s", ErrTypeMismatch, key, y.Type)
	}
	res := Get(y, key)
	if res == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	return res, nil
}

// At returns the i'th element of an array node.
func (y *Node) At(i int) (*Node, error) {
	if y.Type != ArrayType {
		return nil, fmt.Errorf("%w: index [%d] of %s", ErrTypeMismatch, i, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: [%d] (len %d)", ErrIndexRange, i, len(y.Values))
	}
	return y.Values[i], nil
}

// Len returns the number of array elements or table fields, and 0
// for scalars.
func (y *Node) Len() int {
	if y.Type == TableType {
		return len(y.Fields)
	}
	return len(y.Values)
}

func (y *Node) AsInt() (int64, error) {
	if y.Type != IntegerType {
		return 0, typeErr(IntegerType, y.Type)
	}
	return y.Int64, nil
}

func (y *Node) AsFloat() (float64, error) {
	if y.Type != FloatType {
		return 0, typeErr(FloatType, y.Type)
	}
	return y.Float64, nil
}

func (y *Node) AsStr() (string, error) {
	if y.Type != StringType {
		return "", typeErr(StringType, y.Type)
	}
	return y.String, nil
}

func (y *Node) AsBool() (bool, error) {
	if y.Type != BoolType {
		return false, typeErr(BoolType, y.Type)
	}
	return y.Bool, nil
}

// AsTime extracts the payload of any of the four date-time kinds.
func (y *Node) AsTime() (time.Time, error) {
	if !y.Type.IsTime() {
		return time.Time{}, typeErr(DatetimeType, y.Type)
	}
	return y.Time, nil
}

func (y *Node) AsArray() ([]*Node, error) {
	if y.Type != ArrayType {
		return nil, typeErr(ArrayType, y.Type)
	}
	return y.Values, nil
}

func (y *Node) AsTable() (map[string]*Node, error) {
	if y.Type != TableType {
		return nil, typeErr(TableType, y.Type)
	}
	return ToMap(y), nil
}

func typeErr(want, got Type) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}
