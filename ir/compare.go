package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Tables compare by their key/value sets: field order does not affect
// equality.  There is no cross-type equality; nodes of different
// types order by type rank.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case DatetimeType, LocalDatetimeType, LocalDateType, LocalTimeType:
		return a.Time.Compare(b.Time)
	case ArrayType:
		return compareArrays(a, b)
	case TableType:
		return compareTables(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.  The four date-time kinds
// rank distinctly so a local date never equals an offset date-time.
func rank(t Type) int {
	switch t {
	case BoolType:
		return 0
	case IntegerType:
		return 1
	case FloatType:
		return 2
	case DatetimeType:
		return 3
	case LocalDatetimeType:
		return 4
	case LocalDateType:
		return 5
	case LocalTimeType:
		return 6
	case StringType:
		return 7
	case ArrayType:
		return 8
	case TableType:
		return 9
	}
	return -1
}

func compareArrays(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareTables(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	keys := make([]string, 0, len(a.Fields))
	for _, f := range a.Fields {
		keys = append(keys, f.String)
	}
	slices.Sort(keys)
	bKeys := make([]string, 0, len(b.Fields))
	for _, f := range b.Fields {
		bKeys = append(bKeys, f.String)
	}
	slices.Sort(bKeys)
	for i := range keys {
		if d := strings.Compare(keys[i], bKeys[i]); d != 0 {
			return d
		}
	}
	for _, k := range keys {
		if d := Compare(Get(a, k), Get(b, k)); d != 0 {
			return d
		}
	}
	return 0
}
