package ir

import (
	"errors"
	"testing"
	"time"
)

func sampleTable() *Node {
	return FromKeyVals([]KeyVal{
		{"name", FromString("Tom")},
		{"age", FromInt(38)},
		{"ratio", FromFloat(0.5)},
		{"admin", FromBool(true)},
		{"tags", FromSlice([]*Node{FromString("a"), FromString("b")})},
	})
}

func TestIndex(t *testing.T) {
	tbl := sampleTable()
	node, err := tbl.Index("name")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := node.AsStr(); v != "Tom" {
		t.Fatalf("got %q", v)
	}
}

// A missing key and a wrongly typed value must be distinguishable.
func TestMissingVsMismatch(t *testing.T) {
	tbl := sampleTable()

	_, err := tbl.Index("absent")
	if !errors.Is(err, ErrMissingKey) {
		t.Fatalf("got %v, want ErrMissingKey", err)
	}
	if errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("missing key reported as type mismatch: %v", err)
	}

	name, _ := tbl.Index("name")
	_, err = name.AsInt()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
	if errors.Is(err, ErrMissingKey) {
		t.Fatalf("type mismatch reported as missing key: %v", err)
	}

	_, err = name.Index("sub")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("indexing a scalar: got %v, want ErrTypeMismatch", err)
	}
}

func TestAt(t *testing.T) {
	tbl := sampleTable()
	tags, err := tbl.Index("tags")
	if err != nil {
		t.Fatal(err)
	}
	elt, err := tags.At(1)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := elt.AsStr(); v != "b" {
		t.Fatalf("got %q", v)
	}
	if _, err := tags.At(2); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("got %v, want ErrIndexRange", err)
	}
	if _, err := tags.At(-1); !errors.Is(err, ErrIndexRange) {
		t.Fatalf("got %v, want ErrIndexRange", err)
	}
	if _, err := tbl.At(0); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("At on table: got %v, want ErrTypeMismatch", err)
	}
}

// No coercion: integers are not floats, booleans are not integers.
func TestNoCoercion(t *testing.T) {
	tbl := sampleTable()
	age, _ := tbl.Index("age")
	if _, err := age.AsFloat(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("int as float: got %v", err)
	}
	ratio, _ := tbl.Index("ratio")
	if _, err := ratio.AsInt(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("float as int: got %v", err)
	}
	admin, _ := tbl.Index("admin")
	if _, err := admin.AsInt(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("bool as int: got %v", err)
	}
}

func TestAsTime(t *testing.T) {
	when := time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)
	for _, tt := range []Type{DatetimeType, LocalDatetimeType, LocalDateType, LocalTimeType} {
		node := FromTime(tt, when)
		got, err := node.AsTime()
		if err != nil {
			t.Fatalf("%s: %v", tt, err)
		}
		if !got.Equal(when) {
			t.Fatalf("%s: got %v", tt, got)
		}
	}
	if _, err := FromInt(3).AsTime(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
}

func TestAsTableAsArray(t *testing.T) {
	tbl := sampleTable()
	m, err := tbl.AsTable()
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 5 || m["age"] == nil {
		t.Fatalf("unexpected map %v", m)
	}
	tags, _ := tbl.Index("tags")
	vs, err := tags.AsArray()
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 2 {
		t.Fatalf("got %d elements", len(vs))
	}
	if _, err := tags.AsTable(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got %v, want ErrTypeMismatch", err)
	}
}

func TestLen(t *testing.T) {
	tbl := sampleTable()
	if tbl.Len() != 5 {
		t.Fatalf("table len %d", tbl.Len())
	}
	tags, _ := tbl.Index("tags")
	if tags.Len() != 2 {
		t.Fatalf("array len %d", tags.Len())
	}
	if FromInt(1).Len() != 0 {
		t.Fatal("scalar len not 0")
	}
}

func TestCloneIndependent(t *testing.T) {
	tbl := sampleTable()
	cp := tbl.Clone()
	cp.Put("extra", FromInt(1))
	if Get(tbl, "extra") != nil {
		t.Fatal("clone shares storage with original")
	}
	if Compare(tbl, cp) == 0 {
		t.Fatal("modified clone still equal")
	}
}
