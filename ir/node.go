package ir

import (
	"maps"
	"slices"
	"time"
)

// Node is a single value in a TOML document tree.  The Type field
// selects which payload fields are meaningful: scalar payloads live
// in String, Bool, Int64, Float64 and Time; TableType nodes keep
// parallel Fields/Values slices in insertion order; ArrayType nodes
// use Values alone.  A document root is always a TableType node.
//
// Trees returned by parsing are strict: every node has exactly one
// parent and no cycles are possible.  They are meant to be read-only
// after construction and may be shared across goroutines for reads.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
	Time    time.Time
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntegerType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromTime constructs one of the four date-time node kinds.
func FromTime(tt Type, v time.Time) *Node {
	if !tt.IsTime() {
		panic("FromTime: not a time type")
	}
	return &Node{
		Type: tt,
		Time: v,
	}
}

// NewTable returns an empty table node.
func NewTable() *Node {
	return &Node{Type: TableType}
}

// Get returns the value bound to field in a table node, or nil if it
// is absent.  See Index for the error-reporting variant.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Put appends a field/value binding to a table node, preserving
// insertion order.  It does not check for duplicates; the parser does
// that before calling.
func (y *Node) Put(field string, v *Node) {
	i := len(y.Fields)
	f := &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
	y.Fields = append(y.Fields, f)
	y.Values = append(y.Values, v)
}

// Append adds an element to an array node.
func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	y.Values = append(y.Values, v)
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != TableType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := NewTable()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.Put(key, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := NewTable()
	for i := range kvs {
		res.Put(kvs[i].Key, kvs[i].Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Time = y.Time
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dstI := &Node{}
			yf.CloneTo(dstI)
			dstI.Parent = dst
			dst.Fields[i] = dstI
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := &Node{}
			yv.CloneTo(dstI)
			dstI.Parent = dst
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the tree in document order, calling f before and after
// each node's children.  Returning dive=false skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
