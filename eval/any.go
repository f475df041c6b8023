package eval

import (
	"fmt"
	"time"

	"github.com/toml-format/go-toml/ir"
)

// ToAny converts a tree to plain Go values: tables become
// map[string]any, arrays []any, scalars their Go payloads.  All four
// date-time kinds come out as time.Time.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.TableType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field.String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.IntegerType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	default:
		return node.Time
	}
}

// FromAny is the inverse of ToAny, with tolerance for the integer
// widths an expression evaluator produces.  Map fields are inserted in
// sorted key order since Go maps have none.
func FromAny(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case *ir.Node:
		return t.Clone(), nil
	case map[string]any:
		fields := make(map[string]*ir.Node, len(t))
		for k, elt := range t {
			node, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			fields[k] = node
		}
		return ir.FromMap(fields), nil
	case []any:
		nodes := make([]*ir.Node, len(t))
		for i, elt := range t {
			node, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			nodes[i] = node
		}
		return ir.FromSlice(nodes), nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case float64:
		return ir.FromFloat(t), nil
	case time.Time:
		return ir.FromTime(ir.DatetimeType, t), nil
	case nil:
		return nil, fmt.Errorf("nil has no TOML value")
	default:
		return nil, fmt.Errorf("no TOML value for %T", v)
	}
}
