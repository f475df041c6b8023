// Package ir provides the value tree for parsed TOML documents.
//
// # Overview
//
// A document is a tree of Node values.  The Node Type field is a
// closed set — String, Integer, Float, Bool, the four date-time
// kinds, Array and Table — so consumers can switch over it
// exhaustively.  Table nodes keep their fields in insertion order;
// equality (see Compare) does not depend on that order.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//
// # Accessors
//
// Index and At navigate tables and arrays; AsInt, AsFloat, AsStr,
// AsBool, AsTime, AsArray and AsTable extract payloads.  Failures
// wrap ErrMissingKey, ErrTypeMismatch or ErrIndexRange, which are
// distinguishable with errors.Is — a missing key is never confused
// with a type error, and no accessor coerces between types.
//
// GetPath navigates by dotted path:
//
//	child, err := root.GetPath("servers.alpha.ip")
//	elem, err := root.GetPath("fruits[1].name")
//
// # Thread Safety
//
// Trees returned by parsing are not mutated afterwards and are safe
// for concurrent reads.  Nodes are not safe for concurrent mutation;
// programs that build trees by hand must synchronize or Clone.
package ir
