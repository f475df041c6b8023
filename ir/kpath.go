package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toml-format/go-toml/ir/kpath"
	"github.com/toml-format/go-toml/token"
)

// KPath returns the dotted path of this node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Table field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Nested table field → "a.b"
//   - Mixed → "a[0].b"
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case TableType:
		f := node.ParentField
		prefix := node.Parent.KPath()
		if token.NeedsQuote(f) {
			f = token.Quote(f)
		}
		if prefix == "" {
			return f
		}
		return prefix + "." + f

	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"

	default:
		panic("parent but not in container")
	}
}

// GetPath navigates the tree by a dotted path.
//
//	root.GetPath("a.b.c")
//	root.GetPath("fruits[1].name")
//
// A missing field reports ErrMissingKey; indexing or descending into
// a node of the wrong type reports ErrTypeMismatch.  The returned
// errors carry the path walked so far.
func (node *Node) GetPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.getPath(p)
}

func (node *Node) getPath(kp *kpath.KPath) (*Node, error) {
	res := node
	walked := &strings.Builder{}
	for kp != nil {
		var err error
		switch {
		case kp.Field != nil:
			res, err = res.Index(*kp.Field)
			if walked.Len() > 0 {
				walked.WriteByte('.')
			}
			walked.WriteString(*kp.Field)
		case kp.Index != nil:
			res, err = res.At(*kp.Index)
			walked.WriteString("[" + strconv.Itoa(*kp.Index) + "]")
		}
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", walked.String(), err)
		}
		kp = kp.Next
	}
	return res, nil
}
