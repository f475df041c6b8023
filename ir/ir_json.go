package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// JSON rendering of trees, used by consumers that want to display or
// further process a parsed document without a TOML encoder.  Table
// field order is preserved.  Date-times render as strings in their
// TOML text forms; non-finite floats render as the strings "inf",
// "-inf" and "nan", which JSON numbers cannot carry.

const (
	localDatetimeLayout = "2006-01-02T15:04:05.999999999"
	localDateLayout     = time.DateOnly
	localTimeLayout     = "15:04:05.999999999"
)

func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONIndent is ToJSON with standard indentation.
func ToJSONIndent(node *Node) ([]byte, error) {
	d, err := ToJSON(node)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, node *Node) error {
	switch node.Type {
	case StringType:
		return writeJSONScalar(buf, node.String)
	case IntegerType:
		buf.WriteString(strconv.FormatInt(node.Int64, 10))
		return nil
	case FloatType:
		f := node.Float64
		switch {
		case math.IsInf(f, 1):
			return writeJSONScalar(buf, "inf")
		case math.IsInf(f, -1):
			return writeJSONScalar(buf, "-inf")
		case math.IsNaN(f):
			return writeJSONScalar(buf, "nan")
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		return nil
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
		return nil
	case DatetimeType:
		return writeJSONScalar(buf, node.Time.Format(time.RFC3339Nano))
	case LocalDatetimeType:
		return writeJSONScalar(buf, node.Time.Format(localDatetimeLayout))
	case LocalDateType:
		return writeJSONScalar(buf, node.Time.Format(localDateLayout))
	case LocalTimeType:
		return writeJSONScalar(buf, node.Time.Format(localTimeLayout))
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case TableType:
		buf.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONScalar(buf, node.Fields[i].String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	}
	return fmt.Errorf("unencodable node type %s", node.Type)
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// FromJSON builds a tree from JSON text.  Objects become tables with
// field order taken from the document; numbers become integers when
// they parse exactly as int64 and floats otherwise.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := NewTable()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v", keyTok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Put(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing }
				return nil, err
			}
			return res, nil
		case '[':
			res := &Node{Type: ArrayType}
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Append(val)
			}
			if _, err := dec.Token(); err != nil { // closing ]
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case nil:
		return nil, fmt.Errorf("null has no TOML value")
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}
