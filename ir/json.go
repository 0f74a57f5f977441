package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON encodes y as a plain JSON value, keeping object field order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		n, err := NumberText(y)
		if err != nil {
			return err
		}
		buf.WriteString(n)
	case StringType:
		buf.WriteString(QuoteJSON(y.String))
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(QuoteJSON(f.String))
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot encode type %s", ErrJSON, y.Type)
	}
	return nil
}

// NumberText returns the JSON text of a number node. The number text
// is kept when it is valid JSON.
func NumberText(y *Node) (string, error) {
	switch {
	case y.Number != "" && json.Valid([]byte(y.Number)):
		return y.Number, nil
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10), nil
	case y.Float64 != nil:
		d, err := json.Marshal(*y.Float64)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrJSON, err)
		}
		return string(d), nil
	case y.Number != "":
		return "", fmt.Errorf("%w: bad number %q", ErrJSON, y.Number)
	default:
		return "", fmt.Errorf("%w: number without value", ErrJSON)
	}
}

// QuoteJSON quotes s as a JSON string without HTML escaping.
func QuoteJSON(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FromJSON decodes a single JSON value, keeping object field order.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after value", ErrJSON)
	}
	return res, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromAny(x)
	case json.Delim:
		switch x {
		case '[':
			vals := []*Node{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromSlice(vals), nil
		case '{':
			kvs := []KeyVal{}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected key %v", ErrJSON, kt)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				kvs = append(kvs, KeyVal{Key: FromString(key), Val: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return FromKeyVals(kvs), nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
}
