package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/pathjson/format"
	"github.com/signadot/pathjson/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node followed by a newline. Colors apply to JSON formats
// only.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsNDJSON() {
		es.indent = 0
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	}
	s, err := scalarText(node)
	if err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, ValueColor, s))
}

func scalarText(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return ir.NumberText(node)
	case ir.StringType:
		return ir.QuoteJSON(node.String), nil
	default:
		return "", fmt.Errorf("%w: cannot encode type %s", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.color(ir.ObjectType, SepColor, s) }
	if len(node.Fields) == 0 {
		return writeString(w, sep("{}"))
	}
	if err := writeString(w, sep("{")); err != nil {
		return err
	}
	es.depth++
	colon := sep(":")
	if es.indent != 0 {
		colon += " "
	}
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := es.color(ir.ObjectType, FieldColor, ir.QuoteJSON(f.String))
		if err := writeString(w, key+colon); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, sep("}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.color(ir.ArrayType, SepColor, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("[]"))
	}
	if err := writeString(w, sep("[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, sep("]"))
}

// yamlNumber keeps the number text of nodes whose value does not fit an
// int64 or float64.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			y, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return res, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		s, err := ir.NumberText(node)
		if err != nil {
			return nil, err
		}
		return yamlNumber(s), nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: cannot encode type %s", ErrEncoding, node.Type)
	}
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		return writeString(w, "\n")
	}
	return nil
}
