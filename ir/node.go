package ir

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
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
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = &Node{Type: NullType}
		} else if kv.Key.Type == StringType {
			kv.Key.ParentField = kv.Key.String
			kv.Val.ParentField = kv.Key.ParentField
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an object with fields sorted by key.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: FromString(key), Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

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

// ReType turns a string node holding null, a boolean or a number into a
// node of that type.
func (y *Node) ReType() {
	if y.Type != StringType {
		return
	}
	v := y.String
	switch v {
	case "null":
		y.Type = NullType
		return
	case "true":
		y.Type = BoolType
		y.Bool = true
		return
	case "false":
		y.Type = BoolType
		y.Bool = false
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		y.Type = NumberType
		y.Int64 = &i
		y.Number = v
		return
	}
	if !json.Valid([]byte(v)) {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	switch {
	case err == nil:
		y.Type = NumberType
		y.Float64 = &f
		y.Number = v
	case errors.Is(err, strconv.ErrRange):
		y.Type = NumberType
		y.Number = v
	}
}

// ToAny converts y to plain Go values: map[string]any, []any, string,
// bool, int64, float64, json.Number or nil.
func (y *Node) ToAny() any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = y.Values[i].ToAny()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return json.Number(y.Number)
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny. Maps become objects sorted by key.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint32:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		y := FromString(string(x))
		y.ReType()
		if y.Type != NumberType {
			return nil, fmt.Errorf("%w: bad number %q", ErrNotValue, x)
		}
		return y, nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			y, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			y, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = y
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotValue, v)
	}
}
