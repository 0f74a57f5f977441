package model

import "fmt"

type Type int

const (
	LeafType Type = iota
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType:   "Leaf",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf":   LeafType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsInternal() bool {
	return t == ObjectType || t == ArrayType
}
