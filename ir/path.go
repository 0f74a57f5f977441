package ir

import (
	"strconv"
)

// Path returns the position of y in its tree as a "$" rooted path.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + y.ParentField
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
