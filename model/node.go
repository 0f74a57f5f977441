package model

import (
	"fmt"
	"strconv"
)

// Node is one node of a conversion model. Leaf nodes name a row field;
// object and array nodes own their children keyed by field name or by the
// decimal form of the index.
type Node struct {
	Type      Type
	Path      string
	Parent    *Node
	ParentKey string

	keys     []string
	children map[string]*Node
}

func NewLeaf(path string) *Node {
	return &Node{Type: LeafType, Path: path}
}

func NewObject(path string) *Node {
	return &Node{Type: ObjectType, Path: path, children: map[string]*Node{}}
}

func NewArray(path string) *Node {
	return &Node{Type: ArrayType, Path: path, children: map[string]*Node{}}
}

// AddChild registers child under key. Keys are unique per parent.
func (n *Node) AddChild(key string, child *Node) error {
	if !n.Type.IsInternal() {
		return fmt.Errorf("%w: cannot add %s to %s %s", ErrNotInternal, child.Path, n.Type, n.Path)
	}
	if _, ok := n.children[key]; ok {
		return &DuplicateNodeError{Parent: n.Path, Child: child.Path, Key: key}
	}
	n.children[key] = child
	n.keys = append(n.keys, key)
	child.Parent = n
	child.ParentKey = key
	return nil
}

func (n *Node) Child(key string) *Node {
	return n.children[key]
}

// Keys returns child keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Children returns children in insertion order.
func (n *Node) Children() []*Node {
	res := make([]*Node, len(n.keys))
	for i, k := range n.keys {
		res[i] = n.children[k]
	}
	return res
}

func (n *Node) Len() int {
	return len(n.keys)
}

// MissingIndex returns the smallest index in 0..Len()-1 without a child,
// for array nodes.
func (n *Node) MissingIndex() (int, bool) {
	if n.Type != ArrayType {
		return 0, false
	}
	for i := range len(n.keys) {
		if _, ok := n.children[strconv.Itoa(i)]; !ok {
			return i, true
		}
	}
	return 0, false
}

// Visit walks the tree in pre-order, children in insertion order. f
// returns whether to descend into the node.
func (n *Node) Visit(f func(n *Node, depth int) (bool, error)) error {
	return n.visit(f, 0)
}

func (n *Node) visit(f func(*Node, int) (bool, error), depth int) error {
	dive, err := f(n, depth)
	if err != nil {
		return err
	}
	if !dive {
		return nil
	}
	for _, k := range n.keys {
		if err := n.children[k].visit(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Leaves returns the paths of all leaves under n in tree order.
func (n *Node) Leaves() []string {
	var res []string
	_ = n.Visit(func(x *Node, _ int) (bool, error) {
		if x.Type == LeafType {
			res = append(res, x.Path)
		}
		return true, nil
	})
	return res
}
