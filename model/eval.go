package model

import (
	"fmt"
	"strconv"

	"github.com/signadot/pathjson/debug"
	"github.com/signadot/pathjson/ir"
)

// Eval evaluates nodes against one row. It remembers the presence of each
// node it has checked, so the check a parent makes before rendering a child
// and the check the child makes before rendering itself are computed once.
//
// An Eval belongs to a single row and a single goroutine. Nodes hold no
// evaluation state, so any number of Evals may share one tree.
type Eval struct {
	row     Row
	present map[*Node]bool
	values  map[*Node]*ir.Node
}

func NewEval(row Row) *Eval {
	return &Eval{
		row:     row,
		present: map[*Node]bool{},
		values:  map[*Node]*ir.Node{},
	}
}

// Present reports whether n has at least one non-absent leaf in the row.
func (e *Eval) Present(n *Node) bool {
	if p, ok := e.present[n]; ok {
		return p
	}
	p := false
	switch n.Type {
	case LeafType:
		if v := e.row.Lookup(n.Path); v != nil {
			e.values[n] = v
			p = true
		}
	default:
		for _, k := range n.keys {
			if e.Present(n.children[k]) {
				p = true
				break
			}
		}
	}
	if debug.Eval() {
		debug.Logf("present %s %s: %t\n", n.Type, n.Path, p)
	}
	e.present[n] = p
	return p
}

// Render produces the value of n for the row. Absent children are left
// out of objects, and absent array elements are skipped so the array is
// compacted.
func (e *Eval) Render(n *Node) (*ir.Node, error) {
	if !e.Present(n) {
		return nil, &NoneValuesError{Path: n.Path, Subtree: n.Type.IsInternal()}
	}
	switch n.Type {
	case LeafType:
		res := e.values[n].Clone()
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
		return res, nil
	case ObjectType:
		return e.renderObject(n)
	case ArrayType:
		return e.renderArray(n)
	default:
		return nil, fmt.Errorf("cannot render node type %s at %s", n.Type, n.Path)
	}
}

func (e *Eval) renderObject(n *Node) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(n.keys))
	for _, k := range n.keys {
		child := n.children[k]
		if !e.Present(child) {
			continue
		}
		v, err := e.Render(child)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: v})
	}
	return ir.FromKeyVals(kvs), nil
}

func (e *Eval) renderArray(n *Node) (*ir.Node, error) {
	if i, missing := n.MissingIndex(); missing {
		return nil, &MissingIndexError{Path: n.Path, Index: i}
	}
	vals := make([]*ir.Node, 0, len(n.keys))
	for i := range len(n.keys) {
		child := n.children[strconv.Itoa(i)]
		if !e.Present(child) {
			continue
		}
		v, err := e.Render(child)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return ir.FromSlice(vals), nil
}

// Present is NewEval(row).Present(n).
func (n *Node) Present(row Row) bool {
	return NewEval(row).Present(n)
}

// Render is NewEval(row).Render(n).
func (n *Node) Render(row Row) (*ir.Node, error) {
	return NewEval(row).Render(n)
}
