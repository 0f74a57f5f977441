package model

import "github.com/signadot/pathjson/ir"

// Row is a flat record addressed by leaf path. Lookup returns nil when the
// field is absent.
type Row interface {
	Lookup(path string) *ir.Node
}

type RowFunc func(path string) *ir.Node

func (f RowFunc) Lookup(path string) *ir.Node {
	return f(path)
}
