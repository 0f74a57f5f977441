package pathjson

import (
	"fmt"

	"github.com/signadot/pathjson/debug"
	"github.com/signadot/pathjson/jpath"
	"github.com/signadot/pathjson/model"
)

// Builder assembles a conversion model from leaf paths. Ancestors are
// created on demand: a new internal node is an array when the child that
// caused its creation is addressed by index, and an object otherwise.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	internal map[string]*model.Node
	n        int
}

func NewBuilder() *Builder {
	return &Builder{internal: map[string]*model.Node{}}
}

// Add inserts the leaf at path.
func (b *Builder) Add(path string) error {
	parent, seg, err := jpath.Split(path)
	if err != nil {
		return err
	}
	if debug.Build() {
		debug.Logf("add leaf %s under %s key %q\n", path, parent, seg.Key)
	}
	if err := b.join(parent, seg, model.NewLeaf(path)); err != nil {
		return err
	}
	b.n++
	return nil
}

// AddAll inserts each path in order, stopping at the first error.
func (b *Builder) AddAll(paths []string) error {
	for _, p := range paths {
		if err := b.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Root returns the root of the model built so far.
func (b *Builder) Root() (*model.Node, error) {
	root := b.internal[jpath.Root]
	if root == nil {
		return nil, ErrNoPaths
	}
	return root, nil
}

// Len returns the number of leaves added.
func (b *Builder) Len() int {
	return b.n
}

func (b *Builder) join(parent string, seg jpath.Segment, child *model.Node) error {
	p := b.internal[parent]
	if p == nil {
		p = newInternal(parent, seg)
		if parent != jpath.Root {
			grand, pseg, err := jpath.Split(parent)
			if err != nil {
				return err
			}
			if err := b.join(grand, pseg, p); err != nil {
				return err
			}
		}
		if debug.Build() {
			debug.Logf("new %s node %s\n", p.Type, parent)
		}
		b.internal[parent] = p
	}
	if want := internalType(seg); p.Type != want {
		return &KindConflictError{Path: p.Path, Type: p.Type, Child: child.Path, Segment: seg}
	}
	if err := p.AddChild(seg.Key, child); err != nil {
		return err
	}
	return nil
}

func internalType(seg jpath.Segment) model.Type {
	if seg.Kind == jpath.IndexSegment {
		return model.ArrayType
	}
	return model.ObjectType
}

func newInternal(path string, childSeg jpath.Segment) *model.Node {
	if internalType(childSeg) == model.ArrayType {
		return model.NewArray(path)
	}
	return model.NewObject(path)
}

// Build builds the model for leafPaths, which are inserted in order.
// Order only affects the field order of rendered objects. Every path is
// checked against the grammar before any is inserted, so an invalid path
// always fails with ErrInvalidPath.
func Build(leafPaths []string) (*model.Node, error) {
	for _, p := range leafPaths {
		if _, _, err := jpath.Split(p); err != nil {
			return nil, fmt.Errorf("error building model: %w", err)
		}
	}
	b := NewBuilder()
	if err := b.AddAll(leafPaths); err != nil {
		return nil, fmt.Errorf("error building model: %w", err)
	}
	root, err := b.Root()
	if err != nil {
		return nil, err
	}
	if debug.Build() {
		debug.Dump("model", root)
	}
	return root, nil
}
