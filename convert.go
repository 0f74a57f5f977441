package pathjson

import (
	"slices"

	"github.com/signadot/pathjson/ir"
	"github.com/signadot/pathjson/model"
)

// ConvertFunc renders a row into a nested value.
type ConvertFunc func(row model.Row) (*ir.Node, error)

// Converter holds a built model.
type Converter struct {
	root  *model.Node
	paths []string
}

func NewConverter(leafPaths []string) (*Converter, error) {
	root, err := Build(leafPaths)
	if err != nil {
		return nil, err
	}
	return &Converter{root: root, paths: slices.Clone(leafPaths)}, nil
}

// BuildConverter builds the model for leafPaths once and returns a function
// rendering rows with it.
func BuildConverter(leafPaths []string) (ConvertFunc, error) {
	c, err := NewConverter(leafPaths)
	if err != nil {
		return nil, err
	}
	return c.Func(), nil
}

// Convert renders row. A row with every field absent fails with
// ErrNoneValues.
func (c *Converter) Convert(row model.Row) (*ir.Node, error) {
	return model.NewEval(row).Render(c.root)
}

func (c *Converter) Func() ConvertFunc {
	return c.Convert
}

// Root returns the model root. It must not be modified.
func (c *Converter) Root() *model.Node {
	return c.root
}

// Paths returns the leaf paths the model was built from.
func (c *Converter) Paths() []string {
	return slices.Clone(c.paths)
}
