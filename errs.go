package pathjson

import (
	"errors"
	"fmt"

	"github.com/signadot/pathjson/jpath"
	"github.com/signadot/pathjson/model"
)

var (
	ErrNoPaths      = errors.New("no leaf paths")
	ErrKindConflict = errors.New("kind conflict")

	ErrInvalidPath       = jpath.ErrInvalidPath
	ErrDuplicateNode     = model.ErrDuplicateNode
	ErrMissingArrayIndex = model.ErrMissingArrayIndex
	ErrNoneValues        = model.ErrNoneValues
)

// KindConflictError reports a path that addresses an existing object node
// by index, or an existing array node by field name.
type KindConflictError struct {
	Path    string
	Type    model.Type
	Child   string
	Segment jpath.Segment
}

func (e *KindConflictError) Unwrap() error {
	return ErrKindConflict
}

func (e *KindConflictError) Error() string {
	return fmt.Sprintf("%s: %s reaches %s node %s by %s %s",
		ErrKindConflict.Error(), e.Child, e.Type, e.Path, e.Segment.Kind, e.Segment)
}
