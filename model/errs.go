package model

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateNode     = errors.New("duplicate node addition")
	ErrMissingArrayIndex = errors.New("missing array index")
	ErrNoneValues        = errors.New("none values accessed")
	ErrNotInternal       = errors.New("not an internal node")
)

// DuplicateNodeError reports a second child registered under an occupied
// key.
type DuplicateNodeError struct {
	Parent string
	Child  string
	Key    string
}

func (e *DuplicateNodeError) Unwrap() error {
	return ErrDuplicateNode
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("%s: child node %s was added to parent node %s more than once (key %q)",
		ErrDuplicateNode.Error(), e.Child, e.Parent, e.Key)
}

// MissingIndexError reports an array node whose children skip Index.
type MissingIndexError struct {
	Path  string
	Index int
}

func (e *MissingIndexError) Unwrap() error {
	return ErrMissingArrayIndex
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("%s: no path of the form %s[%d]...", ErrMissingArrayIndex.Error(), e.Path, e.Index)
}

// NoneValuesError reports a render of a node that is absent from the row.
// Subtree is set for internal nodes, where every path under Path is
// absent.
type NoneValuesError struct {
	Path    string
	Subtree bool
}

func (e *NoneValuesError) Unwrap() error {
	return ErrNoneValues
}

func (e *NoneValuesError) Error() string {
	if e.Subtree {
		return fmt.Sprintf("%s: values at paths %s... are all absent", ErrNoneValues.Error(), e.Path)
	}
	return fmt.Sprintf("%s: value at path %s is absent", ErrNoneValues.Error(), e.Path)
}
