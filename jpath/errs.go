package jpath

import (
	"errors"
	"fmt"
)

var ErrInvalidPath = errors.New("invalid path")

// PathError reports where and why a path failed to match the grammar.
type PathError struct {
	Path   string
	Offset int
	Reason string
}

func (e *PathError) Unwrap() error {
	return ErrInvalidPath
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s (want $ followed by .name or [index] segments)",
		ErrInvalidPath.Error(), e.Path, e.Offset, e.Reason)
}

func pathErr(p string, off int, reason string) error {
	return &PathError{Path: p, Offset: off, Reason: reason}
}
