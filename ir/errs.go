package ir

import "errors"

var (
	ErrJSON     = errors.New("json error")
	ErrNotValue = errors.New("not a value")
)
