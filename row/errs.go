package row

import "errors"

var (
	ErrCSV      = errors.New("csv error")
	ErrNoHeader = errors.New("no header line")
	ErrMapping  = errors.New("bad mapping")
)
