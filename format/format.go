package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	NDJSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":      JSONFormat,
		"json":   JSONFormat,
		"n":      NDJSONFormat,
		"ndjson": NDJSONFormat,
		"jsonl":  NDJSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case NDJSONFormat:
		return []byte("ndjson"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsJSON reports whether documents are written as JSON, one per line or
// indented.
func (f Format) IsJSON() bool   { return f == JSONFormat || f == NDJSONFormat }
func (f Format) IsNDJSON() bool { return f == NDJSONFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case NDJSONFormat:
		return ".ndjson"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".json"
	}
}
