package row

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/signadot/pathjson/jpath"

	"github.com/goccy/go-yaml"
)

// Mapping renames CSV header cells to leaf paths.
//
//	columns:
//	  user_name: $.user.name
//	  tag_1: $.user.tags[0]
//	skip:
//	  - internal_id
//
// With a non-empty columns map only the mapped headers are kept; without
// one every header not skipped is used as a path as is.
type Mapping struct {
	Columns map[string]string `yaml:"columns"`
	Skip    []string          `yaml:"skip"`
}

// Path returns the leaf path for header, and false if the column is not
// used. A nil Mapping keeps every header.
func (m *Mapping) Path(header string) (string, bool) {
	if m == nil {
		return header, true
	}
	if slices.Contains(m.Skip, header) {
		return "", false
	}
	if len(m.Columns) == 0 {
		return header, true
	}
	p, ok := m.Columns[header]
	return p, ok
}

func LoadMapping(r io.Reader) (*Mapping, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading mapping: %w", err)
	}
	m := &Mapping{}
	if err := yaml.Unmarshal(d, m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapping, err)
	}
	// mapped paths are stored with index keys normalized
	for h, p := range m.Columns {
		if _, _, err := jpath.Split(p); err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrMapping, h, err)
		}
		c, err := jpath.Canonical(p)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrMapping, h, err)
		}
		m.Columns[h] = c
	}
	return m, nil
}

func LoadMappingFile(file string) (*Mapping, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	m, err := LoadMapping(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	return m, nil
}
