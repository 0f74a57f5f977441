package row

import (
	"fmt"

	"github.com/signadot/pathjson/ir"
)

// Map is a row held in memory. Paths missing from the map, or mapped to
// nil, are absent.
type Map map[string]*ir.Node

func (m Map) Lookup(path string) *ir.Node {
	return m[path]
}

// FromValues converts plain Go values to a Map. Nil values are absent.
func FromValues(vals map[string]any) (Map, error) {
	res := make(Map, len(vals))
	for p, v := range vals {
		if v == nil {
			continue
		}
		y, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("value at %s: %w", p, err)
		}
		res[p] = y
	}
	return res, nil
}
