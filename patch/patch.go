package patch

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/pathjson/debug"
	"github.com/signadot/pathjson/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch is an RFC 6902 JSON patch applied to converted documents.
type Patch struct {
	ops jsonpatch.Patch
}

func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

func Load(file string) (*Patch, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", file, err)
	}
	p, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", file, err)
	}
	return p, nil
}

func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply returns the patched document. doc is not modified. Object fields
// of the result are sorted by name.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("json patch with %d ops on %s\n", len(p.ops), doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ir.FromJSON(out)
}
