package filter

import (
	"errors"
	"fmt"

	"github.com/signadot/pathjson/debug"
	"github.com/signadot/pathjson/model"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("filter error")

// Filter is a compiled boolean expression over the fields of a row.
//
// Within the expression, get(path) returns the value of the leaf path as
// a string, bool, int64, float64 or nil when absent, and has(path) reports
// whether the path is present.
type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(rowEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: could not compile %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the expression against row.
func (f *Filter) Match(row model.Row) (bool, error) {
	res, err := expr.Run(f.prg, rowEnv(row))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	ok, _ := res.(bool)
	if debug.Rows() {
		debug.Logf("filter %q: %t\n", f.src, ok)
	}
	return ok, nil
}

func rowEnv(row model.Row) map[string]any {
	return map[string]any{
		"get": func(path string) any {
			if row == nil {
				return nil
			}
			y := row.Lookup(path)
			if y == nil || !y.Type.IsLeaf() {
				return nil
			}
			return y.ToAny()
		},
		"has": func(path string) bool {
			return row != nil && row.Lookup(path) != nil
		},
	}
}
