package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/pathjson/ir"

	"github.com/davecgh/go-spew/spew"
)

var (
	out io.Writer = os.Stderr

	dumper = &spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
		MaxDepth:                8,
	}
)

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<absent>"
				continue
			}
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x.ToAny())
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// Dump writes a pretty printed form of v.
func Dump(label string, v any) {
	fmt.Fprintf(out, "%s:\n%s", label, dumper.Sdump(v))
}
