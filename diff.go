package pathjson

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/signadot/pathjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two documents as JSON values. It returns "" when they are
// equal, and otherwise a line diff of their indented JSON with object keys
// sorted: removed lines start with "-", added lines with "+".
func Diff(want, got *ir.Node) (string, error) {
	ws, err := canonical(want)
	if err != nil {
		return "", err
	}
	gs, err := canonical(got)
	if err != nil {
		return "", err
	}
	if ws == gs {
		return "", nil
	}
	diffCfg := diffpatch.New()
	wc, gc, lines := diffCfg.DiffLinesToChars(ws, gs)
	diffs := diffCfg.DiffMain(wc, gc, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	buf := bytes.NewBuffer(nil)
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
		}
	}
	return buf.String(), nil
}

func canonical(node *ir.Node) (string, error) {
	var v any
	if node != nil {
		v = node.ToAny()
	}
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(d) + "\n", nil
}
