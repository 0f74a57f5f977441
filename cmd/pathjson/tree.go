package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pathjson"
	"github.com/signadot/pathjson/model"
	"github.com/signadot/pathjson/row"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts, err := cfg.readerOpts()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if len(args) > 1 {
			if err := writeTreeHeader(cc.Out, file, i == 0); err != nil {
				return err
			}
		}
		err := withInput(cc.In, file, func(r io.Reader) error {
			return treeReader(cc.Out, r, opts...)
		})
		if err != nil {
			return fmt.Errorf("error reading header of %s: %w", file, err)
		}
	}
	return nil
}

// treeReader prints the model for the header of the csv in r, one node
// per line indented by depth.
func treeReader(w io.Writer, r io.Reader, opts ...row.ReaderOption) error {
	rd, err := row.NewReader(r, opts...)
	if err != nil {
		return err
	}
	root, err := pathjson.Build(rd.Paths())
	if err != nil {
		return err
	}
	return root.Visit(func(n *model.Node, depth int) (bool, error) {
		line := strings.Repeat("  ", depth) + n.Type.String() + " " + n.Path
		if i, ok := n.MissingIndex(); ok {
			line += fmt.Sprintf(" (no index %d)", i)
		}
		_, err := io.WriteString(w, line+"\n")
		return true, err
	})
}

// writeTreeHeader names file before its tree when several files are shown.
func writeTreeHeader(w io.Writer, file string, first bool) error {
	if !first {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# %s\n", file)
	return err
}
