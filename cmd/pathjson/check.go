package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/pathjson"
	"github.com/signadot/pathjson/ir"
	"github.com/signadot/pathjson/row"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expected == "" {
		return fmt.Errorf("%w: check requires -e expected.ndjson", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check requires 1 csv file, got %v", cli.ErrUsage, args)
	}
	p, err := cfg.Conv.pipeline()
	if err != nil {
		return err
	}
	exp, err := os.Open(cfg.Expected)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", cfg.Expected, err)
	}
	defer exp.Close()

	var diffs int
	err = withInput(cc.In, args[0], func(r io.Reader) error {
		diffs, err = checkReader(p, cc.Out, r, exp, cfg.Conv.useColor(cc.Out))
		return err
	})
	if err != nil {
		return fmt.Errorf("error checking %s: %w", args[0], err)
	}
	if diffs != 0 {
		fmt.Fprintf(cc.Out, "%d documents differ\n", diffs)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkReader converts the csv in r and compares each document with the
// next line of expected. It writes a diff for each mismatch to w and
// returns the number of mismatches, counting missing and extra documents.
func checkReader(p *pipeline, w io.Writer, r, expected io.Reader, colors bool) (int, error) {
	scanner := bufio.NewScanner(expected)
	scanner.Buffer(nil, 64<<20)
	expLine := 0
	next := func() (*ir.Node, error) {
		for scanner.Scan() {
			expLine++
			if strings.TrimSpace(scanner.Text()) == "" {
				continue
			}
			return ir.FromJSON(scanner.Bytes())
		}
		return nil, scanner.Err()
	}
	diffs := 0
	err := p.each(r, func(rec *row.Record, got *ir.Node) error {
		want, err := next()
		if err != nil {
			return fmt.Errorf("expected line %d: %w", expLine, err)
		}
		if want == nil {
			diffs++
			fmt.Fprintf(w, "line %d: unexpected document\n", rec.Line)
			return nil
		}
		d, err := pathjson.Diff(want, got)
		if err != nil {
			return err
		}
		if d == "" {
			return nil
		}
		diffs++
		fmt.Fprintf(w, "line %d (expected line %d):\n", rec.Line, expLine)
		_, err = io.WriteString(w, colorDiff(d, colors))
		return err
	})
	if err != nil {
		return diffs, err
	}
	for {
		want, err := next()
		if err != nil {
			return diffs, fmt.Errorf("expected line %d: %w", expLine, err)
		}
		if want == nil {
			return diffs, nil
		}
		diffs++
		fmt.Fprintf(w, "expected line %d: missing document\n", expLine)
	}
}

func colorDiff(d string, colors bool) string {
	if !colors {
		return d
	}
	lines := strings.SplitAfter(d, "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "-"):
			lines[i] = color.RedString("%s", ln)
		case strings.HasPrefix(ln, "+"):
			lines[i] = color.GreenString("%s", ln)
		}
	}
	return strings.Join(lines, "")
}
