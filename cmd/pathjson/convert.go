package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/pathjson"
	"github.com/signadot/pathjson/encode"
	"github.com/signadot/pathjson/ir"
	"github.com/signadot/pathjson/row"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, err := cfg.pipeline()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, file := range args {
		err := withInput(cc.In, file, func(r io.Reader) error {
			return convertReader(cfg, p, cc.Out, r, &n)
		})
		if err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
	}
	return nil
}

// convertReader writes the documents of the csv in r to w. n counts the
// documents written so far, across inputs.
func convertReader(cfg *ConvertConfig, p *pipeline, w io.Writer, r io.Reader, n *int) error {
	encOpts := cfg.encOpts(w)
	yaml := encode.FormatFromOpts(encOpts...).IsYAML()
	return p.each(r, func(_ *row.Record, doc *ir.Node) error {
		if yaml && *n > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		*n++
		return encode.Encode(doc, w, encOpts...)
	})
}

// each builds a converter from the header of the csv in r and calls f
// with each kept document.
func (p *pipeline) each(r io.Reader, f func(*row.Record, *ir.Node) error) error {
	rd, err := row.NewReader(r, p.readerOpts...)
	if err != nil {
		return err
	}
	conv, err := pathjson.NewConverter(rd.Paths())
	if err != nil {
		return err
	}
	for rec, err := range rd.All() {
		if err != nil {
			return err
		}
		doc, err := p.run(conv, rec)
		if err != nil {
			return fmt.Errorf("line %d: %w", rec.Line, err)
		}
		if doc == nil {
			continue
		}
		if err := f(rec, doc); err != nil {
			return err
		}
	}
	return nil
}

// run converts rec. It returns a nil document for rows that are
// filtered out, or skipped as entirely absent.
func (p *pipeline) run(conv *pathjson.Converter, rec *row.Record) (*ir.Node, error) {
	if p.filter != nil {
		ok, err := p.filter.Match(rec)
		if err != nil || !ok {
			return nil, err
		}
	}
	doc, err := conv.Convert(rec)
	if p.skip && errors.Is(err, pathjson.ErrNoneValues) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if p.patch != nil {
		return p.patch.Apply(doc)
	}
	return doc, nil
}
