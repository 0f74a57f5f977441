package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/signadot/pathjson/encode"
	"github.com/signadot/pathjson/filter"
	"github.com/signadot/pathjson/format"
	"github.com/signadot/pathjson/patch"
	"github.com/signadot/pathjson/row"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output indented json'"`
	N bool `cli:"name=n aliases=ndjson desc='output one json document per line (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.NDJSONFormat
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

// useColor reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ConvertConfig struct {
	*MainConfig

	Mapping string `cli:"name=m aliases=mapping desc='yaml file mapping csv headers to leaf paths'"`
	Where   string `cli:"name=where desc='only convert rows for which this expression is true'"`
	Patch   string `cli:"name=patch desc='json patch file applied to each document'"`
	Infer   bool   `cli:"name=infer desc='read true, false, null and numbers as json values'"`
	Comma   string `cli:"name=comma desc='csv field delimiter'"`
	Skip    bool   `cli:"name=skip desc='skip rows whose fields are all absent'"`

	Convert *cli.Command
}

func newConvertConfig(mainCfg *MainConfig) *ConvertConfig {
	return &ConvertConfig{MainConfig: mainCfg, Comma: ","}
}

// pipeline holds what a conversion needs besides the model, which is
// built per input from its header.
type pipeline struct {
	readerOpts []row.ReaderOption
	filter     *filter.Filter
	patch      *patch.Patch
	skip       bool
}

func (cfg *ConvertConfig) pipeline() (*pipeline, error) {
	comma, err := parseComma(cfg.Comma)
	if err != nil {
		return nil, err
	}
	p := &pipeline{
		readerOpts: []row.ReaderOption{row.Comma(comma), row.Infer(cfg.Infer)},
		skip:       cfg.Skip,
	}
	if cfg.Mapping != "" {
		m, err := row.LoadMappingFile(cfg.Mapping)
		if err != nil {
			return nil, err
		}
		p.readerOpts = append(p.readerOpts, row.WithMapping(m))
	}
	if cfg.Where != "" {
		f, err := filter.Compile(cfg.Where)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		p.filter = f
	}
	if cfg.Patch != "" {
		jp, err := patch.Load(cfg.Patch)
		if err != nil {
			return nil, err
		}
		p.patch = jp
	}
	return p, nil
}

func parseComma(v string) (rune, error) {
	switch v {
	case `\t`, "tab":
		return '\t', nil
	}
	r, n := utf8.DecodeRuneInString(v)
	if n == 0 || n != len(v) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: -comma must be a single character, got %q", cli.ErrUsage, v)
	}
	return r, nil
}

type TreeConfig struct {
	*MainConfig

	Mapping string `cli:"name=m aliases=mapping desc='yaml file mapping csv headers to leaf paths'"`
	Comma   string `cli:"name=comma desc='csv field delimiter'"`

	Tree *cli.Command
}

func (cfg *TreeConfig) readerOpts() ([]row.ReaderOption, error) {
	conv := &ConvertConfig{MainConfig: cfg.MainConfig, Mapping: cfg.Mapping, Comma: cfg.Comma}
	p, err := conv.pipeline()
	if err != nil {
		return nil, err
	}
	return p.readerOpts, nil
}

type CheckConfig struct {
	Conv *ConvertConfig

	Expected string `cli:"name=e aliases=expected desc='ndjson file with one expected document per converted row'"`

	Check *cli.Command
}
