package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, ndjson/n, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pathjson").
		WithSynopsis("pathjson [opts] command [opts]").
		WithDescription("pathjson turns rows keyed by leaf paths such as $.a[0].b into nested documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pathjsonMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			TreeCommand(cfg),
			CheckCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := newConvertConfig(mainCfg)
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-m mapping.yaml] [-where expr] [-patch file] [-infer] [-skip] [files]").
		WithDescription("convert csv rows whose header names leaf paths into documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg, Comma: ","}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-m mapping.yaml] [files]").
		WithDescription("show the model built from a csv header").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	conv := newConvertConfig(mainCfg)
	convOpts, err := cli.StructOpts(conv)
	if err != nil {
		panic(err)
	}
	cfg := &CheckConfig{Conv: conv}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, convOpts...)
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ch").
		WithSynopsis("check -e expected.ndjson [convert opts] file").
		WithDescription("convert a csv file and compare each document with a line of expected ndjson").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
