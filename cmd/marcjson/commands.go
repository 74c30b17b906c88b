package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, {
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "marcjson").
		WithSynopsis("marcjson [opts] command [opts]").
		WithDescription("marcjson converts between MARC-in-JSON and semantic bibliographic records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return marcjsonMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ReverseCommand(cfg),
			RoundtripCommand(cfg),
			PatchCommand(cfg),
			ViewCommand(cfg))
}

func marcjsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "filter",
			Aliases:     []string{"f"},
			Description: "only output records matching this expression",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.FilterExpr = a
				return a, nil
			}, "(expr)"),
		},
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert [-filter expr] [files]").
		WithDescription("convert MARC records to semantic records").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runConvert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func ReverseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReverseConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("reverse").
		WithAliases("r", "re").
		WithSynopsis("reverse [files]").
		WithDescription("convert semantic records back to MARC records").
		WithRun(func(cc *cli.Context, args []string) error {
			return runReverse(cfg, cc, args)
		})
	cfg.Reverse = cmd
	return cmd
}

func RoundtripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundtripConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [files]").
		WithDescription("diff MARC records against their forward-then-backward image").
		WithRun(func(cc *cli.Context, args []string) error {
			return runRoundtrip(cfg, cc, args)
		})
	cfg.Roundtrip = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "p",
			Aliases:     []string{"patch"},
			Description: "JSON patch (RFC 6902) file to apply to each semantic record",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.PatchFile = a
				return a, nil
			}, "(filepath)"),
		},
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p patchfile [files]").
		WithDescription("apply a JSON patch to semantic records").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view records with color").
		WithRun(func(cc *cli.Context, args []string) error {
			return runView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
