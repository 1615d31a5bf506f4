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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default by file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jlens").
		WithSynopsis("jlens [opts] command [opts]").
		WithDescription("jlens translates json documents and patches through schema lenses.").
		WithOpts(opts...).
		WithRun(cfg.run).
		WithSubs(
			DocCommand(cfg),
			PatchCommand(cfg),
			ExpandCommand(cfg),
			ReverseCommand(cfg),
			MigrateCommand(cfg),
			OpsCommand(cfg))
}

func DocCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("doc").
		WithAliases("d").
		WithSynopsis("doc [opts] <lens> <doc>").
		WithDescription("translate a document through a lens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return doc(cfg, cc, args)
		})
	cfg.Doc = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <lens> <patch>").
		WithDescription("translate a json patch through a lens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("expand").
		WithAliases("x").
		WithSynopsis("expand <patch>").
		WithDescription("expand compound values of a json patch into single value operations").
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func ReverseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReverseConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("reverse").
		WithAliases("r", "rev").
		WithSynopsis("reverse <lens>").
		WithDescription("print the reverse of a lens").
		WithRun(func(cc *cli.Context, args []string) error {
			return reverse(cfg, cc, args)
		})
	cfg.Reverse = cmd
	return cmd
}

func MigrateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MigrateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("migrate").
		WithAliases("m", "mig").
		WithSynopsis("migrate -from <version> -to <version> <versions> <doc>").
		WithDescription("migrate a document between versions by running their migration rules").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return migrate(cfg, cc, args)
		})
	cfg.Migrate = cmd
	return cmd
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("ops").
		WithSynopsis("ops").
		WithDescription("list lens operators and rule executors").
		WithRun(func(cc *cli.Context, args []string) error {
			return ops(cfg, cc, args)
		})
	cfg.Ops = cmd
	return cmd
}
