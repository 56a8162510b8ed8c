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
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "shape").
		WithSynopsis("shape [opts] command [opts] [files]").
		WithDescription("shape is a tool for inspecting and trimming the structure of json and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return shapeMain(cfg, cc, args)
		}).
		WithSubs(
			SkeletonCommand(cfg),
			PruneCommand(cfg))
}

func shapeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

func SkeletonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SkeletonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("skeleton").
		WithAliases("s", "sk").
		WithSynopsis("skeleton [opts] [files]").
		WithDescription("blank document leaves, keeping keys and nesting").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSkeleton(cfg, cc, args)
		})
	cfg.Skeleton = cmd
	return cmd
}

func PruneCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PruneConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("prune").
		WithAliases("p", "pr").
		WithSynopsis("prune [opts] [files]").
		WithDescription("remove null and empty entries from documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPrune(cfg, cc, args)
		})
	cfg.Prune = cmd
	return cmd
}
