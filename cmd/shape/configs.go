package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/shapetools/go-shape/encode"
	"github.com/shapetools/go-shape/format"
	"github.com/shapetools/go-shape/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
	}
}

func (cfg *MainConfig) outFormat(inPath string) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.inFormat(inPath)
}

func (cfg *MainConfig) encOpts(w io.Writer, inPath string) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(inPath)),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type SkeletonConfig struct {
	*MainConfig

	Marker string `cli:"name=marker desc='leaf marker value'"`

	Skeleton *cli.Command
}

type PruneConfig struct {
	*MainConfig

	KeepEmpty bool   `cli:"name=keep-empty desc='keep empty string values'"`
	Diff      bool   `cli:"name=diff desc='show a diff of what pruning removed'"`
	Patch     bool   `cli:"name=patch desc='emit a json merge patch of the pruned result'"`
	DropIf    string `cli:"name=drop-if desc='expr predicate over (path, value); true drops the leaf'"`
	Debug     bool   `cli:"name=debug desc='log cycle-skip diagnostics'"`

	Prune *cli.Command
}
