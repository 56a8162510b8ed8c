package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/shapetools/go-shape/encode"
	"github.com/shapetools/go-shape/parse"
	"github.com/shapetools/go-shape/skeleton"
)

func runSkeleton(cfg *SkeletonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Skeleton.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := skeletonFile(cfg, cc.Out, arg); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func skeletonFile(cfg *SkeletonConfig, w io.Writer, arg string) error {
	doc, err := readDoc(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	out, err := skeleton.Deflesh(doc, skeleton.Marker(cfg.Marker))
	if err != nil {
		return err
	}
	return encodeDoc(cfg.MainConfig, w, arg, out)
}

func readDoc(cfg *MainConfig, arg string) (any, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func encodeDoc(cfg *MainConfig, w io.Writer, arg string, doc any) error {
	if err := encode.Encode(doc, w, cfg.encOpts(w, arg)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
