package main

import (
	"bytes"
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
	"github.com/shapetools/go-shape/debug"
	"github.com/shapetools/go-shape/encode"
	"github.com/shapetools/go-shape/format"
	"github.com/shapetools/go-shape/libdiff"
	"github.com/shapetools/go-shape/prune"
)

func runPrune(cfg *PruneConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Prune.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := []prune.Option{
		prune.PruneEmptyStrings(!cfg.KeepEmpty),
	}
	if cfg.Debug || debug.CLI() {
		opts = append(opts, prune.Debug(true))
	}
	if cfg.DropIf != "" {
		dropFunc, err := compileDropIf(cfg.DropIf)
		if err != nil {
			return fmt.Errorf("%w: bad -drop-if expression: %w", cli.ErrUsage, err)
		}
		opts = append(opts, prune.DropLeafFunc(dropFunc))
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if err := pruneFile(cfg, cc.Out, arg, opts); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func pruneFile(cfg *PruneConfig, w io.Writer, arg string, opts []prune.Option) error {
	doc, err := readDoc(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	out, err := prune.Prune(doc, opts...)
	if err != nil {
		return err
	}
	switch {
	case cfg.Diff:
		return pruneDiff(cfg, w, doc, out)
	case cfg.Patch:
		return prunePatch(cfg, w, doc, out)
	default:
		return encodeDoc(cfg.MainConfig, w, arg, out)
	}
}

// pruneDiff renders what pruning removed as a text diff of the two
// documents' json encodings.
func pruneDiff(cfg *PruneConfig, w io.Writer, doc, out any) error {
	from, err := encodeJSON(doc)
	if err != nil {
		return err
	}
	to, err := encodeJSON(out)
	if err != nil {
		return err
	}
	if cfg.Color {
		_, err = io.WriteString(w, libdiff.Text(from, to))
		return err
	}
	_, err = io.WriteString(w, libdiff.Plain(from, to))
	return err
}

// prunePatch emits a json merge patch transforming the input into its
// pruned form.
func prunePatch(cfg *PruneConfig, w io.Writer, doc, out any) error {
	from, err := encodeJSON(doc)
	if err != nil {
		return err
	}
	to, err := encodeJSON(out)
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch([]byte(from), []byte(to))
	if err != nil {
		return fmt.Errorf("error creating merge patch: %w", err)
	}
	patch = append(patch, '\n')
	_, err = w.Write(patch)
	return err
}

func encodeJSON(doc any) (string, error) {
	var buf bytes.Buffer
	if err := encode.Encode(doc, &buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// compileDropIf compiles a -drop-if expression into a leaf predicate. The
// expression sees the leaf's path and value and drops the leaf when it
// evaluates to true.
func compileDropIf(src string) (func(path string, v any) bool, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(path string, v any) bool {
		return runDropIf(prg, path, v)
	}, nil
}

func runDropIf(prg *vm.Program, path string, v any) bool {
	res, err := expr.Run(prg, map[string]any{
		"path":  path,
		"value": v,
	})
	if err != nil {
		if debug.CLI() {
			debug.Logf("shape: -drop-if error at %q: %v\n", path, err)
		}
		return false
	}
	b, ok := res.(bool)
	return ok && b
}
