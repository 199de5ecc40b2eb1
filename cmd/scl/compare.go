package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scl-format/go-scl/encode"
	"github.com/scl-format/go-scl/ir"
	"github.com/scl-format/go-scl/libdiff"

	"github.com/scott-cotton/cli"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	log := cfg.logger()
	a, err := readOne(args[0], log)
	if err != nil {
		return err
	}
	b, err := readOne(args[1], log)
	if err != nil {
		return err
	}
	equal, err := compareValues(cc.Out, a, b, cfg.Lines)
	if err != nil {
		return err
	}
	if !equal {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readOne(file string, log *slog.Logger) (*ir.Value, error) {
	r, err := openInput(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	vs, err := readValues(r, log)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	if len(vs) != 1 {
		return nil, fmt.Errorf("%s: expected 1 document, got %d", file, len(vs))
	}
	return vs[0], nil
}

// compareValues writes "equal" or the differences between a and b.
func compareValues(w io.Writer, a, b *ir.Value, lines bool) (bool, error) {
	if a.Equal(b) {
		_, err := fmt.Fprintln(w, "equal")
		return true, err
	}
	if lines {
		_, err := io.WriteString(w, libdiff.Lines(encode.MustString(a), encode.MustString(b)))
		return false, err
	}
	for _, c := range libdiff.Diff(a, b) {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return false, err
		}
	}
	return false, nil
}
