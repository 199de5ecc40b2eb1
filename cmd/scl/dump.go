package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/scl-format/go-scl/build"
	"github.com/scl-format/go-scl/build/yamlsrc"
	"github.com/scl-format/go-scl/encode"
	"github.com/scl-format/go-scl/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	log := cfg.logger()
	if len(args) == 0 {
		return dumpReader(cc.Out, cc.In, log, opts)
	}
	for i, file := range args {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := dumpFile(cc.Out, file, log, opts); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(w io.Writer, file string, log *slog.Logger, opts []encode.EncodeOption) error {
	r, err := openInput(file)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := dumpReader(w, r, log, opts); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(w io.Writer, r io.Reader, log *slog.Logger, opts []encode.EncodeOption) error {
	vs, err := readValues(r, log)
	if err != nil {
		return err
	}
	for i, v := range vs {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if err := encode.Encode(v, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

func openInput(file string) (io.ReadCloser, error) {
	if file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}

// readValues builds a value from each yaml document in r.
func readValues(r io.Reader, log *slog.Logger) ([]*ir.Value, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	nodes, err := yamlsrc.Parse(in)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Value, 0, len(nodes))
	for i, n := range nodes {
		v, err := build.Build(n, build.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("error building document %d: %w", i, err)
		}
		log.Debug("built document", "index", i, "type", v.Type(), "hash", v.Hash())
		res = append(res, v)
	}
	return res, nil
}
