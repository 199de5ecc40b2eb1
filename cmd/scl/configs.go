package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/scl-format/go-scl/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v desc='log debug messages'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if optSet(cfg.Main, "color") {
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

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return newLogger(os.Stderr, level)
}

// optSet reports whether the option name was given on the command line.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}

type BlobConfig struct {
	*MainConfig

	Blob *cli.Command
}

type BlobCodecConfig struct {
	*BlobConfig
	Meta string `cli:"name=m aliases=meta desc='blob metadata'"`

	Codec *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type CompareConfig struct {
	*MainConfig
	Lines bool `cli:"name=lines desc='show a line diff of the dumps'"`

	Compare *cli.Command
}
