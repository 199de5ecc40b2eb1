package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "scl").
		WithSynopsis("scl [opts] command [opts]").
		WithDescription("scl is a tool for working with SCL values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sclMain(cfg, cc, args)
		}).
		WithSubs(
			DemoCommand(cfg),
			BlobCommand(cfg),
			DumpCommand(cfg),
			CompareCommand(cfg))
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("demo").
		WithSynopsis("demo").
		WithDescription("dump a sample document").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
	cfg.Demo = cmd
	return cmd
}

func BlobCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlobConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("blob").
		WithAliases("b").
		WithSynopsis("blob command [opts]").
		WithDescription("convert between raw bytes and base64 blobs").
		WithRun(func(cc *cli.Context, args []string) error {
			return blob(cfg, cc, args)
		}).
		WithSubs(
			BlobEncodeCommand(cfg),
			BlobDecodeCommand(cfg))
	cfg.Blob = cmd
	return cmd
}

func BlobEncodeCommand(blobCfg *BlobConfig) *cli.Command {
	cfg := &BlobCodecConfig{BlobConfig: blobCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-m meta] [file|-]").
		WithDescription("print the display form of a blob holding the bytes of a file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blobEncode(cfg, cc, args)
		})
	cfg.Codec = cmd
	return cmd
}

func BlobDecodeCommand(blobCfg *BlobConfig) *cli.Command {
	cfg := &BlobCodecConfig{BlobConfig: blobCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [-m meta] [base64]").
		WithDescription("decode base64 text, from the argument or stdin, to raw bytes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blobDecode(cfg, cc, args)
		})
	cfg.Codec = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("build values from yaml documents and dump them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("compare").
		WithAliases("c", "cmp").
		WithSynopsis("compare [-lines] file1 file2").
		WithDescription("compare the values of two yaml documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
	cfg.Compare = cmd
	return cmd
}
