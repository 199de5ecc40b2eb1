package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scl-format/go-scl/ir"

	"github.com/scott-cotton/cli"
)

func blob(cfg *BlobConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Blob.Parse(cc, args)
	if err != nil {
		return err
	}
	return runSub(cfg.Blob, cc, args)
}

func blobEncode(cfg *BlobCodecConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Codec.Parse(cc, args)
	if err != nil {
		return err
	}
	var r io.Reader
	switch {
	case len(args) == 0 || (len(args) == 1 && args[0] == "-"):
		r = cc.In
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("could not open %q: %w", args[0], err)
		}
		defer f.Close()
		r = f
	default:
		return fmt.Errorf("%w: encode takes at most one file, got %v", cli.ErrUsage, args)
	}
	return encodeBlob(cc.Out, r, cfg.Meta, optSet(cfg.Codec, "m"))
}

// encodeBlob reads r into a blob and writes its display form.
func encodeBlob(w io.Writer, r io.Reader, meta string, hasMeta bool) error {
	b := ir.NewBlob()
	if hasMeta {
		b = ir.NewBlobWithMetadata(meta)
	}
	if _, err := b.ReadFrom(r); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	_, err := fmt.Fprintln(w, b)
	return err
}

func blobDecode(cfg *BlobCodecConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Codec.Parse(cc, args)
	if err != nil {
		return err
	}
	var text string
	switch len(args) {
	case 0:
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		text = strings.TrimRight(string(d), "\r\n")
	case 1:
		text = args[0]
	default:
		return fmt.Errorf("%w: decode takes at most one argument, got %v", cli.ErrUsage, args)
	}
	return decodeBlob(cc.Out, text, cfg.Meta, optSet(cfg.Codec, "m"))
}

// decodeBlob writes the raw bytes encoded by text.
func decodeBlob(w io.Writer, text, meta string, hasMeta bool) error {
	var (
		b   *ir.Blob
		err error
	)
	if hasMeta {
		b, err = ir.DecodeBase64WithMetadata(text, meta)
	} else {
		b, err = ir.DecodeBase64(text)
	}
	if err != nil {
		return err
	}
	_, err = b.WriteTo(w)
	return err
}
