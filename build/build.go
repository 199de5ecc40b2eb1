package build

import (
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/scl-format/go-scl/debug"
	"github.com/scl-format/go-scl/ir"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Build creates the value tree described by root.
func Build(root Node, opts ...BuildOption) (*ir.Value, error) {
	bOpts := &buildOpts{}
	for _, f := range opts {
		f(bOpts)
	}
	if bOpts.log == nil {
		bOpts.log = slog.Default()
	}
	return build(root, 0, bOpts)
}

func build(n Node, depth int, opts *buildOpts) (*ir.Value, error) {
	kind := n.Kind()
	if debug.Build() {
		debug.Logf("build %s%s %q\n", kind, pos(n), n.Literal())
	}
	switch kind {
	case ListKind:
		if err := checkDepth(n, depth, opts); err != nil {
			return nil, err
		}
		res := ir.NewList()
		for _, item := range n.Items() {
			v, err := build(item, depth+1, opts)
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
		return res, nil
	case StructKind:
		if err := checkDepth(n, depth, opts); err != nil {
			return nil, err
		}
		res := ir.NewStruct()
		for _, f := range n.Fields() {
			v, err := build(f.Value, depth+1, opts)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Ident, err)
			}
			key := ir.NewId(f.Ident)
			if f.Annotated {
				key = ir.NewIdWithMetadata(f.Ident, f.Annotation)
			}
			if debug.Build() {
				debug.Logf("build field %s%s = %s\n", key, pos(f.Value), v)
			}
			if old, ok := res.Set(key, v); ok {
				opts.log.Debug("struct key overwritten", "key", key.String(), "old", old.String(), "pos", pos(f.Value))
			}
		}
		return res, nil
	}
	return scalar(kind, n)
}

func checkDepth(n Node, depth int, opts *buildOpts) error {
	if opts.maxDepth > 0 && depth >= opts.maxDepth {
		return fmt.Errorf("%w: %d%s", ErrDepth, opts.maxDepth, pos(n))
	}
	return nil
}

func scalar(kind Kind, n Node) (*ir.Value, error) {
	lit := n.Literal()
	litErr := func(err error) error {
		return fmt.Errorf("%w: %s %q%s: %w", ErrLiteral, kind, lit, pos(n), err)
	}
	switch kind {
	case BoolKind:
		switch lit {
		case "true":
			return ir.FromBool(true), nil
		case "false":
			return ir.FromBool(false), nil
		}
		return nil, litErr(strconv.ErrSyntax)
	case IntKind:
		i, err := strconv.ParseInt(lit, 0, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		bi, ok := new(big.Int).SetString(lit, 0)
		if !ok {
			return nil, litErr(err)
		}
		return ir.FromBigInt(bi), nil
	case FloatKind:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromFloat(f), nil
	case DecimalKind:
		d, err := decimal.NewFromString(lit)
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromDecimal(d), nil
	case StringKind:
		return ir.FromString(lit), nil
	case DateKind:
		d, err := civil.ParseDate(lit)
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromDate(d), nil
	case TimeKind:
		t, err := civil.ParseTime(lit)
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromTime(t), nil
	case DateTimeKind:
		if t, err := time.Parse(time.RFC3339Nano, lit); err == nil {
			return ir.FromDateTime(t), nil
		}
		dt, err := civil.ParseDateTime(lit)
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromCivilDateTime(dt), nil
	case BinaryKind:
		var (
			b   *ir.Blob
			err error
		)
		if md, ok := n.Annotation(); ok {
			b, err = ir.DecodeBase64WithMetadata(lit, md)
		} else {
			b, err = ir.DecodeBase64(lit)
		}
		if err != nil {
			return nil, litErr(err)
		}
		return ir.FromBinary(b), nil
	}
	return nil, fmt.Errorf("%w: %s%s", ErrKind, kind, pos(n))
}
