package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/scl-format/go-scl/debug"
	"github.com/scl-format/go-scl/ir"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes a dump of v followed by a newline to w.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrEncoding)
	}
	if debug.Encode() {
		debug.Logf("encode %s (wire %t)\n", v.Type(), es.wire)
	}
	if err := encode(v, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(v *ir.Value, w io.Writer, es *EncState) error {
	switch v.Type() {
	case ir.ListType:
		return encodeList(v, w, es)
	case ir.StructType:
		return encodeStruct(v, w, es)
	default:
		return encodeLeaf(v, w, es)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeLeaf(v *ir.Value, w io.Writer, es *EncState) error {
	t := v.Type()
	buf := &strings.Builder{}
	buf.WriteString(es.color(t, TypeColor, t.String()))
	buf.WriteString(es.color(t, SepColor, "("))
	if blob, ok := v.Binary(); ok {
		if md, ok := blob.Metadata(); ok {
			buf.WriteString(es.color(t, MetaColor, md))
			buf.WriteString(es.color(t, SepColor, ":"))
		}
		buf.WriteString(es.color(t, ValueColor, blob.EncodeBase64()))
	} else {
		buf.WriteString(es.color(t, ValueColor, v.ScalarText()))
	}
	buf.WriteString(es.color(t, SepColor, ")"))
	return writeString(w, buf.String())
}

func encodeList(v *ir.Value, w io.Writer, es *EncState) error {
	t := v.Type()
	if err := writeString(w, es.color(t, TypeColor, t.String())+es.color(t, SepColor, "[")); err != nil {
		return err
	}
	if v.Len() != 0 {
		es.depth++
		for i, item := range v.Items() {
			if err := writeItemSep(w, es, t, i); err != nil {
				return err
			}
			if err := encode(item, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(t, SepColor, "]"))
}

func encodeStruct(v *ir.Value, w io.Writer, es *EncState) error {
	t := v.Type()
	if err := writeString(w, es.color(t, TypeColor, t.String())+es.color(t, SepColor, "{")); err != nil {
		return err
	}
	if v.Len() != 0 {
		es.depth++
		i := 0
		for k, item := range v.Entries() {
			if err := writeItemSep(w, es, t, i); err != nil {
				return err
			}
			i++
			if err := writeKey(w, es, k); err != nil {
				return err
			}
			if err := encode(item, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(t, SepColor, "}"))
}

func writeKey(w io.Writer, es *EncState, k ir.Id) error {
	buf := &strings.Builder{}
	buf.WriteString(es.color(ir.StructType, KeyColor, k.Ident()))
	if md, ok := k.Metadata(); ok {
		buf.WriteString(es.color(ir.StructType, MetaColor, "<"+md+">"))
	}
	buf.WriteString(es.color(ir.StructType, SepColor, ": "))
	return writeString(w, buf.String())
}

func writeItemSep(w io.Writer, es *EncState, t ir.Type, i int) error {
	if !es.wire {
		return writeNL(w, es)
	}
	if i == 0 {
		return nil
	}
	return writeString(w, es.color(t, SepColor, ", "))
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
