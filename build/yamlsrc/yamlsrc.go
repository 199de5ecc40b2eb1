// Package yamlsrc reads YAML documents as build.Node syntax trees.
//
// Plain YAML scalars, sequences and mappings map onto the matching SCL
// kinds. Other kinds are selected with tags:
//
//	!!binary, !binary    base64 Binary
//	!binary(meta)        base64 Binary with metadata
//	!decimal             Decimal
//	!date, !time         Date, Time
//	!!timestamp, !datetime
//	                     DateTime
//	!!str, !!int, !!float, !!bool
//
// A mapping key of the form ident<meta> gives an Id with metadata, the
// same form ir.Id.String prints. YAML null and aliases have no SCL
// counterpart and are rejected.
package yamlsrc

import (
	"fmt"
	"strings"

	"github.com/scl-format/go-scl/build"
	"github.com/scl-format/go-scl/debug"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse parses data and returns the syntax tree of each document.
func Parse(data []byte) ([]build.Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]build.Node, 0, len(file.Docs))
	for i, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		n, err := FromAST(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, n)
	}
	return res, nil
}

// FromAST converts a go-yaml AST node into a build.Node.
func FromAST(an ast.Node) (build.Node, error) {
	n, err := convert(an, "")
	if err != nil {
		return nil, err
	}
	return n, nil
}

type node struct {
	kind    build.Kind
	lit     string
	meta    string
	hasMeta bool
	items   []build.Node
	fields  []build.Field
	pos     string
}

func (n *node) Kind() build.Kind      { return n.kind }
func (n *node) Literal() string       { return n.lit }
func (n *node) Items() []build.Node   { return n.items }
func (n *node) Fields() []build.Field { return n.fields }
func (n *node) Pos() string           { return n.pos }
func (n *node) Annotation() (string, bool) {
	return n.meta, n.hasMeta
}

func position(an ast.Node) string {
	tok := an.GetToken()
	if tok == nil || tok.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
}

func convert(an ast.Node, tag string) (*node, error) {
	if an == nil {
		return nil, fmt.Errorf("%w: missing value", ErrUnsupported)
	}
	res := &node{pos: position(an)}
	if debug.Source() {
		debug.Logf("yaml %s %s tag %q\n", an.Type(), res.pos, tag)
	}
	switch x := an.(type) {
	case *ast.TagNode:
		if tag != "" {
			return nil, fmt.Errorf("%w: tag %s on tagged node at %s", ErrUnsupported, x.Start.Value, res.pos)
		}
		return convert(x.Value, x.Start.Value)
	case *ast.AnchorNode:
		return convert(x.Value, tag)
	case *ast.MappingNode:
		if err := untagged(tag, "mapping", res.pos); err != nil {
			return nil, err
		}
		res.kind = build.StructKind
		for _, mv := range x.Values {
			f, err := mappingField(mv)
			if err != nil {
				return nil, err
			}
			res.fields = append(res.fields, f)
		}
		return res, nil
	case *ast.MappingValueNode:
		if err := untagged(tag, "mapping", res.pos); err != nil {
			return nil, err
		}
		f, err := mappingField(x)
		if err != nil {
			return nil, err
		}
		res.kind = build.StructKind
		res.fields = []build.Field{f}
		return res, nil
	case *ast.SequenceNode:
		if err := untagged(tag, "sequence", res.pos); err != nil {
			return nil, err
		}
		res.kind = build.ListKind
		for _, v := range x.Values {
			item, err := convert(v, "")
			if err != nil {
				return nil, err
			}
			res.items = append(res.items, item)
		}
		return res, nil
	case *ast.NullNode:
		return nil, fmt.Errorf("%w: null at %s", ErrUnsupported, res.pos)
	case *ast.AliasNode:
		return nil, fmt.Errorf("%w: alias at %s", ErrUnsupported, res.pos)
	}
	return scalar(an, tag, res)
}

func untagged(tag, what, pos string) error {
	if tag == "" {
		return nil
	}
	return fmt.Errorf("%w: tag %s on %s at %s", ErrUnsupported, tag, what, pos)
}

func scalar(an ast.Node, tag string, res *node) (*node, error) {
	switch x := an.(type) {
	case *ast.StringNode:
		res.kind, res.lit = build.StringKind, x.Value
	case *ast.LiteralNode:
		res.kind, res.lit = build.StringKind, x.Value.Value
	case *ast.IntegerNode:
		res.kind, res.lit = build.IntKind, x.GetToken().Value
	case *ast.FloatNode:
		res.kind, res.lit = build.FloatKind, x.GetToken().Value
	case *ast.InfinityNode:
		res.kind, res.lit = build.FloatKind, "+Inf"
		if strings.HasPrefix(x.GetToken().Value, "-") {
			res.lit = "-Inf"
		}
	case *ast.NanNode:
		res.kind, res.lit = build.FloatKind, "NaN"
	case *ast.BoolNode:
		res.kind, res.lit = build.BoolKind, "false"
		if x.Value {
			res.lit = "true"
		}
	default:
		return nil, fmt.Errorf("%w: %s at %s", ErrUnsupported, an.Type(), res.pos)
	}
	if tag == "" {
		return res, nil
	}
	head, arg, hasArg := tagArg(tag)
	kind, ok := tagKinds[head]
	if !ok || (hasArg && kind != build.BinaryKind) {
		return nil, fmt.Errorf("%w: tag %s at %s", ErrUnsupported, tag, res.pos)
	}
	res.kind = kind
	res.meta, res.hasMeta = arg, hasArg
	return res, nil
}

var tagKinds = map[string]build.Kind{
	"!!str":       build.StringKind,
	"!!int":       build.IntKind,
	"!!float":     build.FloatKind,
	"!!bool":      build.BoolKind,
	"!!binary":    build.BinaryKind,
	"!binary":     build.BinaryKind,
	"!!timestamp": build.DateTimeKind,
	"!datetime":   build.DateTimeKind,
	"!decimal":    build.DecimalKind,
	"!date":       build.DateKind,
	"!time":       build.TimeKind,
}

// tagArg splits a tag of the form head(arg).
func tagArg(tag string) (string, string, bool) {
	open := strings.IndexByte(tag, '(')
	if open == -1 || !strings.HasSuffix(tag, ")") {
		return tag, "", false
	}
	return tag[:open], tag[open+1 : len(tag)-1], true
}

func mappingField(mv *ast.MappingValueNode) (build.Field, error) {
	key, err := keyText(mv.Key)
	if err != nil {
		return build.Field{}, err
	}
	v, err := convert(mv.Value, "")
	if err != nil {
		return build.Field{}, fmt.Errorf("key %q: %w", key, err)
	}
	f := build.Field{Ident: key, Value: v}
	if open := strings.LastIndexByte(key, '<'); open > 0 && strings.HasSuffix(key, ">") {
		f.Ident = key[:open]
		f.Annotation = key[open+1 : len(key)-1]
		f.Annotated = true
	}
	return f, nil
}

func keyText(k ast.Node) (string, error) {
	switch x := k.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return x.GetToken().Value, nil
	}
	return "", fmt.Errorf("%w: %s key at %s", ErrUnsupported, k.Type(), position(k))
}
