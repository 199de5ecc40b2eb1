package build

import "fmt"

// Kind is the syntactic form of a Node.
type Kind int

const (
	BoolKind Kind = iota
	IntKind
	FloatKind
	DecimalKind
	StringKind
	DateKind
	TimeKind
	DateTimeKind
	BinaryKind
	ListKind
	StructKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case DecimalKind:
		return "decimal"
	case StringKind:
		return "string"
	case DateKind:
		return "date"
	case TimeKind:
		return "time"
	case DateTimeKind:
		return "datetime"
	case BinaryKind:
		return "binary"
	case ListKind:
		return "list"
	case StructKind:
		return "struct"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is a node of a syntax tree produced by a parser.
type Node interface {
	Kind() Kind
	// Literal is the text of a scalar node, with any quoting removed.
	Literal() string
	// Annotation is the metadata of a binary node.
	Annotation() (string, bool)
	// Items are the children of a list node.
	Items() []Node
	// Fields are the entries of a struct node in source order.
	Fields() []Field
}

// Positioner may be implemented by a Node to locate it in its source for
// error messages.
type Positioner interface {
	Pos() string
}

// Field is a struct entry of a syntax tree.
type Field struct {
	Ident      string
	Annotation string
	Annotated  bool
	Value      Node
}

func pos(n Node) string {
	p, ok := n.(Positioner)
	if !ok {
		return ""
	}
	return " at " + p.Pos()
}
