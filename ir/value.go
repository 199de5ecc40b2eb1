package ir

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Value is a single node of an SCL value tree.
//
// The variant is fixed at construction and reported by Type; only the
// payload matching the variant is meaningful. Values are built with the
// From* and New* constructors and are never valid as zero values.
type Value struct {
	typ   Type
	owner *Value

	b      bool
	i      int64
	f      float64
	dec    decimal.Decimal
	s      string
	date   civil.Date
	tm     civil.Time
	dt     time.Time
	blob   *Blob
	list   []*Value
	fields map[Id]*Value
}

// Entry is a key and value pair of a struct.
type Entry struct {
	Key   Id
	Value *Value
}

func (v *Value) Type() Type {
	return v.typ
}

// Owner returns the list or struct holding v, or nil for a root value.
func (v *Value) Owner() *Value {
	return v.owner
}

func (v *Value) Bool() (bool, bool) {
	return v.b, v.typ == BoolType
}

func (v *Value) Int() (int64, bool) {
	return v.i, v.typ == IntType
}

func (v *Value) Float() (float64, bool) {
	return v.f, v.typ == FloatType
}

func (v *Value) Decimal() (decimal.Decimal, bool) {
	return v.dec, v.typ == DecimalType
}

// Str returns the payload of a String value.
func (v *Value) Str() (string, bool) {
	return v.s, v.typ == StringType
}

func (v *Value) Date() (civil.Date, bool) {
	return v.date, v.typ == DateType
}

func (v *Value) Time() (civil.Time, bool) {
	return v.tm, v.typ == TimeType
}

// DateTime returns the payload of a DateTime value, always in UTC.
func (v *Value) DateTime() (time.Time, bool) {
	return v.dt, v.typ == DateTimeType
}

func (v *Value) Binary() (*Blob, bool) {
	if v.typ != BinaryType {
		return nil, false
	}
	return v.blob, true
}

// Len returns the number of items of a list or entries of a struct, and 0
// for scalars.
func (v *Value) Len() int {
	switch v.typ {
	case ListType:
		return len(v.list)
	case StructType:
		return len(v.fields)
	}
	return 0
}

func (v *Value) mustBe(t Type, op string) {
	if v.typ != t {
		panic(fmt.Sprintf("ir: %s on %s value", op, v.typ))
	}
}

// adopt makes child a child of v. A child that already has an owner, or
// that is v itself or one of its ancestors, is cloned first, so a value
// tree never shares nodes and never has cycles.
func (v *Value) adopt(child *Value) *Value {
	if child == nil {
		panic("ir: nil child value")
	}
	if child.owner != nil || child.isAncestorOf(v) {
		child = child.Clone()
	}
	child.owner = v
	return child
}

func (v *Value) isAncestorOf(o *Value) bool {
	for p := o; p != nil; p = p.owner {
		if p == v {
			return true
		}
	}
	return false
}

// Append adds items to the end of a list.
func (v *Value) Append(items ...*Value) {
	v.mustBe(ListType, "Append")
	for _, item := range items {
		v.list = append(v.list, v.adopt(item))
	}
}

// Index returns the i'th item of a list.
func (v *Value) Index(i int) *Value {
	v.mustBe(ListType, "Index")
	return v.list[i]
}

// Items iterates over the items of a list in order.
func (v *Value) Items() iter.Seq2[int, *Value] {
	v.mustBe(ListType, "Items")
	return slices.All(v.list)
}

// Set stores val under key in a struct. Any previous value under key is
// detached and returned.
func (v *Value) Set(key Id, val *Value) (*Value, bool) {
	v.mustBe(StructType, "Set")
	val = v.adopt(val)
	old, ok := v.fields[key]
	if ok {
		old.owner = nil
	}
	v.fields[key] = val
	return old, ok
}

func (v *Value) Get(key Id) (*Value, bool) {
	v.mustBe(StructType, "Get")
	res, ok := v.fields[key]
	return res, ok
}

// Delete removes key from a struct, returning the detached value.
func (v *Value) Delete(key Id) (*Value, bool) {
	v.mustBe(StructType, "Delete")
	old, ok := v.fields[key]
	if !ok {
		return nil, false
	}
	delete(v.fields, key)
	old.owner = nil
	return old, true
}

// Keys returns the keys of a struct ordered by Id.Compare.
func (v *Value) Keys() []Id {
	v.mustBe(StructType, "Keys")
	keys := make([]Id, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Id.Compare)
	return keys
}

// Entries iterates over a struct in key order.
func (v *Value) Entries() iter.Seq2[Id, *Value] {
	keys := v.Keys()
	return func(yield func(Id, *Value) bool) {
		for _, k := range keys {
			if !yield(k, v.fields[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of v with no owner.
func (v *Value) Clone() *Value {
	res := *v
	res.owner = nil
	switch v.typ {
	case BinaryType:
		res.blob = v.blob.Clone()
		res.blob.owned = true
	case ListType:
		res.list = make([]*Value, len(v.list))
		for i, item := range v.list {
			c := item.Clone()
			c.owner = &res
			res.list[i] = c
		}
	case StructType:
		res.fields = make(map[Id]*Value, len(v.fields))
		for k, item := range v.fields {
			c := item.Clone()
			c.owner = &res
			res.fields[k] = c
		}
	}
	return &res
}

// Visit walks the tree rooted at v, calling f before (isPost false) and
// after (isPost true) the children of each value. Children are visited
// only when the pre call returns true. Struct entries are visited in key
// order.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.typ {
		case ListType:
			for _, item := range v.list {
				if err := item.Visit(f); err != nil {
					return err
				}
			}
		case StructType:
			for _, item := range v.Entries() {
				if err := item.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

// String returns a single line diagnostic rendering of v.
func (v *Value) String() string {
	buf := &strings.Builder{}
	v.writeDebug(buf)
	return buf.String()
}

func (v *Value) writeDebug(buf *strings.Builder) {
	buf.WriteString(v.typ.String())
	switch v.typ {
	case ListType:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i != 0 {
				buf.WriteString(", ")
			}
			item.writeDebug(buf)
		}
		buf.WriteByte(']')
		return
	case StructType:
		buf.WriteByte('{')
		i := 0
		for k, item := range v.Entries() {
			if i != 0 {
				buf.WriteString(", ")
			}
			i++
			buf.WriteString(k.String())
			buf.WriteString(": ")
			item.writeDebug(buf)
		}
		buf.WriteByte('}')
		return
	}
	buf.WriteByte('(')
	buf.WriteString(v.ScalarText())
	buf.WriteByte(')')
}

// ScalarText renders the payload of a leaf value. Strings are quoted.
// It returns "" for lists and structs.
func (v *Value) ScalarText() string {
	switch v.typ {
	case BoolType:
		return strconv.FormatBool(v.b)
	case IntType:
		return strconv.FormatInt(v.i, 10)
	case FloatType:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case DecimalType:
		return v.dec.String()
	case StringType:
		return strconv.Quote(v.s)
	case DateType:
		return v.date.String()
	case TimeType:
		return v.tm.String()
	case DateTimeType:
		return v.dt.Format(time.RFC3339Nano)
	case BinaryType:
		return v.blob.String()
	}
	return ""
}
