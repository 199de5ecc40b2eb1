package ir

import (
	"iter"
	"math"
	"math/big"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Integer is the set of Go integer types convertible with FromInt.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BlobSource is implemented by types which convert to binary data.
type BlobSource interface {
	AsBlob() *Blob
}

// FromInt creates an Int value. Integers of up to 32 bits convert
// losslessly; wider unsigned values are narrowed by a two's complement
// cast to int64, so values above math.MaxInt64 wrap to negative numbers.
func FromInt[T Integer](v T) *Value {
	return &Value{typ: IntType, i: int64(v)}
}

var low64 = new(big.Int).SetUint64(math.MaxUint64)

// FromBigInt creates an Int value from the low 64 bits of the two's
// complement representation of v. This is how 128 bit integers, signed or
// unsigned, are converted: out of range magnitudes are truncated, not
// rejected. It panics if v is nil.
func FromBigInt(v *big.Int) *Value {
	if v == nil {
		panic("ir: FromBigInt called with nil")
	}
	lo := new(big.Int).And(v, low64)
	return FromInt(int64(lo.Uint64()))
}

// FromFloat creates a Float value; float32 arguments are widened exactly.
func FromFloat[T ~float32 | ~float64](v T) *Value {
	return &Value{typ: FloatType, f: float64(v)}
}

func FromDecimal(d decimal.Decimal) *Value {
	return &Value{typ: DecimalType, dec: d}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, s: s}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, b: b}
}

func FromDate(d civil.Date) *Value {
	return &Value{typ: DateType, date: d}
}

func FromTime(t civil.Time) *Value {
	return &Value{typ: TimeType, tm: t}
}

// FromDateTime creates a DateTime value holding the same instant as t in
// UTC. The original location of t is discarded.
func FromDateTime(t time.Time) *Value {
	return &Value{typ: DateTimeType, dt: t.Round(0).UTC()}
}

// FromCivilDateTime creates a DateTime value from a date and time with no
// offset, which is taken to be UTC.
func FromCivilDateTime(dt civil.DateTime) *Value {
	return FromDateTime(dt.In(time.UTC))
}

// FromBinary creates a Binary value from the blob provided by src. A blob
// already held by another value is copied, so no two values share one.
func FromBinary(src BlobSource) *Value {
	b := src.AsBlob()
	switch {
	case b == nil:
		b = NewBlob()
	case b.owned:
		b = b.Clone()
	}
	b.owned = true
	return &Value{typ: BinaryType, blob: b}
}

// NewStruct creates an empty struct.
func NewStruct() *Value {
	return &Value{typ: StructType, fields: map[Id]*Value{}}
}

// NewList creates an empty list.
func NewList() *Value {
	return &Value{typ: ListType}
}

// StructFromEntries creates a struct from entries. When a key occurs more
// than once the last entry wins.
func StructFromEntries(entries ...Entry) *Value {
	res := &Value{typ: StructType, fields: make(map[Id]*Value, len(entries))}
	for _, e := range entries {
		res.Set(e.Key, e.Value)
	}
	return res
}

// StructFromSeq is StructFromEntries over a sequence.
func StructFromSeq(seq iter.Seq2[Id, *Value]) *Value {
	res := NewStruct()
	for k, v := range seq {
		res.Set(k, v)
	}
	return res
}

// ListFromValues creates a list holding items in order.
func ListFromValues(items ...*Value) *Value {
	res := &Value{typ: ListType, list: make([]*Value, 0, len(items))}
	res.Append(items...)
	return res
}

// ListFromSeq is ListFromValues over a sequence.
func ListFromSeq(seq iter.Seq[*Value]) *Value {
	res := NewList()
	for v := range seq {
		res.Append(v)
	}
	return res
}
