package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// seed is shared by every hash computed in the process so that nested
// hashes combine consistently.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v consistent with Equal: equal values hash
// alike. Hashes are stable only within one process.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	v.writeHash(&h)
	return h.Sum64()
}

func (v *Value) writeHash(h *maphash.Hash) {
	h.WriteByte(byte(v.typ))

	switch v.typ {
	case BoolType:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		writeUint64(h, uint64(v.i))
	case FloatType:
		t := Decompose(v.f)
		writeUint64(h, t.Mantissa)
		writeUint64(h, uint64(t.Exponent))
		h.WriteByte(byte(t.Sign))
	case DecimalType:
		// String drops trailing fractional zeros, so numerically equal
		// decimals of different scale hash alike.
		writeString(h, v.dec.String())
	case StringType:
		writeString(h, v.s)
	case DateType:
		writeUint64(h, uint64(v.date.Year))
		writeUint64(h, uint64(v.date.Month))
		writeUint64(h, uint64(v.date.Day))
	case TimeType:
		writeUint64(h, uint64(v.tm.Hour))
		writeUint64(h, uint64(v.tm.Minute))
		writeUint64(h, uint64(v.tm.Second))
		writeUint64(h, uint64(v.tm.Nanosecond))
	case DateTimeType:
		writeUint64(h, uint64(v.dt.Unix()))
		writeUint64(h, uint64(v.dt.Nanosecond()))
	case BinaryType:
		v.blob.writeHash(h)
	case ListType:
		writeUint64(h, uint64(len(v.list)))
		for _, item := range v.list {
			writeUint64(h, item.Hash())
		}
	case StructType:
		// Entry hashes are summed so that the result does not depend on
		// map iteration order.
		var sum uint64
		for k, item := range v.fields {
			var eh maphash.Hash
			eh.SetSeed(seed)
			k.writeHash(&eh)
			writeUint64(&eh, item.Hash())
			sum += eh.Sum64()
		}
		writeUint64(h, uint64(len(v.fields)))
		writeUint64(h, sum)
	}
}

func writeUint64(h *maphash.Hash, x uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	h.Write(b[:])
}

func writeString(h *maphash.Hash, s string) {
	writeUint64(h, uint64(len(s)))
	h.WriteString(s)
}

func writeOptString(h *maphash.Hash, s string, ok bool) {
	if !ok {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	writeString(h, s)
}
