package ir

// Equal reports whether a and b are canonically equal.
//
// Values of different variants are never equal, even when numerically
// equivalent. Floats compare by their BitTriplet, decimals numerically,
// date-times as instants, lists item by item in order and structs by key
// regardless of insertion order. Two nil values are equal.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case BoolType:
		return a.b == b.b
	case IntType:
		return a.i == b.i
	case FloatType:
		return Decompose(a.f) == Decompose(b.f)
	case DecimalType:
		return a.dec.Equal(b.dec)
	case StringType:
		return a.s == b.s
	case DateType:
		return a.date == b.date
	case TimeType:
		return a.tm == b.tm
	case DateTimeType:
		return a.dt.Equal(b.dt)
	case BinaryType:
		return a.blob.Equal(b.blob)
	case ListType:
		return equalLists(a.list, b.list)
	case StructType:
		return equalStructs(a.fields, b.fields)
	}
	return false
}

// Equal is the method form of Equal.
func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

func equalLists(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalStructs(a, b map[Id]*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}
