package ir

import (
	"errors"
	"slices"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestStructLastWriteWins(t *testing.T) {
	v := StructFromEntries(
		Entry{NewId("a"), FromInt(1)},
		Entry{NewId("a"), FromInt(2)},
		Entry{NewIdWithMetadata("a", "m"), FromInt(3)},
	)
	if v.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", v.Len())
	}
	got, ok := v.Get(NewId("a"))
	if !ok || !Equal(got, FromInt(2)) {
		t.Errorf("Get(a) = %v, %t", got, ok)
	}
	old, ok := v.Set(NewId("a"), FromInt(4))
	if !ok || !Equal(old, FromInt(2)) {
		t.Errorf("Set returned %v, %t", old, ok)
	}
	if old.Owner() != nil {
		t.Error("displaced value still owned")
	}
	if _, ok := v.Delete(NewIdWithMetadata("a", "m")); !ok {
		t.Error("Delete found nothing")
	}
	if _, ok := v.Delete(NewIdWithMetadata("a", "m")); ok {
		t.Error("Delete found a deleted key")
	}
	want := StructFromEntries(Entry{NewId("a"), FromInt(4)})
	if diff := cmp.Diff(want, v, cmp.Comparer(Equal)); diff != "" {
		t.Errorf("struct mismatch (-want +got):\n%s", diff)
	}
}

func TestListAllowsDuplicates(t *testing.T) {
	l := NewList()
	l.Append(FromInt(1), FromInt(1))
	l.Append(FromInt(1))
	if l.Len() != 3 {
		t.Errorf("Len() = %d", l.Len())
	}
	var got []int64
	for i, item := range l.Items() {
		n, _ := item.Int()
		got = append(got, n+int64(i))
	}
	if !slices.Equal(got, []int64{1, 2, 3}) {
		t.Errorf("Items gave %v", got)
	}
	if !Equal(l.Index(2), FromInt(1)) {
		t.Errorf("Index(2) = %s", l.Index(2))
	}
}

func TestStrictTree(t *testing.T) {
	child := FromString("x")
	a := ListFromValues(child)
	if a.Index(0) != child || child.Owner() != a {
		t.Fatal("unowned child was not adopted")
	}
	b := ListFromValues(child)
	if b.Index(0) == child {
		t.Error("owned child shared between lists")
	}
	if b.Index(0).Owner() != b {
		t.Error("clone not owned by new list")
	}

	// inserting a container into itself or a descendant clones it
	root := NewStruct()
	inner := NewList()
	root.Set(NewId("inner"), inner)
	inner = mustGet(t, root, NewId("inner"))
	inner.Append(root)
	if inner.Index(0) == root {
		t.Fatal("cycle created")
	}

	self := NewList()
	self.Append(self)
	if self.Len() != 1 || self.Index(0) == self {
		t.Fatal("list appended to itself")
	}
	if self.Index(0).Len() != 0 {
		t.Errorf("self clone has %d items", self.Index(0).Len())
	}

	// a value owned by one list is copied into the next
	s := StructFromEntries(Entry{NewId("k"), FromInt(1)})
	first := ListFromValues(s)
	second := ListFromValues(s)
	s.Set(NewId("k"), FromInt(2))
	got, _ := first.Index(0).Get(NewId("k"))
	if !Equal(got, FromInt(2)) {
		t.Errorf("first list child is %s", got)
	}
	got, _ = second.Index(0).Get(NewId("k"))
	if !Equal(got, FromInt(1)) {
		t.Errorf("second list child changed to %s", got)
	}

	// a blob held by one value is copied into the next
	blob := BlobFromBytes([]byte("ab"))
	v1 := FromBinary(blob)
	v2 := FromBinary(blob)
	b1, _ := v1.Binary()
	b2, _ := v2.Binary()
	if b1 != blob || b2 == blob {
		t.Fatal("blob shared between values")
	}
	set := NewValueSet(v1)
	b2.WriteByte('c')
	if string(b1.Bytes()) != "ab" || !set.Has(v1) {
		t.Errorf("first value changed to %s", v1)
	}
	l := ListFromValues(v1)
	l.Append(FromBinary(blob))
	if lb, _ := l.Index(1).Binary(); lb == blob {
		t.Error("list item shares blob")
	}
	c := v1.Clone()
	cb, _ := c.Binary()
	if cb == b1 {
		t.Error("clone shares blob")
	}
	if fb, _ := FromBinary(cb).Binary(); fb == cb {
		t.Error("blob of clone shared")
	}
}

func mustGet(t *testing.T, v *Value, k Id) *Value {
	t.Helper()
	res, ok := v.Get(k)
	if !ok {
		t.Fatalf("no key %s", k)
	}
	return res
}

func TestWrongVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FromInt(1).Append(FromInt(2))
}

func TestAccessors(t *testing.T) {
	v := FromInt(3)
	if n, ok := v.Int(); !ok || n != 3 {
		t.Errorf("Int() = %d, %t", n, ok)
	}
	if _, ok := v.Float(); ok {
		t.Error("Int value reports Float")
	}
	if _, ok := v.Binary(); ok {
		t.Error("Int value reports Binary")
	}
	if s, ok := FromString("s").Str(); !ok || s != "s" {
		t.Errorf("Str() = %q, %t", s, ok)
	}
	if d, ok := FromDecimal(decimal.New(5, -1)).Decimal(); !ok || d.String() != "0.5" {
		t.Errorf("Decimal() = %s, %t", d, ok)
	}
	if v.Len() != 0 {
		t.Errorf("scalar Len() = %d", v.Len())
	}
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != typ {
			t.Errorf("type %s round tripped to %s (%v)", typ, back, err)
		}
	}
}

func TestString(t *testing.T) {
	v := StructFromEntries(
		Entry{NewId("total_count"), FromInt(1)},
		Entry{NewIdWithMetadata("items", "user"), ListFromValues(
			FromBool(true),
			FromFloat(1.5),
			FromDecimal(decimal.New(123456, -2)),
			FromString("a\"b"),
			FromDate(civil.Date{Year: 2023, Month: time.February, Day: 17}),
			FromTime(civil.Time{Hour: 14, Minute: 32, Second: 16}),
			FromDateTime(time.Date(2023, time.February, 17, 14, 32, 16, 0, time.UTC)),
			FromBinary(Bytes("Not a secret")),
		)},
	)
	want := `Struct{items<user>: List[Bool(true), Float(1.5), Decimal(1234.56), String("a\"b"), ` +
		`Date(2023-02-17), Time(14:32:16), DateTime(2023-02-17T14:32:16Z), Binary(Tm90IGEgc2VjcmV0)], ` +
		`total_count: Int(1)}`
	if diff := cmp.Diff(want, v.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
}

func TestVisit(t *testing.T) {
	v := StructFromEntries(
		Entry{NewId("b"), ListFromValues(FromInt(1), FromInt(2))},
		Entry{NewId("a"), FromString("x")},
	)
	var pre []string
	err := v.Visit(func(v *Value, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, v.Type().String())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Struct", "String", "List", "Int", "Int"}
	if diff := cmp.Diff(want, pre); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}

	errStop := errors.New("stop")
	n := 0
	err = v.Visit(func(v *Value, isPost bool) (bool, error) {
		n++
		if v.Type() == ListType {
			return false, errStop
		}
		return true, nil
	})
	if !errors.Is(err, errStop) {
		t.Errorf("Visit error = %v", err)
	}
	if n != 4 {
		t.Errorf("visited %d times before stopping", n)
	}
}

func TestClone(t *testing.T) {
	blob := BlobFromBytes([]byte("ab"))
	v := StructFromEntries(Entry{NewId("bin"), FromBinary(blob)})
	c := v.Clone()
	if !Equal(v, c) {
		t.Fatal("clone differs")
	}
	blob.WriteString("c")
	if Equal(v, c) {
		t.Error("clone shares blob")
	}
	got, _ := c.Get(NewId("bin"))
	if got.Owner() != c {
		t.Error("clone child owned by original")
	}
}
