package ir

import (
	"slices"
	"testing"
)

func TestIdEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Id
		want bool
	}{
		{"plain", NewId("x"), NewId("x"), true},
		{"case sensitive", NewId("x"), NewId("X"), false},
		{"metadata vs none", NewId("x"), NewIdWithMetadata("x", "m"), false},
		{"empty metadata vs none", NewId("x"), NewIdWithMetadata("x", ""), false},
		{"different metadata", NewIdWithMetadata("x", "m1"), NewIdWithMetadata("x", "m2"), false},
		{"same metadata", NewIdWithMetadata("x", "m"), NewIdWithMetadata("x", "m"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%s == %s is %t, want %t", tt.a, tt.b, got, tt.want)
			}
			if got := tt.a.Compare(tt.b) == 0; got != tt.want {
				t.Errorf("Compare(%s, %s) == 0 is %t, want %t", tt.a, tt.b, got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Error("equal ids hash differently")
			}
		})
	}
}

func TestIdAccessors(t *testing.T) {
	id := NewIdWithMetadata("items", "user")
	if id.Ident() != "items" {
		t.Errorf("Ident() = %q", id.Ident())
	}
	if md, ok := id.Metadata(); !ok || md != "user" {
		t.Errorf("Metadata() = %q, %t", md, ok)
	}
	if _, ok := NewId("items").Metadata(); ok {
		t.Error("plain id has metadata")
	}
	if s := id.String(); s != "items<user>" {
		t.Errorf("String() = %q", s)
	}
}

func TestIdCompare(t *testing.T) {
	ids := []Id{
		NewIdWithMetadata("b", "z"),
		NewId("b"),
		NewIdWithMetadata("a", "m"),
		NewIdWithMetadata("b", "a"),
		NewId("a"),
	}
	slices.SortFunc(ids, Id.Compare)
	want := []Id{
		NewId("a"),
		NewIdWithMetadata("a", "m"),
		NewId("b"),
		NewIdWithMetadata("b", "a"),
		NewIdWithMetadata("b", "z"),
	}
	if !slices.Equal(ids, want) {
		t.Errorf("sorted = %v, want %v", ids, want)
	}
}
