package ir

import (
	"math"
	"testing"
)

func TestValueSet(t *testing.T) {
	s := NewValueSet(
		FromInt(1),
		FromFloat(1.0),
		FromFloat(math.NaN()),
		StructFromEntries(Entry{NewId("a"), FromInt(1)}, Entry{NewId("b"), FromInt(2)}),
	)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	tests := []struct {
		name  string
		v     *Value
		added bool
	}{
		{"same int", FromInt(1), false},
		{"same nan", FromFloat(math.NaN()), false},
		{"reordered struct", StructFromEntries(Entry{NewId("b"), FromInt(2)}, Entry{NewId("a"), FromInt(1)}), false},
		{"negative zero", FromFloat(math.Copysign(0, -1)), true},
		{"zero", FromFloat(0.0), true},
		{"string", FromString("1"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Add(tt.v); got != tt.added {
				t.Errorf("Add(%s) = %t, want %t", tt.v, got, tt.added)
			}
			if !s.Has(tt.v) {
				t.Errorf("Has(%s) = false", tt.v)
			}
		})
	}
	if s.Len() != 7 {
		t.Errorf("Len() = %d, want 7", s.Len())
	}
	n := 0
	for range s.All() {
		n++
	}
	if n != s.Len() {
		t.Errorf("All yielded %d values", n)
	}
}
