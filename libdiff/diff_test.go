package libdiff

import (
	"testing"

	"github.com/scl-format/go-scl/ir"

	"github.com/google/go-cmp/cmp"
)

func ints(vs ...int) *ir.Value {
	res := ir.NewList()
	for _, v := range vs {
		res.Append(ir.FromInt(v))
	}
	return res
}

func strct(kvs ...any) *ir.Value {
	res := ir.NewStruct()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(ir.NewId(kvs[i].(string)), kvs[i+1].(*ir.Value))
	}
	return res
}

func render(cs []Change) []string {
	var res []string
	for _, c := range cs {
		res = append(res, c.String())
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to *ir.Value
		want     []string
	}{
		{
			name: "equal",
			from: strct("a", ints(1, 2)),
			to:   strct("a", ints(1, 2)),
		},
		{
			name: "scalar",
			from: ir.FromString("x"),
			to:   ir.FromString("y"),
			want: []string{`~ $: String("x") -> String("y")`},
		},
		{
			name: "type change",
			from: strct("a", ir.FromInt(1)),
			to:   strct("a", ir.FromString("1")),
			want: []string{`~ $.a: Int(1) -> String("1")`},
		},
		{
			name: "struct keys",
			from: strct("a", ir.FromInt(1), "b", ir.FromInt(2), "d", ir.FromInt(0)),
			to:   strct("a", ir.FromInt(1), "b", ir.FromInt(3), "c", ir.FromInt(4)),
			want: []string{
				"~ $.b: Int(2) -> Int(3)",
				"- $.d: Int(0)",
				"+ $.c: Int(4)",
			},
		},
		{
			name: "list delete",
			from: ints(1, 2, 3),
			to:   ints(1, 3),
			want: []string{"- $[1]: Int(2)"},
		},
		{
			name: "list insert",
			from: ints(1, 3),
			to:   ints(1, 2, 3),
			want: []string{"+ $[1]: Int(2)"},
		},
		{
			name: "list replace",
			from: ints(1, 2, 3),
			to:   ints(1, 4, 3),
			want: []string{"~ $[1]: Int(2) -> Int(4)"},
		},
		{
			name: "nested",
			from: strct("l", ir.ListFromValues(strct("x", ir.FromInt(1)))),
			to:   strct("l", ir.ListFromValues(strct("x", ir.FromInt(2)))),
			want: []string{"~ $.l[0].x: Int(1) -> Int(2)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Diff(tt.from, tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffNil(t *testing.T) {
	v := ir.FromInt(1)
	if got := Diff(nil, nil); got != nil {
		t.Errorf("Diff(nil, nil) = %v", got)
	}
	got := append(render(Diff(nil, v)), render(Diff(v, nil))...)
	want := []string{"+ $: Int(1)", "- $: Int(1)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffMetadataKeys(t *testing.T) {
	from := ir.StructFromEntries(ir.Entry{Key: ir.NewIdWithMetadata("id", "uuid"), Value: ir.FromInt(1)})
	to := ir.StructFromEntries(ir.Entry{Key: ir.NewId("id"), Value: ir.FromInt(1)})
	got := render(Diff(from, to))
	want := []string{"- $.id<uuid>: Int(1)", "+ $.id: Int(1)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nx\nc\n")
	want := "  a\n- b\n+ x\n  c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
