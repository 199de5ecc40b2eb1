package debug

import (
	"bytes"
	"io"
	"testing"

	"github.com/scl-format/go-scl/ir"
)

func TestLogf(t *testing.T) {
	defer func(w io.Writer) { out = w }(out)
	buf := &bytes.Buffer{}
	out = buf

	v := ir.ListFromValues(ir.FromInt(1), ir.FromString("a"))
	var none *ir.Value
	Logf("%s %s = %s %s %d\n", ir.NewIdWithMetadata("k", "m"), ir.NewId("k"), v, none, 3)

	want := "k<m> k = List[Int(1), String(\"a\")] <nil> 3\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
