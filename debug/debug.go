// Package debug holds environment controlled debugging switches.
//
// Each switch is read once at startup from a SCL_DEBUG_* variable; any
// value accepted by strconv.ParseBool turns it on.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scl-format/go-scl/ir"
)

type debug struct {
	Build  bool
	Source bool
	Encode bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Build = boolEnv("SCL_DEBUG_BUILD")
	d.Source = boolEnv("SCL_DEBUG_SOURCE")
	d.Encode = boolEnv("SCL_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Build reports whether value construction from syntax trees is traced.
func Build() bool {
	return d.Build
}

// Source reports whether syntax node sources trace the nodes they emit.
func Source() bool {
	return d.Source
}

func Encode() bool {
	return d.Encode
}

// Logf writes a debug message to stderr. *ir.Value and ir.Id arguments
// are rendered with their String methods.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Value:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.String()
		case ir.Id:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
