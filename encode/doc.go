// Package encode writes diagnostic text dumps of SCL value trees.
//
// The dump is meant for people, not for round trips: every leaf is shown
// with its variant, as in Int(1) or Decimal(1234.56), struct keys are
// sorted, and lists and structs are indented one entry per line.
//
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// With EncodeWire the dump is written on a single line and, without
// colours, matches (*ir.Value).String.
package encode
