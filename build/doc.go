// Package build turns syntax trees into SCL value trees.
//
// The package does not depend on any particular parser. A parser exposes
// its tree through the Node interface and Build walks it bottom-up,
// converting scalar literals and calling the ir constructors:
//
//	v, err := build.Build(root, build.WithLogger(logger))
//
// Scalar literals use these forms:
//
//   - Bool: true or false
//   - Int: Go integer literal syntax (0x, 0o, 0b prefixes, underscores).
//     Literals outside the int64 range are truncated to their low 64 bits
//     as ir.FromBigInt does.
//   - Float: strconv.ParseFloat syntax, including NaN and Inf
//   - Decimal: plain or exponent decimal notation
//   - Date: 2006-01-02
//   - Time: 15:04:05 with optional fraction
//   - DateTime: RFC 3339, or a date and time without offset, taken as UTC
//   - Binary: standard padded base64; the node annotation becomes the
//     blob metadata
//
// The package github.com/scl-format/go-scl/build/yamlsrc provides Nodes
// for YAML documents.
package build
