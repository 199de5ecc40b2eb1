package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level, 2 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
