package encode

import (
	"strings"

	"github.com/scl-format/go-scl/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	KeyColor
	MetaColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{
			Type: t,
			Attr: TypeColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	able.Type = ir.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.DecimalType
	colors.Map[able] = color.RGB(96, 176, 236).SprintfFunc()
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ir.DateType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = ir.TimeType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = ir.DateTimeType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = ir.BinaryType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = MetaColor
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Type = ir.StructType
	able.Attr = KeyColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = MetaColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
