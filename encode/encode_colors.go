package encode

import (
	"strings"

	"github.com/signadot/xmlfmt/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	// TagColor is for element names and processing instruction targets.
	TagColor ColorAttr = iota
	// FieldColor is for attribute names.
	FieldColor
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
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Type: ir.ElementType}
	able.Attr = TagColor
	colors.Map[able] = color.RGB(74, 128, 196).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	colors.Map[Colorable{Type: ir.CommentType, Attr: ValueColor}] = color.BlueString
	colors.Map[Colorable{Type: ir.CDataType, Attr: ValueColor}] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[Colorable{Type: ir.ProcInstType, Attr: TagColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Type: ir.ProcInstType, Attr: ValueColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Type: ir.DoctypeType, Attr: ValueColor}] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
