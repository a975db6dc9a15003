package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/xmlfmt/debug"
	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/ir"
	"github.com/signadot/xmlfmt/token"
)

func cfgWith(f func(*format.Config)) format.Config {
	cfg := format.DefaultConfig()
	if f != nil {
		f(&cfg)
	}
	return cfg
}

func maxLen(n int) func(*format.Config) {
	return func(c *format.Config) { c.MaxLineLength = n }
}

type decideTest struct {
	name  string
	el    *ir.Element
	col   int
	cfg   format.Config
	want  Layout
	block bool
}

func TestDecide(t *testing.T) {
	esc := token.NewEscaper(format.StandardEntities, nil)
	bxy := func() *ir.Element { return ir.NewElement("b", ir.A("x", "1"), ir.A("y", "2")) }
	hi := func(attrs ...ir.Attr) *ir.Element {
		return ir.NewElement("c", attrs...).Append(ir.NewText("hi"))
	}
	dts := []decideTest{
		{name: "empty", el: bxy(), col: 2, cfg: cfgWith(nil), want: SelfClosed},
		{name: "empty too long", el: bxy(), col: 2, cfg: cfgWith(maxLen(5)), want: WrappedAttributes},
		{name: "no attrs never wraps", el: ir.NewElement("a"), cfg: cfgWith(maxLen(0)), want: SelfClosed},
		// `<b x="1"` + " />" is 11 columns
		{name: "self closed fits exactly", el: ir.NewElement("b", ir.A("x", "1")), cfg: cfgWith(maxLen(11)), want: SelfClosed},
		{name: "self closed one over", el: ir.NewElement("b", ir.A("x", "1")), cfg: cfgWith(maxLen(10)), want: WrappedAttributes},
		{name: "end pad counts", el: ir.NewElement("b", ir.A("x", "1")),
			cfg: cfgWith(func(c *format.Config) { c.MaxLineLength = 11; c.EndPad = 2 }), want: WrappedAttributes},
		{name: "text", el: hi(), col: 2, cfg: cfgWith(nil), want: SingleLine},
		// "<c>hi</c>" is 9 columns
		{name: "text fits exactly", el: hi(), cfg: cfgWith(maxLen(9)), want: SingleLine},
		{name: "text one over", el: hi(), cfg: cfgWith(maxLen(8)), want: Block},
		{name: "text too long", el: hi(), col: 2, cfg: cfgWith(maxLen(5)), want: Block},
		{name: "multi line text", el: ir.NewElement("c").Append(ir.NewText("a\nb")), cfg: cfgWith(nil), want: Block},
		{name: "outer text whitespace ignored", el: ir.NewElement("c").Append(ir.NewText("\n   hi   \n")), cfg: cfgWith(maxLen(9)), want: SingleLine},
		{name: "elements", el: ir.NewElement("a").Append(ir.NewElement("b")), cfg: cfgWith(nil), want: Block},
		{name: "elements wrapped", el: ir.NewElement("a", ir.A("x", "1")).Append(ir.NewElement("b")),
			cfg: cfgWith(maxLen(5)), want: WrappedAttributes, block: true},
		{name: "pi forces block", el: ir.NewElement("a").Append(ir.NewProcInst("p", "")), cfg: cfgWith(nil), want: Block},
		{name: "comment inline", el: ir.NewElement("a").Append(ir.NewComment("c")), cfg: cfgWith(nil), want: SingleLine},
		// `<c attr="xxxxxxxx">` is 19 columns, ">hi</c>" 7
		{name: "wrapped inline content", el: hi(ir.A("attr", "xxxxxxxx")), cfg: cfgWith(maxLen(12)), want: WrappedAttributes},
		{name: "wrapped block content", el: hi(ir.A("attr", "xxxxxxxx")), cfg: cfgWith(maxLen(6)), want: WrappedAttributes, block: true},
		{name: "wrapped multi line content", el: ir.NewElement("c", ir.A("attr", "xxxxxxxx")).Append(ir.NewText("a\nb")),
			cfg: cfgWith(maxLen(12)), want: WrappedAttributes, block: true},
		{name: "no text indent keeps text inline", el: ir.NewElement("c").Append(ir.NewText("a long\ntext")),
			cfg: cfgWith(func(c *format.Config) { c.MaxLineLength = 3; c.IndentTextNodes = false }), want: SingleLine},
		{name: "no text indent wraps attributes", el: hi(ir.A("attr", "xxxxxxxx")),
			cfg: cfgWith(func(c *format.Config) { c.MaxLineLength = 6; c.IndentTextNodes = false }), want: WrappedAttributes},
		// "<c>&lt;</c>" is 11 columns
		{name: "escaped width", el: ir.NewElement("c").Append(ir.NewText("<")), cfg: cfgWith(maxLen(11)), want: SingleLine},
		{name: "escaped width over", el: ir.NewElement("c").Append(ir.NewText("<&")), cfg: cfgWith(maxLen(11)), want: Block},
		{name: "wide characters", el: ir.NewElement("c").Append(ir.NewText("日本")), cfg: cfgWith(maxLen(10)), want: Block},
		{name: "negative max clamps", el: hi(), cfg: cfgWith(maxLen(-4)), want: Block},
	}
	for _, dt := range dts {
		d := Decide(dt.el, dt.col, dt.cfg, esc)
		if d.Layout != dt.want || d.BlockChildren != dt.block {
			t.Errorf("%s: got %s block=%t, want %s block=%t", dt.name, d.Layout, d.BlockChildren, dt.want, dt.block)
		}
	}
}

func TestChildren(t *testing.T) {
	mixed := ir.NewElement("a").Append(
		ir.NewText("\n  "), ir.NewElement("b"), ir.NewText(" x "), ir.NewComment("c"), ir.NewText("\n"))
	textOnly := ir.NewElement("a").Append(ir.NewText("  "), ir.NewComment("c"), ir.NewText(" "))

	indent := cfgWith(nil)
	noIndent := cfgWith(func(c *format.Config) { c.IndentTextNodes = false })

	want := []ir.Node{mixed.Children[1], mixed.Children[2], mixed.Children[3]}
	if diff := cmp.Diff(want, Children(mixed, indent)); diff != "" {
		t.Errorf("mixed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Children(mixed, noIndent)); diff != "" {
		t.Errorf("mixed, no text indent (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ir.Node{textOnly.Children[1]}, Children(textOnly, indent)); diff != "" {
		t.Errorf("text only (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(textOnly.Children, Children(textOnly, noIndent)); diff != "" {
		t.Errorf("text only, no text indent (-want +got):\n%s", diff)
	}
}

func TestInlineContent(t *testing.T) {
	esc := token.NewEscaper(format.StandardEntities, nil)
	kids := []ir.Node{ir.NewText("  a "), ir.NewComment("c"), ir.NewText(" b&  ")}
	if got := InlineContent(kids, cfgWith(nil), esc); got != "a <!--c--> b&amp;" {
		t.Errorf("got %q", got)
	}
	noIndent := cfgWith(func(c *format.Config) { c.IndentTextNodes = false })
	if got := InlineContent(kids, noIndent, esc); got != "  a <!--c--> b&amp;  " {
		t.Errorf("no text indent: got %q", got)
	}
}

type linesTest struct {
	in   string
	col  int
	max  int
	want []string
}

func TestTextLines(t *testing.T) {
	esc := token.NewEscaper(format.StandardEntities, nil)
	lts := []linesTest{
		{in: "  hello   world  ", max: 120, want: []string{"hello   world"}},
		{in: "aaa bbb ccc", col: 2, max: 9, want: []string{"aaa bbb", "ccc"}},
		{in: "aaa bbb ccc", col: 2, max: 13, want: []string{"aaa bbb ccc"}},
		{in: "a\n\n   b\n", max: 120, want: []string{"a", "", "b"}},
		{in: "x<y", max: 120, want: []string{"x&lt;y"}},
		{in: "abcdefghij", max: 5, want: []string{"abcdefghij"}},
		{in: "ab abcdefghij cd", max: 5, want: []string{"ab", "abcdefghij", "cd"}},
		{in: "a b c", max: 3, want: []string{"a b", "c"}},
		{in: " \n ", max: 10, want: nil},
	}
	for _, lt := range lts {
		cfg := cfgWith(maxLen(lt.max))
		got := TextLines(lt.in, lt.col, cfg, esc)
		if diff := cmp.Diff(lt.want, got); diff != "" {
			t.Errorf("TextLines(%q, %d, %d) (-want +got):\n%s", lt.in, lt.col, lt.max, diff)
		}
	}
}

func TestWidth(t *testing.T) {
	for s, w := range map[string]int{"": 0, "abc": 3, "日本": 4, "é": 1} {
		if got := Width(s); got != w {
			t.Errorf("Width(%q) = %d, want %d", s, got, w)
		}
	}
}

func TestDecideTrace(t *testing.T) {
	debug.Set(false, true, false)
	defer debug.Set(false, false, false)
	esc := token.NewEscaper(format.StandardEntities, nil)
	d := Decide(ir.NewElement("a").Append(ir.NewText("x")), 0, cfgWith(nil), esc)
	if d.Layout != SingleLine {
		t.Errorf("got %s", d.Layout)
	}
}
