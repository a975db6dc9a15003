package layout

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/signadot/xmlfmt/debug"
	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/ir"
	"github.com/signadot/xmlfmt/token"
)

type Layout int

const (
	SingleLine Layout = iota
	WrappedAttributes
	SelfClosed
	Block
)

func (l Layout) String() string {
	switch l {
	case SingleLine:
		return "SingleLine"
	case WrappedAttributes:
		return "WrappedAttributes"
	case SelfClosed:
		return "SelfClosed"
	case Block:
		return "Block"
	default:
		return "Layout(?)"
	}
}

// Decision is how one element is written. Content holds the significant
// children, see Children.
//
// BlockChildren only applies to WrappedAttributes: when set the content
// goes on its own lines after the lone '>' line, otherwise it follows '>'
// directly.
type Decision struct {
	Layout        Layout
	BlockChildren bool
	Content       []ir.Node
}

// SelfClosing reports whether the element is written without an end tag.
func (d Decision) SelfClosing() bool {
	return len(d.Content) == 0
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Decide chooses the layout of el when its start tag begins at column col.
func Decide(el *ir.Element, col int, cfg format.Config, esc *token.Escaper) Decision {
	cfg = cfg.Clamp()
	kids := Children(el, cfg)
	d := decide(el, kids, col, cfg, esc)
	d.Content = kids
	if debug.Layout() {
		debug.Logf("layout <%s> col=%d kids=%d: %s block=%t\n", el.Name, col, len(kids), d.Layout, d.BlockChildren)
	}
	return d
}

func decide(el *ir.Element, kids []ir.Node, col int, cfg format.Config, esc *token.Escaper) Decision {
	open := col + Width(StartTag(el, esc))
	if len(kids) == 0 {
		tagLen := open + cfg.EndPad + len("/>")
		if len(el.Attrs) > 0 && tagLen > cfg.MaxLineLength {
			return Decision{Layout: WrappedAttributes}
		}
		return Decision{Layout: SelfClosed}
	}
	tagLen := open + len(">")
	wrap := len(el.Attrs) > 0 && tagLen > cfg.MaxLineLength
	if !TextOnly(kids) {
		if wrap {
			return Decision{Layout: WrappedAttributes, BlockChildren: true}
		}
		return Decision{Layout: Block}
	}
	if !cfg.IndentTextNodes {
		if wrap {
			return Decision{Layout: WrappedAttributes}
		}
		return Decision{Layout: SingleLine}
	}
	content := InlineContent(kids, cfg, esc)
	multi := strings.Contains(content, "\n")
	tail := Width(content) + Width(EndTag(el))
	if wrap {
		return Decision{
			Layout:        WrappedAttributes,
			BlockChildren: multi || col+len(">")+tail > cfg.MaxLineLength,
		}
	}
	if !multi && tagLen+tail <= cfg.MaxLineLength {
		return Decision{Layout: SingleLine}
	}
	return Decision{Layout: Block}
}

// Children returns the children of el that are written. Whitespace-only
// text between elements is indentation and is dropped. In content without
// elements it is dropped only when text is re-indented.
func Children(el *ir.Element, cfg format.Config) []ir.Node {
	drop := cfg.IndentTextNodes || el.HasElements()
	if !drop {
		return el.Children
	}
	res := make([]ir.Node, 0, len(el.Children))
	for _, c := range el.Children {
		if t, ok := c.(*ir.Text); ok && t.IsBlank() {
			continue
		}
		res = append(res, c)
	}
	return res
}

// TextOnly reports whether kids can be written on the element's own line.
func TextOnly(kids []ir.Node) bool {
	for _, k := range kids {
		if !k.Type().IsInline() {
			return false
		}
	}
	return true
}

// StartTag returns "<name" followed by the attributes, without the
// closing '>' or "/>".
func StartTag(el *ir.Element, esc *token.Escaper) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(el.Name)
	for i := range el.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(Attr(el.Attrs[i], esc))
	}
	return sb.String()
}

// Attr returns name="value" with the value escaped.
func Attr(a ir.Attr, esc *token.Escaper) string {
	return a.Name + `="` + esc.Attr(a.Value) + `"`
}

func EndTag(el *ir.Element) string {
	return "</" + el.Name + ">"
}

// Markup returns the verbatim form of a comment, CDATA section, processing
// instruction or doctype.
func Markup(n ir.Node) string {
	switch x := n.(type) {
	case *ir.Comment:
		return "<!--" + x.Content + "-->"
	case *ir.CData:
		return "<![CDATA[" + x.Content + "]]>"
	case *ir.ProcInst:
		if x.Data == "" {
			return "<?" + x.Target + "?>"
		}
		return "<?" + x.Target + " " + x.Data + "?>"
	case *ir.Doctype:
		return "<!DOCTYPE " + x.Content + ">"
	default:
		panic("markup node type")
	}
}

// InlineNode returns kid as written inside a single line element. first
// and last tell whether kid starts or ends the content: with text
// indentation on, the outer whitespace of the content is trimmed.
func InlineNode(kid ir.Node, first, last bool, cfg format.Config, esc *token.Escaper) string {
	t, ok := kid.(*ir.Text)
	if !ok {
		return Markup(kid)
	}
	s := t.Content
	if cfg.IndentTextNodes {
		if first {
			s = strings.TrimLeft(s, xmlSpace)
		}
		if last {
			s = strings.TrimRight(s, xmlSpace)
		}
	}
	return esc.Text(s)
}

// InlineContent joins the inline forms of text-only kids.
func InlineContent(kids []ir.Node, cfg format.Config, esc *token.Escaper) string {
	var sb strings.Builder
	for i, k := range kids {
		sb.WriteString(InlineNode(k, i == 0, i == len(kids)-1, cfg, esc))
	}
	return sb.String()
}

const xmlSpace = " \t\n"

// TrimSpace removes leading and trailing XML whitespace.
func TrimSpace(s string) string {
	return strings.Trim(s, xmlSpace)
}
