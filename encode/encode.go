package encode

import (
	"io"
	"strings"

	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/ir"
	"github.com/signadot/xmlfmt/layout"
	"github.com/signadot/xmlfmt/token"
)

type EncState struct {
	cfg     format.Config
	charset *charset.Charset
	esc     *token.Escaper

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes doc to w. Every top level node starts a line and the output
// ends with a newline.
//
// Text is written as UTF-8; characters the output character set cannot
// represent in character data and attribute values are written as character
// references so that transcoding the result cannot fail for them.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{cfg: format.DefaultConfig()}
	for _, opt := range opts {
		opt(es)
	}
	es.cfg = es.cfg.Clamp()
	if es.charset == nil {
		cs, err := charset.Lookup(doc.Encoding())
		if err != nil {
			cs = charset.UTF8
		}
		es.charset = cs
	}
	es.esc = token.NewEscaper(es.cfg.EntityMode, es.charset)
	if !es.cfg.IsPretty {
		for _, n := range doc.Nodes() {
			if err := encodeCompact(n, w, es); err != nil {
				return err
			}
		}
		return writeString(w, "\n")
	}
	for _, n := range doc.Nodes() {
		if err := encodeNode(n, 0, w, es); err != nil {
			return err
		}
	}
	return nil
}

// Render returns doc formatted according to cfg.
func Render(doc *ir.Document, cfg format.Config) string {
	var sb strings.Builder
	// writes to a strings.Builder do not fail
	_ = Encode(doc, &sb, EncodeConfig(cfg))
	return sb.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func encodeNode(n ir.Node, depth int, w io.Writer, es *EncState) error {
	switch x := n.(type) {
	case *ir.Element:
		return encodeElement(x, depth, w, es)
	case *ir.Text:
		return encodeBlockText(x, depth, w, es)
	case *ir.Comment, *ir.CData, *ir.ProcInst, *ir.Doctype:
		return writeString(w, es.indentString(depth)+es.markup(n)+"\n")
	default:
		panic("node type")
	}
}

func encodeElement(el *ir.Element, depth int, w io.Writer, es *EncState) error {
	d := layout.Decide(el, depth*es.cfg.Indent, es.cfg, es.esc)
	ind := es.indentString(depth)
	switch d.Layout {
	case layout.SelfClosed:
		return writeString(w, ind+es.startTag(el)+es.selfClose()+"\n")
	case layout.SingleLine:
		return writeString(w, ind+es.startTag(el)+es.sep(">")+es.inline(d.Content)+es.endTag(el)+"\n")
	case layout.Block:
		if err := writeString(w, ind+es.startTag(el)+es.sep(">")+"\n"); err != nil {
			return err
		}
		if err := encodeBlock(d.Content, depth+1, w, es); err != nil {
			return err
		}
		return writeString(w, ind+es.endTag(el)+"\n")
	case layout.WrappedAttributes:
		return encodeWrapped(el, d, depth, w, es)
	default:
		panic("layout")
	}
}

func encodeWrapped(el *ir.Element, d layout.Decision, depth int, w io.Writer, es *EncState) error {
	ind := es.indentString(depth)
	if err := writeString(w, ind+es.sep("<")+es.color(ir.ElementType, TagColor, el.Name)+"\n"); err != nil {
		return err
	}
	attrInd := es.indentString(depth + 1)
	for i := range el.Attrs {
		ln := attrInd + es.attr(el.Attrs[i])
		if d.SelfClosing() && i == len(el.Attrs)-1 {
			ln += es.selfClose()
		}
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	if d.SelfClosing() {
		return nil
	}
	if !d.BlockChildren {
		return writeString(w, ind+es.sep(">")+es.inline(d.Content)+es.endTag(el)+"\n")
	}
	if err := writeString(w, ind+es.sep(">")+"\n"); err != nil {
		return err
	}
	if err := encodeBlock(d.Content, depth+1, w, es); err != nil {
		return err
	}
	return writeString(w, ind+es.endTag(el)+"\n")
}

func encodeBlock(kids []ir.Node, depth int, w io.Writer, es *EncState) error {
	for _, k := range kids {
		if err := encodeNode(k, depth, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeBlockText(t *ir.Text, depth int, w io.Writer, es *EncState) error {
	ind := es.indentString(depth)
	if !es.cfg.IndentTextNodes {
		s := layout.TrimSpace(t.Content)
		if s == "" {
			return nil
		}
		return writeString(w, ind+es.text(es.esc.Text(s))+"\n")
	}
	for _, ln := range layout.TextLines(t.Content, depth*es.cfg.Indent, es.cfg, es.esc) {
		if ln == "" {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, ind+es.text(ln)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// encodeCompact writes n without any layout: no indentation and no
// structural whitespace.
func encodeCompact(n ir.Node, w io.Writer, es *EncState) error {
	switch x := n.(type) {
	case *ir.Element:
		kids := layout.Children(x, es.cfg)
		if len(kids) == 0 {
			return writeString(w, es.startTag(x)+es.selfClose())
		}
		if err := writeString(w, es.startTag(x)+es.sep(">")); err != nil {
			return err
		}
		for _, k := range kids {
			if err := encodeCompact(k, w, es); err != nil {
				return err
			}
		}
		return writeString(w, es.endTag(x))
	case *ir.Text:
		return writeString(w, es.text(es.esc.Text(x.Content)))
	case *ir.Comment, *ir.CData, *ir.ProcInst, *ir.Doctype:
		return writeString(w, es.markup(n))
	default:
		panic("node type")
	}
}

func (es *EncState) indentString(depth int) string {
	return strings.Repeat(" ", depth*es.cfg.Indent)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) sep(s string) string {
	return es.color(ir.ElementType, SepColor, s)
}

func (es *EncState) text(s string) string {
	return es.color(ir.TextType, ValueColor, s)
}

func (es *EncState) startTag(el *ir.Element) string {
	if es.Color == nil {
		return layout.StartTag(el, es.esc)
	}
	var sb strings.Builder
	sb.WriteString(es.sep("<"))
	sb.WriteString(es.color(ir.ElementType, TagColor, el.Name))
	for i := range el.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(es.attr(el.Attrs[i]))
	}
	return sb.String()
}

func (es *EncState) attr(a ir.Attr) string {
	if es.Color == nil {
		return layout.Attr(a, es.esc)
	}
	return es.color(ir.ElementType, FieldColor, a.Name) + es.sep("=") +
		es.color(ir.ElementType, ValueColor, `"`+es.esc.Attr(a.Value)+`"`)
}

func (es *EncState) endTag(el *ir.Element) string {
	if es.Color == nil {
		return layout.EndTag(el)
	}
	return es.sep("</") + es.color(ir.ElementType, TagColor, el.Name) + es.sep(">")
}

func (es *EncState) selfClose() string {
	return strings.Repeat(" ", es.cfg.EndPad) + es.sep("/>")
}

func (es *EncState) inline(kids []ir.Node) string {
	var sb strings.Builder
	for i, k := range kids {
		if k.Type() == ir.TextType {
			sb.WriteString(es.text(layout.InlineNode(k, i == 0, i == len(kids)-1, es.cfg, es.esc)))
			continue
		}
		sb.WriteString(es.markup(k))
	}
	return sb.String()
}

func (es *EncState) markup(n ir.Node) string {
	if es.Color == nil {
		return layout.Markup(n)
	}
	t := n.Type()
	switch x := n.(type) {
	case *ir.Comment:
		return es.color(t, SepColor, "<!--") + es.color(t, ValueColor, x.Content) + es.color(t, SepColor, "-->")
	case *ir.CData:
		return es.color(t, SepColor, "<![CDATA[") + es.color(t, ValueColor, x.Content) + es.color(t, SepColor, "]]>")
	case *ir.ProcInst:
		res := es.color(t, SepColor, "<?") + es.color(t, TagColor, x.Target)
		if x.Data != "" {
			res += " " + es.color(t, ValueColor, x.Data)
		}
		return res + es.color(t, SepColor, "?>")
	case *ir.Doctype:
		return es.color(t, SepColor, "<!DOCTYPE ") + es.color(t, ValueColor, x.Content) + es.color(t, SepColor, ">")
	default:
		panic("markup node type")
	}
}
