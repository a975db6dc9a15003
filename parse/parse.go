package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/debug"
	"github.com/signadot/xmlfmt/ir"
	"github.com/signadot/xmlfmt/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{charset: true}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.charset {
		dd, err := charset.DecodeInput(d)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		d = dd
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fromTokenizeErr(err)
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	b := &builder{doc: &ir.Document{}, opts: pOpts}
	for i := range toks {
		if err := b.add(&toks[i], i); err != nil {
			return nil, err
		}
	}
	return b.doc, nil
}

// ParseString parses s, which is already decoded text: the encoding named
// in its XML declaration is not applied. Options may turn decoding back on.
func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), append([]ParseOption{ParseCharset(false)}, opts...)...)
}

type open struct {
	el  *ir.Element
	pos *token.Pos
}

type builder struct {
	doc     *ir.Document
	stack   []open
	doctype bool
	opts    *parseOpts
}

func (b *builder) trackPos(n ir.Node, pos *token.Pos) {
	if b.opts.positions != nil && pos != nil {
		b.opts.positions[n] = pos
	}
}

func (b *builder) top() *ir.Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1].el
}

func (b *builder) add(t *token.Token, i int) error {
	switch t.Type {
	case token.TStartTag:
		return b.startTag(t)
	case token.TEndTag:
		return b.endTag(t)
	case token.TText:
		top := b.top()
		if top == nil {
			if strings.TrimLeft(t.Data, " \t\n") != "" {
				return newParseError(fmt.Errorf("%w: text", ErrContentOutsideRoot), t.Pos)
			}
			return nil
		}
		n := ir.NewText(t.Data)
		b.trackPos(n, t.Pos)
		top.Children = append(top.Children, n)
		return nil
	case token.TCData:
		top := b.top()
		if top == nil {
			return newParseError(fmt.Errorf("%w: CDATA section", ErrContentOutsideRoot), t.Pos)
		}
		n := ir.NewCData(t.Data)
		b.trackPos(n, t.Pos)
		top.Children = append(top.Children, n)
		return nil
	case token.TComment:
		b.misc(ir.NewComment(t.Data), t.Pos)
		return nil
	case token.TProcInst:
		if strings.EqualFold(t.Name, "xml") && (i != 0 || t.Name != "xml") {
			return newParseError(ErrMisplacedDecl, t.Pos)
		}
		b.misc(ir.NewProcInst(t.Name, t.Data), t.Pos)
		return nil
	case token.TDoctype:
		if b.doctype || b.doc.Root != nil {
			return newParseError(ErrMisplacedDoctype, t.Pos)
		}
		b.doctype = true
		b.misc(ir.NewDoctype(t.Data), t.Pos)
		return nil
	case token.TEOF:
		if len(b.stack) != 0 {
			o := b.stack[len(b.stack)-1]
			return newParseError(fmt.Errorf("%w <%s>", ErrUnclosed, o.el.Name), o.pos)
		}
		if b.doc.Root == nil {
			return newParseError(ErrNoRoot, t.Pos)
		}
		return nil
	default:
		panic("token type")
	}
}

func (b *builder) startTag(t *token.Token) error {
	el := &ir.Element{Name: t.Name}
	if len(t.Attrs) != 0 {
		el.Attrs = make([]ir.Attr, len(t.Attrs))
		for i := range t.Attrs {
			el.Attrs[i] = ir.Attr{Name: t.Attrs[i].Name, Value: t.Attrs[i].Value}
		}
	}
	b.trackPos(el, t.Pos)
	if top := b.top(); top != nil {
		top.Children = append(top.Children, el)
	} else if b.doc.Root != nil {
		return newParseError(fmt.Errorf("%w: <%s> after <%s>", ErrMultipleRoots, t.Name, b.doc.Root.Name), t.Pos)
	} else {
		b.doc.Root = el
	}
	if !t.SelfClosing {
		b.stack = append(b.stack, open{el: el, pos: t.Pos})
	}
	return nil
}

func (b *builder) endTag(t *token.Token) error {
	if len(b.stack) == 0 {
		return newParseError(fmt.Errorf("%w: </%s> has no start tag", ErrMismatchedTag, t.Name), t.Pos)
	}
	o := b.stack[len(b.stack)-1]
	if o.el.Name != t.Name {
		return newParseError(fmt.Errorf("%w: </%s> closes <%s> opened on line %d",
			ErrMismatchedTag, t.Name, o.el.Name, o.pos.Line()), t.Pos)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *builder) misc(n ir.Node, pos *token.Pos) {
	b.trackPos(n, pos)
	switch {
	case b.top() != nil:
		top := b.top()
		top.Children = append(top.Children, n)
	case b.doc.Root == nil:
		b.doc.Prolog = append(b.doc.Prolog, n)
	default:
		b.doc.Epilog = append(b.doc.Epilog, n)
	}
}
