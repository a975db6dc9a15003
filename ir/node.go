package ir

import "strings"

// Node is one of *Element, *Text, *Comment, *CData, *ProcInst or *Doctype.
// The set is closed: the marker method is unexported.
type Node interface {
	Type() Type
	node()
}

type Attr struct {
	Name  string
	Value string
}

// A is shorthand for an Attr literal.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

type Text struct {
	Content string
}

type Comment struct {
	Content string
}

type CData struct {
	Content string
}

type ProcInst struct {
	Target string
	Data   string
}

// Doctype holds everything between "<!DOCTYPE" and the closing '>',
// leading whitespace removed.
type Doctype struct {
	Content string
}

func (*Element) Type() Type  { return ElementType }
func (*Text) Type() Type     { return TextType }
func (*Comment) Type() Type  { return CommentType }
func (*CData) Type() Type    { return CDataType }
func (*ProcInst) Type() Type { return ProcInstType }
func (*Doctype) Type() Type  { return DoctypeType }

func (*Element) node()  {}
func (*Text) node()     {}
func (*Comment) node()  {}
func (*CData) node()    {}
func (*ProcInst) node() {}
func (*Doctype) node()  {}

func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

func NewText(s string) *Text            { return &Text{Content: s} }
func NewComment(s string) *Comment      { return &Comment{Content: s} }
func NewCData(s string) *CData          { return &CData{Content: s} }
func NewDoctype(s string) *Doctype      { return &Doctype{Content: s} }
func NewProcInst(t, d string) *ProcInst { return &ProcInst{Target: t, Data: d} }

// Append adds children and returns e so trees can be built in one
// expression.
func (e *Element) Append(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Attr returns the value of the attribute named name.
func (e *Element) Attr(name string) (string, bool) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// HasElements reports whether any child of e is an element.
func (e *Element) HasElements() bool {
	for _, c := range e.Children {
		if c.Type() == ElementType {
			return true
		}
	}
	return false
}

// IsBlank reports whether t consists only of XML whitespace.
func (t *Text) IsBlank() bool {
	return strings.TrimLeft(t.Content, " \t\r\n") == ""
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Element:
		res := &Element{Name: x.Name}
		if x.Attrs != nil {
			res.Attrs = append([]Attr(nil), x.Attrs...)
		}
		if x.Children != nil {
			res.Children = make([]Node, len(x.Children))
			for i, c := range x.Children {
				res.Children[i] = Clone(c)
			}
		}
		return res
	case *Text:
		return &Text{Content: x.Content}
	case *Comment:
		return &Comment{Content: x.Content}
	case *CData:
		return &CData{Content: x.Content}
	case *ProcInst:
		return &ProcInst{Target: x.Target, Data: x.Data}
	case *Doctype:
		return &Doctype{Content: x.Content}
	default:
		panic("node type")
	}
}
