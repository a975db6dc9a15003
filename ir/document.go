package ir

import "strings"

// Document owns exactly one root element. Prolog and Epilog hold the
// comments, processing instructions and doctype found before and after it.
type Document struct {
	Prolog []Node
	Root   *Element
	Epilog []Node
}

func NewDocument(root *Element, prolog ...Node) *Document {
	return &Document{Prolog: prolog, Root: root}
}

// Nodes returns the top level nodes in document order.
func (d *Document) Nodes() []Node {
	res := make([]Node, 0, len(d.Prolog)+len(d.Epilog)+1)
	res = append(res, d.Prolog...)
	if d.Root != nil {
		res = append(res, d.Root)
	}
	return append(res, d.Epilog...)
}

// Declaration returns the XML declaration, if the document starts with one.
func (d *Document) Declaration() *ProcInst {
	if len(d.Prolog) == 0 {
		return nil
	}
	pi, ok := d.Prolog[0].(*ProcInst)
	if !ok || pi.Target != "xml" {
		return nil
	}
	return pi
}

// Encoding returns the encoding named by the XML declaration, or "" if
// there is none.
func (d *Document) Encoding() string {
	pi := d.Declaration()
	if pi == nil {
		return ""
	}
	v, _ := PseudoAttr(pi.Data, "encoding")
	return v
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	res := &Document{}
	for _, n := range d.Prolog {
		res.Prolog = append(res.Prolog, Clone(n))
	}
	if d.Root != nil {
		res.Root = Clone(d.Root).(*Element)
	}
	for _, n := range d.Epilog {
		res.Epilog = append(res.Epilog, Clone(n))
	}
	return res
}

// PseudoAttr finds name="value" (or single quoted) in the data of a
// processing instruction such as the XML declaration.
func PseudoAttr(data, name string) (string, bool) {
	s := data
	for {
		s = strings.TrimLeft(s, " \t\n")
		if s == "" {
			return "", false
		}
		eq := strings.IndexByte(s, '=')
		if eq < 0 {
			return "", false
		}
		key := strings.TrimSpace(s[:eq])
		s = strings.TrimLeft(s[eq+1:], " \t\n")
		if s == "" || (s[0] != '"' && s[0] != '\'') {
			return "", false
		}
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 {
			return "", false
		}
		val := s[1 : end+1]
		if key == name {
			return val, true
		}
		s = s[end+2:]
	}
}
