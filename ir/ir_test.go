package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPseudoAttr(t *testing.T) {
	data := `version="1.0" encoding='ISO-8859-1' standalone="yes"`
	for name, want := range map[string]string{"version": "1.0", "encoding": "ISO-8859-1", "standalone": "yes"} {
		got, ok := PseudoAttr(data, name)
		if !ok || got != want {
			t.Errorf("%s: got %q %t", name, got, ok)
		}
	}
	if _, ok := PseudoAttr(data, "other"); ok {
		t.Errorf("found missing pseudo attribute")
	}
	if _, ok := PseudoAttr(`version=1.0`, "version"); ok {
		t.Errorf("accepted unquoted value")
	}
}

func TestDocument(t *testing.T) {
	root := NewElement("a", A("x", "1")).Append(NewText("t"), NewElement("b"))
	doc := NewDocument(root, NewProcInst("xml", `version="1.0" encoding="UTF-8"`), NewComment("c"))
	doc.Epilog = []Node{NewComment("e")}

	if doc.Encoding() != "UTF-8" {
		t.Errorf("encoding %q", doc.Encoding())
	}
	if got := len(doc.Nodes()); got != 4 {
		t.Errorf("%d top level nodes", got)
	}
	if (&Document{Root: root}).Encoding() != "" {
		t.Errorf("encoding without declaration")
	}

	c := doc.Clone()
	if diff := cmp.Diff(doc, c); diff != "" {
		t.Errorf("clone (-orig +clone):\n%s", diff)
	}
	c.Root.Attrs[0].Value = "2"
	c.Root.Children[0].(*Text).Content = "u"
	if v, _ := root.Attr("x"); v != "1" || root.Children[0].(*Text).Content != "t" {
		t.Errorf("clone shares state with original")
	}
}

func TestWalk(t *testing.T) {
	root := NewElement("a").Append(NewElement("b").Append(NewText("x")), NewElement("c").Append(NewComment("y")))
	doc := NewDocument(root, NewComment("p"))
	var got []string
	WalkDocument(doc, func(n Node, depth int) bool {
		s := n.Type().String()
		if el, ok := n.(*Element); ok {
			s += ":" + el.Name
		}
		got = append(got, s)
		return n != Node(root.Children[1])
	})
	want := []string{"Comment", "Element:a", "Element:b", "Text", "Element:c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypes(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != typ {
			t.Errorf("%s: got %s %v", typ, back, err)
		}
	}
	if !TextType.IsInline() || ProcInstType.IsInline() || !DoctypeType.IsMisc() || TextType.IsMisc() {
		t.Errorf("type classes")
	}
}
