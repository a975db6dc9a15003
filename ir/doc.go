// Package ir provides the in-memory tree for XML documents.
//
// # Overview
//
// A Document owns one root Element plus the comments, processing
// instructions and doctype that precede or follow it. Every Element owns its
// attributes and children outright: there are no parent pointers and no
// sharing between trees. Code that needs ancestor context, such as the
// current indentation depth, carries it down while traversing.
//
// # Node Types
//
// Node is a closed set of pointer types:
//
//   - *Element: name, ordered attributes with unique names, ordered children
//   - *Text: character data, already entity decoded
//   - *Comment: the text between "<!--" and "-->"
//   - *CData: the text between "<![CDATA[" and "]]>"
//   - *ProcInst: target and data of "<?target data?>"; the XML declaration is
//     a ProcInst with target "xml"
//   - *Doctype: the opaque body of "<!DOCTYPE ...>"
//
// Switches over nodes should cover every type and panic on anything else.
//
// # Creating Nodes
//
//	root := ir.NewElement("a").Append(
//	    ir.NewElement("b", ir.A("x", "1"), ir.A("y", "2")),
//	    ir.NewElement("c").Append(ir.NewText("hi")),
//	)
//	doc := ir.NewDocument(root, ir.NewProcInst("xml", `version="1.0"`))
//
// Escaping is not stored in the tree: text and attribute values hold logical
// character data. The parse package decodes references, the encode package
// writes them back.
//
// # Related Packages
//
//   - github.com/signadot/xmlfmt/parse - parses bytes into a Document
//   - github.com/signadot/xmlfmt/encode - renders a Document as text
package ir
