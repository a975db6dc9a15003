// Package encode writes documents as formatted XML text.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	// Write with the default layout
//	err = encode.Encode(doc, os.Stdout)
//
//	// Narrower lines, hexadecimal character references
//	err = encode.Encode(doc, os.Stdout,
//	    encode.EncodeMaxLineLength(80),
//	    encode.EncodeEntityMode(format.HexEntities))
//
// The layout of each element is chosen by the layout package; this package
// only writes what it decides. Colors are applied while writing and do not
// count towards line widths.
//
// # Related Packages
//
//   - github.com/signadot/xmlfmt/layout - layout decisions
//   - github.com/signadot/xmlfmt/parse - Parse text to documents
package encode
