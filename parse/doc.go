// Package parse parses XML documents into ir trees.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    var pe *parse.ParseError
//	    if errors.As(err, &pe) {
//	        fmt.Printf("line %d col %d: %v\n", pe.Line(), pe.Col(), pe.Err)
//	    }
//	    return err
//	}
//
// Parse checks well-formedness: matching tags, unique attribute names, a
// single root element and nothing but comments, processing instructions
// and a doctype outside it. All failures are *ParseError values wrapping
// ErrParse and a more specific sentinel from this package or from token.
//
// # Related Packages
//
//   - github.com/signadot/xmlfmt/ir - the tree produced here
//   - github.com/signadot/xmlfmt/token - tokenization
//   - github.com/signadot/xmlfmt/encode - renders the tree
package parse
