// Package libdiff computes line based differences between the text of a
// document before and after formatting.
//
// # Usage
//
//	// Unified diff with three lines of context
//	d := libdiff.Unified("a/doc.xml", "b/doc.xml", before, after)
//	if d != "" {
//	    fmt.Print(d)
//	}
//
// Lines are matched with github.com/sergi/go-diff; hunks are grouped the way
// diff -u does.
package libdiff
