// Package layout decides how each element is laid out: on one line, with
// its children in an indented block, self-closed, or with one attribute per
// line when its start tag would not fit.
//
// Widths are terminal columns of the escaped text (see [Width]) so that
// wide characters count for two.
package layout
