package parse

import (
	"github.com/signadot/xmlfmt/ir"
	"github.com/signadot/xmlfmt/token"
)

type parseOpts struct {
	charset   bool
	positions map[ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParseCharset controls whether input declaring a non UTF-8 encoding is
// decoded before parsing. It is on by default.
func ParseCharset(v bool) ParseOption {
	return func(o *parseOpts) { o.charset = v }
}

// ParsePositions records the start position of every parsed node in m.
func ParsePositions(m map[ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
