package encode

import (
	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/format"
)

type EncodeOption func(*EncState)

// EncodeConfig replaces the whole layout policy. Options given after it
// adjust single fields.
func EncodeConfig(cfg format.Config) EncodeOption {
	return func(es *EncState) { es.cfg = cfg }
}

// ConfigFromOpts returns the layout policy the options describe.
func ConfigFromOpts(opts ...EncodeOption) format.Config {
	es := &EncState{cfg: format.DefaultConfig()}
	for _, opt := range opts {
		opt(es)
	}
	return es.cfg
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.cfg.Indent = n }
}
func EncodeEndPad(n int) EncodeOption {
	return func(es *EncState) { es.cfg.EndPad = n }
}
func EncodeMaxLineLength(n int) EncodeOption {
	return func(es *EncState) { es.cfg.MaxLineLength = n }
}
func EncodeEntityMode(m format.EntityMode) EncodeOption {
	return func(es *EncState) { es.cfg.EntityMode = m }
}
func EncodeTextIndent(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.IndentTextNodes = v }
}
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.cfg.IsPretty = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeCharset sets the output character set. By default it is the one
// named in the document's XML declaration.
func EncodeCharset(cs *charset.Charset) EncodeOption {
	return func(es *EncState) { es.charset = cs }
}
