package batch

import (
	"bytes"
	"strings"

	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/encode"
	"github.com/signadot/xmlfmt/format"
	"github.com/signadot/xmlfmt/parse"
)

// Formatter turns the bytes of a document into the bytes of its formatted
// form: same declared encoding, line endings per EOL.
type Formatter struct {
	Config format.Config
	EOL    format.EOL
	Colors *encode.Colors
}

func (f *Formatter) Format(src []byte) ([]byte, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	cs, err := charset.Lookup(doc.Encoding())
	if err != nil {
		return nil, err
	}
	opts := []encode.EncodeOption{
		encode.EncodeConfig(f.Config),
		encode.EncodeCharset(cs),
	}
	if f.Colors != nil {
		opts = append(opts, encode.EncodeColors(f.Colors))
	}
	var sb strings.Builder
	if err := encode.Encode(doc, &sb, opts...); err != nil {
		return nil, err
	}
	return cs.Encode(f.EOL.Apply(sb.String()))
}

// Result is the outcome for one document.
type Result struct {
	Path   string
	Before []byte
	After  []byte
	Err    error
}

func (r *Result) Changed() bool {
	return r.Err == nil && !bytes.Equal(r.Before, r.After)
}
