package encode

import (
	"bytes"

	"github.com/signadot/xmlfmt/ir"
)

func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
