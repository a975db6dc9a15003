package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/format"
)

// Escaper writes character data and attribute values with the references
// needed to read them back unchanged.
type Escaper struct {
	Mode    format.EntityMode
	Charset *charset.Charset
}

func NewEscaper(mode format.EntityMode, cs *charset.Charset) *Escaper {
	if cs == nil {
		cs = charset.UTF8
	}
	return &Escaper{Mode: mode, Charset: cs}
}

var named = map[rune]string{
	'<':  "&lt;",
	'>':  "&gt;",
	'&':  "&amp;",
	'\'': "&apos;",
	'"':  "&quot;",
}

// Text escapes s for use as character data.
func (e *Escaper) Text(s string) string {
	return e.escape(s, false)
}

// Attr escapes s for use inside a double quoted attribute value.
func (e *Escaper) Attr(s string) string {
	return e.escape(s, true)
}

func (e *Escaper) needs(r rune, attr bool) bool {
	switch r {
	case '<', '>', '&', '\r':
		return true
	case '"', '\t', '\n':
		return attr
	}
	return !e.Charset.Representable(r)
}

func (e *Escaper) escape(s string, attr bool) string {
	i := strings.IndexFunc(s, func(r rune) bool { return e.needs(r, attr) })
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if !e.needs(r, attr) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(e.Ref(r))
	}
	return sb.String()
}

// Ref returns the reference for r: a named entity or shortest decimal
// reference in standard mode, a hexadecimal one in hex mode.
func (e *Escaper) Ref(r rune) string {
	if e.Mode.IsHex() {
		return fmt.Sprintf("&#x%04X;", r)
	}
	if n, ok := named[r]; ok {
		return n
	}
	return "&#" + strconv.Itoa(int(r)) + ";"
}
