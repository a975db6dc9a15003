// Package charset decides which characters a document's declared encoding
// can carry and converts text to and from it.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/signadot/xmlfmt/ir"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknownCharset = errors.New("unknown character set")

type Charset struct {
	name  string
	enc   encoding.Encoding
	ascii bool

	// rune -> bool, filled lazily for runes outside ASCII
	known sync.Map
}

// UTF8 can represent every character.
var UTF8 = &Charset{name: "UTF-8"}

// Lookup finds the character set for an encoding label as written in an XML
// declaration. The empty label means UTF-8.
func Lookup(label string) (*Charset, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	switch norm {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "us-ascii", "ascii", "iso646-us", "ansi_x3.4-1968":
		return &Charset{name: label, ascii: true}, nil
	}
	// IANA names first: the HTML index treats ISO-8859-1 as windows-1252.
	enc, err := ianaindex.IANA.Encoding(norm)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(norm)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	if enc == unicode.UTF8 {
		return UTF8, nil
	}
	return &Charset{name: label, enc: enc}, nil
}

func (c *Charset) Name() string { return c.name }

func (c *Charset) IsUTF8() bool { return c.enc == nil && !c.ascii }

// Representable reports whether r can be written literally.
func (c *Charset) Representable(r rune) bool {
	if r < utf8.RuneSelf {
		return true
	}
	if c.ascii {
		return false
	}
	if c.enc == nil {
		return true
	}
	if v, ok := c.known.Load(r); ok {
		return v.(bool)
	}
	_, err := c.enc.NewEncoder().String(string(r))
	ok := err == nil
	c.known.Store(r, ok)
	return ok
}

// Encode converts UTF-8 text into c. Text produced by the encode package
// only holds representable characters, so an error means s came from
// elsewhere.
func (c *Charset) Encode(s string) ([]byte, error) {
	if c.IsUTF8() {
		return []byte(s), nil
	}
	if c.ascii {
		for i, r := range s {
			if r >= utf8.RuneSelf {
				return nil, fmt.Errorf("character %q at offset %d not representable in %s", r, i, c.name)
			}
		}
		return []byte(s), nil
	}
	d, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding to %s: %w", c.name, err)
	}
	return d, nil
}

// Sniff returns the encoding label a raw document declares: a UTF-16 byte
// order mark, or the encoding pseudo attribute of a leading XML
// declaration. It returns "" when neither is present.
func Sniff(d []byte) string {
	switch {
	case bytes.HasPrefix(d, []byte{0xFE, 0xFF}):
		return "utf-16be"
	case bytes.HasPrefix(d, []byte{0xFF, 0xFE}):
		return "utf-16le"
	}
	d = bytes.TrimPrefix(d, []byte{0xEF, 0xBB, 0xBF})
	if !bytes.HasPrefix(d, []byte("<?xml")) {
		return ""
	}
	end := bytes.Index(d, []byte("?>"))
	if end < 0 {
		return ""
	}
	label, _ := ir.PseudoAttr(string(d[len("<?xml"):end]), "encoding")
	return label
}

// DecodeInput converts d to UTF-8 when it declares another encoding.
func DecodeInput(d []byte) ([]byte, error) {
	label := Sniff(d)
	cs, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	if cs.enc == nil {
		return d, nil
	}
	r, err := htmlcharset.NewReaderLabel(label, bytes.NewReader(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownCharset, label, err)
	}
	res, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", label, err)
	}
	return bytes.TrimPrefix(res, []byte{0xEF, 0xBB, 0xBF}), nil
}
