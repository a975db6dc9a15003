package token

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var predefined = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"apos": "'",
	"quot": "\"",
}

// IsXMLChar reports whether r may appear in an XML 1.0 document.
func IsXMLChar(r rune) bool {
	switch {
	case r == 0x9, r == 0xA, r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func isNameStart(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	switch {
	case isNameStart(r), r == '-', r == '.', r == 0xB7:
		return true
	}
	return unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// decodeRef decodes the reference starting with '&' at d[i], not looking
// past end. It returns the replacement text and the length of the
// reference including '&' and ';'.
func (t *tokenizer) decodeRef(i, end int) (string, int, error) {
	semi := bytes.IndexByte(t.d[i:end], ';')
	if semi < 0 {
		return "", 0, UnterminatedErr("entity reference", t.pd.Pos(i))
	}
	name := string(t.d[i+1 : i+semi])
	n := semi + 1
	if name == "" {
		return "", 0, NewTokenizeErr(fmt.Errorf("%w: empty reference", ErrUnknownEntity), t.pd.Pos(i))
	}
	if name[0] != '#' {
		v, ok := predefined[name]
		if !ok {
			return "", 0, NewTokenizeErr(fmt.Errorf("%w &%s;", ErrUnknownEntity, name), t.pd.Pos(i))
		}
		return v, n, nil
	}
	digits, base := name[1:], 10
	if len(digits) > 0 && digits[0] == 'x' {
		digits, base = digits[1:], 16
	}
	bad := func() error {
		return NewTokenizeErr(fmt.Errorf("%w &%s;", ErrInvalidCharRef, name), t.pd.Pos(i))
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return "", 0, bad()
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return "", 0, bad()
	}
	r := rune(v)
	if !IsXMLChar(r) {
		return "", 0, bad()
	}
	return string(r), n, nil
}

// unescape decodes the references in d[start:end]. In attribute values
// literal whitespace is normalized to a space.
func (t *tokenizer) unescape(start, end int, attr bool) (string, error) {
	raw := t.d[start:end]
	if bytes.IndexByte(raw, '&') < 0 && (!attr || bytes.IndexAny(raw, "\t\n") < 0) {
		return string(raw), nil
	}
	var buf bytes.Buffer
	buf.Grow(len(raw))
	for j := start; j < end; {
		c := t.d[j]
		switch {
		case c == '&':
			s, n, err := t.decodeRef(j, end)
			if err != nil {
				return "", err
			}
			buf.WriteString(s)
			j += n
		case attr && (c == '\t' || c == '\n'):
			buf.WriteByte(' ')
			j++
		default:
			buf.WriteByte(c)
			j++
		}
	}
	return buf.String(), nil
}

// checkChars rejects bytes that are not XML characters in d[start:end].
func (t *tokenizer) checkChars(start, end int) error {
	for j := start; j < end; {
		c := t.d[j]
		if c >= 0x20 || c == '\t' || c == '\n' {
			if c < utf8.RuneSelf {
				j++
				continue
			}
			r, n := utf8.DecodeRune(t.d[j:end])
			if r == utf8.RuneError && n <= 1 {
				return NewTokenizeErr(ErrBadUTF8, t.pd.Pos(j))
			}
			if !IsXMLChar(r) {
				return SyntaxErr(fmt.Sprintf("character %U not allowed", r), t.pd.Pos(j))
			}
			j += n
			continue
		}
		return SyntaxErr(fmt.Sprintf("control character %#x not allowed", c), t.pd.Pos(j))
	}
	return nil
}
