package token

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenizer struct {
	d  []byte
	i  int
	pd *PosDoc
}

// Normalize drops a UTF-8 byte order mark and translates "\r\n" and lone
// "\r" to "\n" as XML processors must before parsing.
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, []byte{0xEF, 0xBB, 0xBF})
	if bytes.IndexByte(src, '\r') < 0 {
		return src
	}
	res := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '\r' {
			res = append(res, c)
			continue
		}
		res = append(res, '\n')
		if i+1 < len(src) && src[i+1] == '\n' {
			i++
		}
	}
	return res
}

// Tokenize appends the tokens of src to dst. The last token is always TEOF.
// Positions refer to the normalized document (see Normalize).
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	d := Normalize(src)
	t := &tokenizer{d: d, pd: NewPosDoc(d)}
	for t.i < len(t.d) {
		tok, err := t.next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
	}
	return append(dst, Token{Type: TEOF, Pos: t.pd.end()}), nil
}

func (t *tokenizer) has(prefix string) bool {
	return bytes.HasPrefix(t.d[t.i:], []byte(prefix))
}

func (t *tokenizer) next() (Token, error) {
	if t.d[t.i] != '<' {
		return t.text()
	}
	switch {
	case t.has("<!--"):
		return t.comment()
	case t.has("<![CDATA["):
		return t.cdata()
	case t.has("<!DOCTYPE"):
		return t.doctype()
	case t.has("<!"):
		return Token{}, UnexpectedErr("markup declaration", t.pd.Pos(t.i))
	case t.has("<?"):
		return t.procInst()
	case t.has("</"):
		return t.endTag()
	default:
		return t.startTag()
	}
}

func (t *tokenizer) text() (Token, error) {
	start := t.i
	end := len(t.d)
	if j := bytes.IndexByte(t.d[start:], '<'); j >= 0 {
		end = start + j
	}
	if j := bytes.Index(t.d[start:end], []byte("]]>")); j >= 0 {
		return Token{}, UnexpectedErr("']]>' in character data", t.pd.Pos(start+j))
	}
	if err := t.checkChars(start, end); err != nil {
		return Token{}, err
	}
	s, err := t.unescape(start, end, false)
	if err != nil {
		return Token{}, err
	}
	t.i = end
	return Token{Type: TText, Pos: t.pd.Pos(start), Data: s}, nil
}

func (t *tokenizer) comment() (Token, error) {
	start := t.i
	body := start + len("<!--")
	j := bytes.Index(t.d[body:], []byte("-->"))
	if j < 0 {
		return Token{}, UnterminatedErr("comment", t.pd.Pos(start))
	}
	content := t.d[body : body+j]
	if k := bytes.Index(content, []byte("--")); k >= 0 {
		return Token{}, UnexpectedErr("'--' in comment", t.pd.Pos(body+k))
	}
	if bytes.HasSuffix(content, []byte("-")) {
		return Token{}, UnexpectedErr("'-' ending comment", t.pd.Pos(body+j-1))
	}
	if err := t.checkChars(body, body+j); err != nil {
		return Token{}, err
	}
	t.i = body + j + len("-->")
	return Token{Type: TComment, Pos: t.pd.Pos(start), Data: string(content)}, nil
}

func (t *tokenizer) cdata() (Token, error) {
	start := t.i
	body := start + len("<![CDATA[")
	j := bytes.Index(t.d[body:], []byte("]]>"))
	if j < 0 {
		return Token{}, UnterminatedErr("CDATA section", t.pd.Pos(start))
	}
	if err := t.checkChars(body, body+j); err != nil {
		return Token{}, err
	}
	t.i = body + j + len("]]>")
	return Token{Type: TCData, Pos: t.pd.Pos(start), Data: string(t.d[body : body+j])}, nil
}

// doctype scans to the '>' closing the declaration, skipping over quoted
// literals, comments and the bracketed internal subset.
func (t *tokenizer) doctype() (Token, error) {
	start := t.i
	body := start + len("<!DOCTYPE")
	if body >= len(t.d) || !isSpace(t.d[body]) {
		return Token{}, ExpectedErr("whitespace after <!DOCTYPE", t.pd.Pos(body))
	}
	depth := 0
	var quote byte
	for j := body; j < len(t.d); j++ {
		c := t.d[j]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case bytes.HasPrefix(t.d[j:], []byte("<!--")):
			k := bytes.Index(t.d[j+4:], []byte("-->"))
			if k < 0 {
				return Token{}, UnterminatedErr("comment", t.pd.Pos(j))
			}
			j += 4 + k + 2
		case c == '>' && depth <= 0:
			content := strings.TrimSpace(string(t.d[body:j]))
			if content == "" {
				return Token{}, ExpectedErr("doctype name", t.pd.Pos(body))
			}
			t.i = j + 1
			return Token{Type: TDoctype, Pos: t.pd.Pos(start), Data: content}, nil
		}
	}
	return Token{}, UnterminatedErr("doctype", t.pd.Pos(start))
}

func (t *tokenizer) procInst() (Token, error) {
	start := t.i
	t.i += len("<?")
	target := t.name()
	if target == "" {
		return Token{}, ExpectedErr("processing instruction target", t.pd.Pos(t.i))
	}
	j := bytes.Index(t.d[t.i:], []byte("?>"))
	if j < 0 {
		return Token{}, UnterminatedErr("processing instruction", t.pd.Pos(start))
	}
	if j > 0 && !isSpace(t.d[t.i]) {
		return Token{}, ExpectedErr("whitespace after processing instruction target", t.pd.Pos(t.i))
	}
	if err := t.checkChars(t.i, t.i+j); err != nil {
		return Token{}, err
	}
	data := strings.TrimSpace(string(t.d[t.i : t.i+j]))
	t.i += j + len("?>")
	return Token{Type: TProcInst, Pos: t.pd.Pos(start), Name: target, Data: data}, nil
}

func (t *tokenizer) endTag() (Token, error) {
	start := t.i
	t.i += len("</")
	name := t.name()
	if name == "" {
		return Token{}, ExpectedErr("element name", t.pd.Pos(t.i))
	}
	t.skipSpace()
	if t.i >= len(t.d) {
		return Token{}, UnterminatedErr("end tag", t.pd.Pos(start))
	}
	if t.d[t.i] != '>' {
		return Token{}, ExpectedErr("'>'", t.pd.Pos(t.i))
	}
	t.i++
	return Token{Type: TEndTag, Pos: t.pd.Pos(start), Name: name}, nil
}

func (t *tokenizer) startTag() (Token, error) {
	start := t.i
	t.i++
	name := t.name()
	if name == "" {
		return Token{}, ExpectedErr("element name", t.pd.Pos(t.i))
	}
	tok := Token{Type: TStartTag, Pos: t.pd.Pos(start), Name: name}
	for {
		sp := t.skipSpace()
		if t.i >= len(t.d) {
			return Token{}, UnterminatedErr("start tag <"+name+">", t.pd.Pos(start))
		}
		switch {
		case t.has("/>"):
			t.i += 2
			tok.SelfClosing = true
			return tok, nil
		case t.d[t.i] == '>':
			t.i++
			return tok, nil
		}
		if !sp {
			return Token{}, ExpectedErr("whitespace before attribute", t.pd.Pos(t.i))
		}
		attr, err := t.attr(start, name)
		if err != nil {
			return Token{}, err
		}
		for i := range tok.Attrs {
			if tok.Attrs[i].Name == attr.Name {
				return Token{}, NewTokenizeErr(
					fmt.Errorf("%w %q on <%s>", ErrDuplicateAttr, attr.Name, name), attr.Pos)
			}
		}
		tok.Attrs = append(tok.Attrs, attr)
	}
}

func (t *tokenizer) attr(tagStart int, tag string) (Attr, error) {
	pos := t.pd.Pos(t.i)
	name := t.name()
	if name == "" {
		return Attr{}, ExpectedErr("attribute name", pos)
	}
	t.skipSpace()
	if t.i >= len(t.d) {
		return Attr{}, UnterminatedErr("start tag <"+tag+">", t.pd.Pos(tagStart))
	}
	if t.d[t.i] != '=' {
		return Attr{}, ExpectedErr("'=' after attribute "+name, t.pd.Pos(t.i))
	}
	t.i++
	t.skipSpace()
	if t.i >= len(t.d) {
		return Attr{}, UnterminatedErr("start tag <"+tag+">", t.pd.Pos(tagStart))
	}
	q := t.d[t.i]
	if q != '"' && q != '\'' {
		return Attr{}, ExpectedErr("quoted value for attribute "+name, t.pd.Pos(t.i))
	}
	vStart := t.i + 1
	j := bytes.IndexByte(t.d[vStart:], q)
	if j < 0 {
		return Attr{}, UnterminatedErr("attribute value", t.pd.Pos(t.i))
	}
	vEnd := vStart + j
	if k := bytes.IndexByte(t.d[vStart:vEnd], '<'); k >= 0 {
		return Attr{}, UnexpectedErr("'<' in attribute value", t.pd.Pos(vStart+k))
	}
	if err := t.checkChars(vStart, vEnd); err != nil {
		return Attr{}, err
	}
	v, err := t.unescape(vStart, vEnd, true)
	if err != nil {
		return Attr{}, err
	}
	t.i = vEnd + 1
	return Attr{Name: name, Value: v, Pos: pos}, nil
}

func (t *tokenizer) name() string {
	start := t.i
	for t.i < len(t.d) {
		r, n := utf8.DecodeRune(t.d[t.i:])
		if t.i == start && !isNameStart(r) {
			break
		}
		if !isNameChar(r) {
			break
		}
		t.i += n
	}
	return string(t.d[start:t.i])
}

func (t *tokenizer) skipSpace() bool {
	start := t.i
	for t.i < len(t.d) && isSpace(t.d[t.i]) {
		t.i++
	}
	return t.i > start
}
