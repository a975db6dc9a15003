package token

import (
	"fmt"
)

type TokenType int

const (
	TText TokenType = iota
	TStartTag
	TEndTag
	TComment
	TCData
	TProcInst
	TDoctype
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TText:     "TText",
		TStartTag: "TStartTag",
		TEndTag:   "TEndTag",
		TComment:  "TComment",
		TCData:    "TCData",
		TProcInst: "TProcInst",
		TDoctype:  "TDoctype",
		TEOF:      "TEOF",
	}[t]
}

type Attr struct {
	Name  string
	Value string
	Pos   *Pos
}

// Token is one unit of markup or character data.
//
// Name holds the element name of start and end tags and the target of a
// processing instruction. Data holds decoded character data, or the
// verbatim content of comments, CDATA sections, processing instructions and
// doctype declarations.
type Token struct {
	Type        TokenType
	Pos         *Pos
	Name        string
	Data        string
	Attrs       []Attr
	SelfClosing bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TStartTag:
		if t.SelfClosing {
			return "<" + t.Name + "/>"
		}
		return "<" + t.Name + ">"
	case TEndTag:
		return "</" + t.Name + ">"
	case TProcInst:
		return "<?" + t.Name + "?>"
	case TEOF:
		return "end of document"
	default:
		return t.Type.String()
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrSyntax, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", ErrSyntax, what), p)
}
