package ir

import "fmt"

type Type int

const (
	ElementType Type = iota
	TextType
	CommentType
	CDataType
	ProcInstType
	DoctypeType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ElementType:  "Element",
		TextType:     "Text",
		CommentType:  "Comment",
		CDataType:    "CData",
		ProcInstType: "ProcInst",
		DoctypeType:  "Doctype",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Element":  ElementType,
		"Text":     TextType,
		"Comment":  CommentType,
		"CData":    CDataType,
		"ProcInst": ProcInstType,
		"Doctype":  DoctypeType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ElementType,
		TextType,
		CommentType,
		CDataType,
		ProcInstType,
		DoctypeType,
	}
}

// IsMisc reports whether nodes of type t may appear outside the root element.
func (t Type) IsMisc() bool {
	switch t {
	case CommentType, ProcInstType, DoctypeType:
		return true
	default:
		return false
	}
}

// IsInline reports whether nodes of type t may be kept on the line of their
// parent's start tag.
func (t Type) IsInline() bool {
	switch t {
	case TextType, CDataType, CommentType:
		return true
	default:
		return false
	}
}
