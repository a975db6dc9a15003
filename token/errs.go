package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated   = errors.New("unterminated")
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownEntity  = errors.New("unknown entity")
	ErrInvalidCharRef = errors.New("invalid character reference")
	ErrDuplicateAttr  = errors.New("duplicate attribute")
	ErrBadUTF8        = errors.New("bad utf8")
)

func UnterminatedErr(what string, pos *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnterminated, what), pos)
}

func SyntaxErr(msg string, pos *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: %s", ErrSyntax, msg), pos)
}
