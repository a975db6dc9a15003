package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/xmlfmt/token"
)

var (
	ErrParse              = errors.New("parse error")
	ErrMismatchedTag      = fmt.Errorf("%w: mismatched end tag", ErrParse)
	ErrUnclosed           = fmt.Errorf("%w: unclosed element", ErrParse)
	ErrMultipleRoots      = fmt.Errorf("%w: multiple root elements", ErrParse)
	ErrNoRoot             = fmt.Errorf("%w: no root element", ErrParse)
	ErrContentOutsideRoot = fmt.Errorf("%w: content outside root element", ErrParse)
	ErrMisplacedDoctype   = fmt.Errorf("%w: misplaced doctype", ErrParse)
	ErrMisplacedDecl      = fmt.Errorf("%w: XML declaration not at start of document", ErrParse)
)

// ParseError reports why a document could not be parsed and where.
type ParseError struct {
	Err error
	Pos token.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Unwrap exposes both the specific cause and ErrParse, so that
// errors.Is(err, ErrParse) holds for lexical errors too.
func (e *ParseError) Unwrap() []error {
	return []error{e.Err, ErrParse}
}

// Line and Col are 1-based.
func (e *ParseError) Line() int { return e.Pos.Line() }
func (e *ParseError) Col() int  { return e.Pos.Col() }

func newParseError(err error, pos *token.Pos) *ParseError {
	return &ParseError{Err: err, Pos: *pos}
}

func fromTokenizeErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &ParseError{Err: te.Err, Pos: te.Pos}
	}
	return &ParseError{Err: err}
}
