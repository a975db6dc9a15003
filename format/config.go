package format

import (
	"errors"
	"fmt"
)

const (
	DefaultIndent        = 2
	DefaultEndPad        = 1
	DefaultMaxLineLength = 120
)

var ErrConfig = errors.New("configuration error")

// Config is the layout policy. It is passed by value and never modified
// while a document is rendered.
type Config struct {
	IsPretty        bool
	Indent          int
	EndPad          int
	MaxLineLength   int
	EntityMode      EntityMode
	IndentTextNodes bool
}

func DefaultConfig() Config {
	return Config{
		IsPretty:        true,
		Indent:          DefaultIndent,
		EndPad:          DefaultEndPad,
		MaxLineLength:   DefaultMaxLineLength,
		EntityMode:      StandardEntities,
		IndentTextNodes: true,
	}
}

// Validate reports settings a user should be told about. Rendering never
// depends on it: see Clamp.
func (c Config) Validate() error {
	var errs []error
	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("%w: indent %d is negative", ErrConfig, c.Indent))
	}
	if c.EndPad < 0 {
		errs = append(errs, fmt.Errorf("%w: end pad %d is negative", ErrConfig, c.EndPad))
	}
	if c.MaxLineLength < 0 {
		errs = append(errs, fmt.Errorf("%w: max line length %d is negative", ErrConfig, c.MaxLineLength))
	}
	if c.EntityMode != StandardEntities && c.EntityMode != HexEntities {
		errs = append(errs, fmt.Errorf("%w: %w: %d", ErrConfig, ErrBadEntityMode, c.EntityMode))
	}
	return errors.Join(errs...)
}

// Clamp returns c with out of range values replaced by the nearest usable
// ones. Line length is a soft target so nothing here is fatal.
func (c Config) Clamp() Config {
	c.Indent = max(c.Indent, 0)
	c.EndPad = max(c.EndPad, 0)
	c.MaxLineLength = max(c.MaxLineLength, 0)
	if c.EntityMode != HexEntities {
		c.EntityMode = StandardEntities
	}
	return c
}
