package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat = errors.New("unknown config file format")
	ErrEnv           = errors.New("bad environment setting")
)

// FileError is a configuration file that could not be read or decoded.
// Line is 0 when the decoder does not report a position.
type FileError struct {
	Path string
	Line int
	Err  error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("config %s line %d: %s", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
