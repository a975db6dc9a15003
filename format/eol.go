package format

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// EOL is the line ending written to output files. Rendering always
// produces "\n"; output sinks translate.
type EOL int

const (
	NativeEOL EOL = iota
	LF
	CRLF
)

var ErrBadEOL = errors.New("bad line ending")

func ParseEOL(v string) (EOL, error) {
	switch strings.ToLower(v) {
	case "native", "":
		return NativeEOL, nil
	case "lf", "unix":
		return LF, nil
	case "crlf", "windows", "dos":
		return CRLF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadEOL, v)
}

func (e EOL) String() string {
	switch e {
	case NativeEOL:
		return "native"
	case LF:
		return "lf"
	case CRLF:
		return "crlf"
	default:
		return fmt.Sprintf("EOL(%d)", int(e))
	}
}

func (e EOL) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EOL) UnmarshalText(d []byte) error {
	v, err := ParseEOL(string(d))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Resolve maps NativeEOL to the convention of the running platform.
func (e EOL) Resolve() EOL {
	if e != NativeEOL {
		return e
	}
	if runtime.GOOS == "windows" {
		return CRLF
	}
	return LF
}

// Apply translates the "\n" line endings of s.
func (e EOL) Apply(s string) string {
	if e.Resolve() != CRLF {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\r\n")
}
