package format

import (
	"errors"
	"fmt"
)

// EntityMode selects how characters that need escaping are written.
type EntityMode int

const (
	// StandardEntities writes the predefined named entities and shortest
	// decimal character references for everything else.
	StandardEntities EntityMode = iota
	// HexEntities writes every escaped character as &#xNNNN;.
	HexEntities
)

var ErrBadEntityMode = errors.New("bad entity mode")

func ParseEntityMode(v string) (EntityMode, error) {
	m, ok := map[string]EntityMode{
		"standard": StandardEntities,
		"std":      StandardEntities,
		"s":        StandardEntities,
		"hex":      HexEntities,
		"h":        HexEntities,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadEntityMode, v)
}

func (m EntityMode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m EntityMode) MarshalText() ([]byte, error) {
	switch m {
	case StandardEntities:
		return []byte("standard"), nil
	case HexEntities:
		return []byte("hex"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an entity mode>", m)
	}
}

func (m *EntityMode) UnmarshalText(d []byte) error {
	pm, err := ParseEntityMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

func (m EntityMode) IsHex() bool { return m == HexEntities }
