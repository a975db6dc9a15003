package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const EnvPrefix = "XMLFMT_"

type envVar struct {
	name string
	set  func(f *File, v string) error
}

var envVars = []envVar{
	{EnvPrefix + "INDENT", func(f *File, v string) error { return setInt(&f.Indent, v) }},
	{EnvPrefix + "END_PAD", func(f *File, v string) error { return setInt(&f.EndPad, v) }},
	{EnvPrefix + "MAX_LINE_LENGTH", func(f *File, v string) error { return setInt(&f.MaxLineLength, v) }},
	{EnvPrefix + "ENTITY_MODE", func(f *File, v string) error { f.EntityMode = &v; return nil }},
	{EnvPrefix + "TEXT_INDENT", func(f *File, v string) error { return setBool(&f.TextIndent, v) }},
	{EnvPrefix + "COMPACT", func(f *File, v string) error { return setBool(&f.Compact, v) }},
	{EnvPrefix + "JOBS", func(f *File, v string) error { return setInt(&f.Jobs, v) }},
	{EnvPrefix + "EOL", func(f *File, v string) error { f.EOL = &v; return nil }},
	{EnvPrefix + "EXTENSIONS", func(f *File, v string) error {
		f.Extensions = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
		return nil
	}},
}

// FromEnv reads the XMLFMT_* variables through lookup, which is normally
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*File, error) {
	f := &File{}
	var errs []error
	for _, e := range envVars {
		v, ok := lookup(e.name)
		if !ok {
			continue
		}
		if err := e.set(f, strings.TrimSpace(v)); err != nil {
			errs = append(errs, fmt.Errorf("%w %s=%q: %w", ErrEnv, e.name, v, err))
		}
	}
	return f, errors.Join(errs...)
}

func setInt(p **int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*p = &n
	return nil
}

func setBool(p **bool, v string) error {
	var b bool
	switch strings.ToLower(v) {
	case "true", "yes", "on", "1":
		b = true
	case "false", "no", "off", "0":
	default:
		return fmt.Errorf("not a boolean")
	}
	*p = &b
	return nil
}
