package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/signadot/xmlfmt/format"
)

// FileNames are the configuration files looked for, in order, in each
// directory.
var FileNames = []string{".xmlfmt.yaml", ".xmlfmt.yml", ".xmlfmt.toml"}

// File is one layer of settings. Nil fields are not set by the layer.
type File struct {
	Indent        *int     `yaml:"indent" toml:"indent"`
	EndPad        *int     `yaml:"endPad" toml:"endPad"`
	MaxLineLength *int     `yaml:"maxLineLength" toml:"maxLineLength"`
	EntityMode    *string  `yaml:"entityMode" toml:"entityMode"`
	TextIndent    *bool    `yaml:"textIndent" toml:"textIndent"`
	Compact       *bool    `yaml:"compact" toml:"compact"`
	Extensions    []string `yaml:"extensions" toml:"extensions"`
	Jobs          *int     `yaml:"jobs" toml:"jobs"`
	EOL           *string  `yaml:"eol" toml:"eol"`
}

// Settings is everything the command line tool needs besides its inputs.
type Settings struct {
	Format     format.Config
	Extensions []string
	Jobs       int
	EOL        format.EOL
}

func Defaults() Settings {
	return Settings{
		Format:     format.DefaultConfig(),
		Extensions: []string{".xml"},
		Jobs:       runtime.NumCPU(),
		EOL:        format.NativeEOL,
	}
}

// Apply overlays the fields set in f.
func (s *Settings) Apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.Indent != nil {
		s.Format.Indent = *f.Indent
	}
	if f.EndPad != nil {
		s.Format.EndPad = *f.EndPad
	}
	if f.MaxLineLength != nil {
		s.Format.MaxLineLength = *f.MaxLineLength
	}
	if f.EntityMode != nil {
		m, err := format.ParseEntityMode(*f.EntityMode)
		if err != nil {
			return fmt.Errorf("%w: %w", format.ErrConfig, err)
		}
		s.Format.EntityMode = m
	}
	if f.TextIndent != nil {
		s.Format.IndentTextNodes = *f.TextIndent
	}
	if f.Compact != nil {
		s.Format.IsPretty = !*f.Compact
	}
	if len(f.Extensions) != 0 {
		s.Extensions = NormalizeExtensions(f.Extensions)
	}
	if f.Jobs != nil {
		if *f.Jobs < 1 {
			return fmt.Errorf("%w: jobs %d is less than 1", format.ErrConfig, *f.Jobs)
		}
		s.Jobs = *f.Jobs
	}
	if f.EOL != nil {
		e, err := format.ParseEOL(*f.EOL)
		if err != nil {
			return fmt.Errorf("%w: %w", format.ErrConfig, err)
		}
		s.EOL = e
	}
	return nil
}

// NormalizeExtensions lower cases extensions and adds the leading dot.
func NormalizeExtensions(exts []string) []string {
	res := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		res = append(res, e)
	}
	return res
}

// Find returns the configuration file nearest to dir, searching dir and
// its parents. It returns "" if there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			p := filepath.Join(dir, name)
			fi, err := os.Stat(p)
			if err == nil && !fi.IsDir() {
				return p, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// LoadFile decodes a YAML or TOML configuration file, chosen by extension.
func LoadFile(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return Decode(path, d)
}

// Decode decodes d as the configuration file named path.
func Decode(path string, d []byte) (*File, error) {
	f := &File{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(d, f, yaml.Strict()); err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(d))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			fe := &FileError{Path: path, Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				fe.Line, _ = de.Position()
			}
			return nil, fe
		}
	default:
		return nil, &FileError{Path: path, Err: fmt.Errorf("%w %q", ErrUnknownFormat, filepath.Ext(path))}
	}
	return f, nil
}

// Load returns the settings for a run in dir. If explicit is not empty it
// names the configuration file to use instead of searching for one. The
// path of the file used, if any, is returned as well.
func Load(dir, explicit string) (Settings, string, error) {
	s := Defaults()
	path := explicit
	if path == "" {
		p, err := Find(dir)
		if err != nil {
			return s, "", err
		}
		path = p
	}
	if path != "" {
		f, err := LoadFile(path)
		if err != nil {
			return s, path, err
		}
		if err := s.Apply(f); err != nil {
			return s, path, &FileError{Path: path, Err: err}
		}
	}
	env, err := FromEnv(os.LookupEnv)
	if err != nil {
		return s, path, err
	}
	if err := s.Apply(env); err != nil {
		return s, path, fmt.Errorf("%w: %w", ErrEnv, err)
	}
	return s, path, nil
}
