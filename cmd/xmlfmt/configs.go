package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/xmlfmt/config"
	"github.com/signadot/xmlfmt/encode"
	"github.com/signadot/xmlfmt/format"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Replace       bool `cli:"name=r aliases=replace desc='replace input documents with their output'"`
	Indent        int  `cli:"name=indent aliases=i desc='number of spaces to indent (default 2)'"`
	EndPad        int  `cli:"name=e aliases=end-pad desc='spaces before the /> of an empty element (default 1)'"`
	MaxLineLength int  `cli:"name=l aliases=max-line-length desc='max line length (default 120)'"`
	Hex           bool `cli:"name=H aliases=hex-entities desc='write every escaped character as a hex reference'"`
	NoTextIndent  bool `cli:"name=no-text-indent desc='do not reflow and indent text'"`
	Compact       bool `cli:"name=compact desc='write documents without layout'"`

	EOL    string `cli:"name=eol desc='line ending: lf crlf or native (default native)'"`
	Ext    string `cli:"name=ext desc='extra comma separated extensions to look for in directories'"`
	Jobs   int    `cli:"name=j desc='number of documents formatted in parallel'"`
	Check  bool   `cli:"name=check desc='list documents which are not formatted and exit 1'"`
	Diff   bool   `cli:"name=d desc='print a diff instead of the output'"`
	Color  bool   `cli:"name=color desc='highlight output'"`
	Watch  bool   `cli:"name=watch desc='with -r keep reformatting documents when they change'"`
	Config string `cli:"name=config desc='config file (default: nearest .xmlfmt.yaml .xmlfmt.yml or .xmlfmt.toml)'"`

	Out string

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	if a == "-" {
		a = ""
	}
	cfg.Out = a
	return a, nil
}

// isSet reports whether the option named name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

// settings layers the command line over the config file and environment.
func (cfg *MainConfig) settings() (config.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Settings{}, err
	}
	s, path, err := config.Load(wd, cfg.Config)
	if err != nil {
		return s, err
	}
	if path != "" {
		theLog.Debug("using config", "file", path)
	}
	if cfg.isSet("indent") {
		s.Format.Indent = cfg.Indent
	}
	if cfg.isSet("e") {
		s.Format.EndPad = cfg.EndPad
	}
	if cfg.isSet("l") {
		s.Format.MaxLineLength = cfg.MaxLineLength
	}
	if cfg.isSet("H") {
		s.Format.EntityMode = format.StandardEntities
		if cfg.Hex {
			s.Format.EntityMode = format.HexEntities
		}
	}
	if cfg.isSet("no-text-indent") {
		s.Format.IndentTextNodes = !cfg.NoTextIndent
	}
	if cfg.isSet("compact") {
		s.Format.IsPretty = !cfg.Compact
	}
	if cfg.EOL != "" {
		e, err := format.ParseEOL(cfg.EOL)
		if err != nil {
			return s, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		s.EOL = e
	}
	if cfg.Ext != "" {
		s.Extensions = append(s.Extensions, config.NormalizeExtensions(strings.Split(cfg.Ext, ","))...)
	}
	if cfg.isSet("j") {
		if cfg.Jobs < 1 {
			return s, fmt.Errorf("%w: -j must be at least 1", cli.ErrUsage)
		}
		s.Jobs = cfg.Jobs
	}
	if err := s.Format.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return s, nil
}

// colors returns the colors to write to w with, or nil. Unless -color is
// given, terminals get colors and everything else does not.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if !cfg.useColor(w) {
		return nil
	}
	return encode.NewColors()
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	if cfg.isSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
