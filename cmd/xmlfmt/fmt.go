package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/signadot/xmlfmt/batch"
	"github.com/signadot/xmlfmt/config"
	"github.com/signadot/xmlfmt/libdiff"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

func xmlfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	switch {
	case len(args) > 1:
		return fmt.Errorf("%w: at most one path may be given", cli.ErrUsage)
	case cfg.Replace && cfg.Out != "":
		return fmt.Errorf("%w: -r and -o are exclusive", cli.ErrUsage)
	case cfg.Watch && !cfg.Replace:
		return fmt.Errorf("%w: -watch requires -r", cli.ErrUsage)
	case cfg.Check && cfg.Diff:
		return fmt.Errorf("%w: -check and -d are exclusive", cli.ErrUsage)
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if f, ok := cc.In.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return fmt.Errorf("%w: no XML document provided, run with -h for usage information", cli.ErrUsage)
		}
		if cfg.Replace {
			return fmt.Errorf("%w: -r requires a path", cli.ErrUsage)
		}
		return fmtStdin(cfg, cc, s)
	}
	paths, err := batch.Discover(args[0], s.Extensions)
	if err != nil {
		return err
	}
	if cfg.Out != "" && len(paths) != 1 {
		return fmt.Errorf("%w: -o requires a single input document, %s has %d", cli.ErrUsage, args[0], len(paths))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	failed := fmtFiles(ctx, cfg, cc, s, paths)
	if cfg.Watch {
		theLog.Info("watching", "path", args[0])
		f := &batch.Formatter{Config: s.Format, EOL: s.EOL}
		return batch.Watch(ctx, args[0], s.Extensions, func(_ context.Context, p string) {
			if err := replaceOne(f, &batch.Result{Path: p}); err != nil {
				theLog.Error("format failed", "file", p, "err", err)
			}
		})
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtStdin(cfg *MainConfig, cc *cli.Context, s config.Settings) error {
	in, err := io.ReadAll(cc.In)
	if err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	r := &batch.Result{Path: "<stdin>", Before: in}
	f := &batch.Formatter{Config: s.Format, EOL: s.EOL}
	if cfg.Out == "" && !cfg.Check && !cfg.Diff {
		f.Colors = cfg.colors(cc.Out)
	}
	r.After, r.Err = f.Format(in)
	if report(cfg, cc, r) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// fmtFiles formats paths in parallel and reports the results in order. It
// returns whether any document failed or, with -check, was not formatted.
func fmtFiles(ctx context.Context, cfg *MainConfig, cc *cli.Context, s config.Settings, paths []string) bool {
	f := &batch.Formatter{Config: s.Format, EOL: s.EOL}
	if cfg.Out == "" && !cfg.Replace && !cfg.Check && !cfg.Diff {
		f.Colors = cfg.colors(cc.Out)
	}
	results := make([]*batch.Result, len(paths))
	for i, p := range paths {
		results[i] = &batch.Result{Path: p}
	}
	errs := batch.Run(ctx, results, s.Jobs, func(_ context.Context, r *batch.Result) error {
		if cfg.Replace && !cfg.Check && !cfg.Diff {
			return replaceOne(f, r)
		}
		d, err := os.ReadFile(r.Path)
		if err != nil {
			return err
		}
		r.Before = d
		r.After, err = f.Format(d)
		return err
	})
	failed := false
	for i, r := range results {
		if r.Err == nil {
			r.Err = errs[i]
		}
		if cfg.Replace && !cfg.Check && !cfg.Diff {
			if r.Err != nil {
				theLog.Error("format failed", "file", r.Path, "err", r.Err)
				failed = true
			}
			continue
		}
		if report(cfg, cc, r) {
			failed = true
		}
	}
	return failed
}

// replaceOne formats r.Path in place.
func replaceOne(f *batch.Formatter, r *batch.Result) error {
	d, err := os.ReadFile(r.Path)
	if err != nil {
		return err
	}
	r.Before = d
	r.After, err = f.Format(d)
	if err != nil {
		return err
	}
	changed, err := batch.WriteFile(r.Path, r.After)
	if err != nil {
		return err
	}
	if changed {
		theLog.Info("formatted", "file", r.Path)
	}
	return nil
}

// report writes the outcome of one document that was not replaced in
// place. It returns true if the run should fail because of it.
func report(cfg *MainConfig, cc *cli.Context, r *batch.Result) bool {
	if r.Err != nil {
		theLog.Error("format failed", "file", r.Path, "err", r.Err)
		return true
	}
	switch {
	case cfg.Check:
		if r.Changed() {
			fmt.Fprintln(cc.Out, r.Path)
			return true
		}
		return false
	case cfg.Diff:
		d := libdiff.Unified(r.Path, r.Path+" (formatted)", string(r.Before), string(r.After),
			libdiff.DiffColor(cfg.useColor(cc.Out)))
		if _, err := io.WriteString(cc.Out, d); err != nil {
			theLog.Error("write failed", "err", err)
			return true
		}
		return false
	case cfg.Out != "":
		if _, err := batch.WriteFile(cfg.Out, r.After); err != nil {
			theLog.Error("write failed", "file", cfg.Out, "err", err)
			return true
		}
		return false
	default:
		if _, err := cc.Out.Write(r.After); err != nil {
			theLog.Error("write failed", "err", err)
			return true
		}
		return false
	}
}
