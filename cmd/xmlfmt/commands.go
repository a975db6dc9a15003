package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout), single input only",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xmlfmt").
		WithSynopsis("xmlfmt [opts] [path]").
		WithDescription("xmlfmt formats XML documents. path is a document or a directory " +
			"searched recursively for documents. Without a path the document is read from stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlfmtMain(cfg, cc, args)
		})
}
