package main

import (
	"github.com/scott-cotton/cli"
)

func runView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	w, err := cfg.outWriter(cc)
	if err != nil {
		return err
	}
	cfg.Color = true
	out := make([]any, len(docs))
	for i, doc := range docs {
		out[i] = doc
	}
	return writeDocs(cfg.MainConfig, w, out)
}
