package main

import (
	"github.com/scott-cotton/cli"

	"github.com/openbib/marcjson/hep"
)

func runReverse(cfg *ReverseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reverse.Parse(cc, args)
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

	table := hep.Table()
	var out []any
	for _, doc := range docs {
		sem, err := hep.DecodeSemantic(doc)
		if err != nil {
			return err
		}
		out = append(out, table.Backward(sem))
	}
	return writeDocs(cfg.MainConfig, w, out)
}
