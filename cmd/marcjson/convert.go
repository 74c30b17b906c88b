package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/openbib/marcjson/encode"
	"github.com/openbib/marcjson/filter"
	"github.com/openbib/marcjson/hep"
	"github.com/openbib/marcjson/marc"
)

func runConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	var flt *filter.Filter
	if cfg.FilterExpr != "" {
		flt, err = filter.Compile(cfg.FilterExpr)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
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
		rec, err := marc.FromAny(doc)
		if err != nil {
			return err
		}
		sem := table.Forward(rec)
		if flt != nil {
			g, err := encode.ToAny(sem)
			if err != nil {
				return err
			}
			gm, _ := g.(map[string]any)
			keep, err := flt.Eval(gm)
			if err != nil {
				return err
			}
			if !keep {
				continue
			}
		}
		out = append(out, sem)
	}
	return writeDocs(cfg.MainConfig, w, out)
}
