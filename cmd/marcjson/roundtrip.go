package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/openbib/marcjson/hep"
	"github.com/openbib/marcjson/marc"
	"github.com/openbib/marcjson/recdiff"
)

func runRoundtrip(cfg *RoundtripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Roundtrip.Parse(cc, args)
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
	differ := 0
	for i, doc := range docs {
		rec, err := marc.FromAny(doc)
		if err != nil {
			return err
		}
		back := table.Backward(table.Forward(rec))
		diffs, err := recdiff.Diff(rec, back)
		if err != nil {
			return err
		}
		if recdiff.Equal(diffs) {
			continue
		}
		differ++
		fmt.Fprintf(w, "record %d:\n%s", i, recdiff.Sprint(diffs, useColor(cfg.MainConfig, w)))
	}
	if differ > 0 {
		return fmt.Errorf("%d of %d record(s) do not round-trip", differ, len(docs))
	}
	fmt.Fprintf(w, "%d record(s) round-trip\n", len(docs))
	return nil
}
