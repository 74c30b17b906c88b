package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: -p patchfile is required", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", cfg.PatchFile, err)
	}
	patch, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("bad patch %q: %w", cfg.PatchFile, err)
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	w, err := cfg.outWriter(cc)
	if err != nil {
		return err
	}

	var out []any
	for i, doc := range docs {
		d, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		pdoc, err := patch.Apply(d)
		if err != nil {
			return fmt.Errorf("patch failed on record %d: %w", i, err)
		}
		var g map[string]any
		if err := json.Unmarshal(pdoc, &g); err != nil {
			return err
		}
		out = append(out, g)
	}
	return writeDocs(cfg.MainConfig, w, out)
}
