package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/openbib/marcjson/encode"
	"github.com/openbib/marcjson/format"
)

// readDocs reads every input file ("-" or none meaning stdin) and
// decodes it into one or more generic record documents.
func readDocs(cfg *MainConfig, files []string) ([]map[string]any, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var docs []map[string]any
	for _, file := range files {
		var (
			f   *os.File
			err error
		)
		if file != "-" {
			f, err = os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("could not open %q: %w", file, err)
			}
		} else {
			f = os.Stdin
		}
		d, err := io.ReadAll(f)
		if file != "-" {
			f.Close()
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
		ds, err := decodeDocs(cfg.inFormat(), d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		docs = append(docs, ds...)
	}
	return docs, nil
}

func decodeDocs(f format.Format, d []byte) ([]map[string]any, error) {
	if f.IsYAML() {
		return decodeYAMLDocs(d)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	return asDocs(x)
}

func decodeYAMLDocs(d []byte) ([]map[string]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d))
	var docs []map[string]any
	for {
		var x any
		err := dec.Decode(&x)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		ds, err := asDocs(x)
		if err != nil {
			return nil, err
		}
		docs = append(docs, ds...)
	}
}

func asDocs(x any) ([]map[string]any, error) {
	switch t := x.(type) {
	case map[string]any:
		return []map[string]any{t}, nil
	case []any:
		docs := make([]map[string]any, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record is %T, not an object", e)
			}
			docs = append(docs, m)
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("input is %T, not a record or list of records", x)
	}
}

func writeDocs(cfg *MainConfig, w io.Writer, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	es := cfg.encOpts(w)
	if cfg.outFormat().IsYAML() {
		for i, doc := range docs {
			if i > 0 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			if err := encode.Encode(w, doc, es...); err != nil {
				return err
			}
		}
		return nil
	}
	if len(docs) == 1 {
		return encode.Encode(w, docs[0], es...)
	}
	return encode.Encode(w, docs, es...)
}
