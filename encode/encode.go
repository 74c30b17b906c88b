package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/openbib/marcjson/format"
)

// Encode writes v in the selected format. Any value with a JSON
// representation works; records and semantic records are the expected
// inputs.
func Encode(w io.Writer, v any, opts ...EncodeOption) error {
	es := &EncState{format: format.JSONFormat}
	for _, opt := range opts {
		opt(es)
	}
	g, err := ToAny(v)
	if err != nil {
		return err
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(g)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		colors := es.colors
		if colors == nil {
			colors = NoColors()
		}
		if err := writeJSON(w, g, 0, colors); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// ToAny round-trips v through JSON into generic form: maps, slices,
// strings, json.Number, bool, nil.
func ToAny(v any) (any, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var g any
	if err := dec.Decode(&g); err != nil {
		return nil, err
	}
	return g, nil
}

func writeJSON(w io.Writer, v any, depth int, colors *Colors) error {
	ind := indent(depth)
	switch t := v.(type) {
	case nil:
		_, err := io.WriteString(w, colors.Null("null"))
		return err
	case bool:
		_, err := io.WriteString(w, colors.Bool(strconv.FormatBool(t)))
		return err
	case string:
		_, err := io.WriteString(w, colors.String("%s", quote(t)))
		return err
	case json.Number:
		_, err := io.WriteString(w, colors.Number("%s", t.String()))
		return err
	case []any:
		if len(t) == 0 {
			_, err := io.WriteString(w, colors.Sep("[]"))
			return err
		}
		if _, err := io.WriteString(w, colors.Sep("[")+"\n"); err != nil {
			return err
		}
		for i, e := range t {
			if _, err := io.WriteString(w, ind+"  "); err != nil {
				return err
			}
			if err := writeJSON(w, e, depth+1, colors); err != nil {
				return err
			}
			if i < len(t)-1 {
				if _, err := io.WriteString(w, colors.Sep(",")); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ind+colors.Sep("]"))
		return err
	case map[string]any:
		if len(t) == 0 {
			_, err := io.WriteString(w, colors.Sep("{}"))
			return err
		}
		if _, err := io.WriteString(w, colors.Sep("{")+"\n"); err != nil {
			return err
		}
		keys := slices.Sorted(maps.Keys(t))
		for i, k := range keys {
			s := ind + "  " + colors.Field("%s", quote(k)) + colors.Sep(":") + " "
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
			if err := writeJSON(w, t[k], depth+1, colors); err != nil {
				return err
			}
			if i < len(keys)-1 {
				if _, err := io.WriteString(w, colors.Sep(",")); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ind+colors.Sep("}"))
		return err
	default:
		return fmt.Errorf("encode: unsupported value %T", v)
	}
}

func quote(s string) string {
	d, _ := json.Marshal(s)
	return string(d)
}

func indent(depth int) string {
	b := make([]byte, 2*depth)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
