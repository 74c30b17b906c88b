package hep

import (
	"strconv"

	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

// copyrightMaterial is a closed table; unmapped material strings
// yield no material key.
var copyrightMaterial = map[string]string{
	"Article":                    "publication",
	"Published thesis as a book": "publication",
}

var copyrightMaterial2MARC = map[string]string{
	"publication": "Article",
}

// copyright prefers subfield e for the material and falls back to
// subfield 3. The backward rule only reconstructs e, so a record
// carrying both does not round-trip; this is intentional.
func copyright(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	res := make([]Copyright, 0, len(fields))
	for _, f := range fields {
		material := f.Get("e").Single()
		if material == "" {
			material = f.Get("3").Single()
		}
		c := Copyright{
			Holder:    f.Get("d").Single(),
			Material:  copyrightMaterial[material],
			Statement: f.Get("f").Single(),
			URL:       f.Get("u").Single(),
		}
		if year, ok := f.Get("g").Int(); ok {
			c.Year = &year
		}
		res = append(res, c)
	}
	return convert.Delta{Value: res}
}

func copyright2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	entries, ok := value.([]Copyright)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(entries))
	for _, c := range entries {
		f := marc.Field{}.
			Set("d", c.Holder).
			Set("e", copyrightMaterial2MARC[c.Material]).
			Set("f", c.Statement).
			Set("u", c.URL)
		if c.Year != nil {
			f.Set("g", strconv.Itoa(*c.Year))
		}
		fields = append(fields, f)
	}
	return convert.FieldDelta{Fields: fields}
}
