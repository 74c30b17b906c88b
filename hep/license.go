package hep

import (
	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

func license(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	res := make([]License, 0, len(fields))
	for _, f := range fields {
		// "Open Access" in subfield a is redundant noise next to
		// the actual license name
		var vals []string
		for _, v := range f.Get("a").List() {
			if v != "Open Access" {
				vals = append(vals, v)
			}
		}
		var lic string
		if len(vals) > 0 {
			lic = vals[0]
		}
		res = append(res, License{
			License:  lic,
			Imposing: f.Get("b").Single(),
			URL:      f.Get("u").Single(),
			Material: f.Get("3").Single(),
		})
	}
	return convert.Delta{Value: res}
}

func license2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	entries, ok := value.([]License)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(entries))
	for _, l := range entries {
		fields = append(fields, marc.Field{}.
			Set("a", l.License).
			Set("b", l.Imposing).
			Set("u", l.URL).
			Set("3", l.Material))
	}
	return convert.FieldDelta{Fields: fields}
}
