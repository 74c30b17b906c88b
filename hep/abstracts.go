package hep

import (
	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

// hepdataSource is the attribution whose abstracts travel in
// subfield h instead of a.
const hepdataSource = "HEPDATA"

func abstracts(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	var res []Abstract
	for _, f := range fields {
		source := f.Get("9").Single()
		for _, v := range f.Get("a").List() {
			res = append(res, Abstract{Source: source, Value: v})
		}
		for _, v := range f.Get("h").List() {
			res = append(res, Abstract{Source: source, Value: v})
		}
	}
	return convert.Delta{Value: res}
}

func abstracts2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	entries, ok := value.([]Abstract)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(entries))
	for _, a := range entries {
		f := marc.Field{}.Set("9", a.Source)
		if a.Source == hepdataSource {
			f.Set("h", a.Value)
		} else {
			f.Set("a", a.Value)
		}
		fields = append(fields, f)
	}
	return convert.FieldDelta{Fields: fields}
}
