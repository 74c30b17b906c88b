package hep

import (
	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

// funding_info is a pure per-occurrence mapping; it round-trips.

func fundingInfo(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	res := make([]FundingInfo, 0, len(fields))
	for _, f := range fields {
		res = append(res, FundingInfo{
			Agency:        f.Get("a").Single(),
			GrantNumber:   f.Get("c").Single(),
			ProjectNumber: f.Get("f").Single(),
		})
	}
	return convert.Delta{Value: res}
}

func fundingInfo2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	entries, ok := value.([]FundingInfo)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(entries))
	for _, fi := range entries {
		fields = append(fields, marc.Field{}.
			Set("a", fi.Agency).
			Set("c", fi.GrantNumber).
			Set("f", fi.ProjectNumber))
	}
	return convert.FieldDelta{Fields: fields}
}
