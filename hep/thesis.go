package hep

import (
	"strings"

	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
	"github.com/openbib/marcjson/record"
)

// degreeTypes normalizes free-text degree strings (uppercased) to the
// closed degree-type set. Unmapped non-empty input is "other".
var degreeTypes = map[string]string{
	"RAPPORT DE STAGE":  "other",
	"INTERNSHIP REPORT": "other",
	"DIPLOMA":           "diploma",
	"BACHELOR":          "bachelor",
	"LAUREA":            "laurea",
	"MASTER":            "master",
	"THESIS":            "other",
	"PHD":               "phd",
	"PDF":               "phd",
	"PH.D. THESIS":      "phd",
	"HABILITATION":      "habilitation",
}

// degreeTypes2MARC picks the canonical textual form per category;
// categories with several forward synonyms come back as one of them.
var degreeTypes2MARC = map[string]string{
	"bachelor":     "Bachelor",
	"diploma":      "Diploma",
	"habilitation": "Habilitation",
	"laurea":       "Laurea",
	"master":       "Master",
	"other":        "Thesis",
	"phd":          "PhD",
}

func degreeType(v string) string {
	if v == "" {
		return ""
	}
	if t, ok := degreeTypes[strings.ToUpper(v)]; ok {
		return t
	}
	return "other"
}

func institutions(f marc.Field) []Institution {
	names := f.Get("c").List()
	recids := f.Get("z").List()

	// zip only when the lengths agree, otherwise a name could be
	// paired with the wrong recid
	if len(names) != len(recids) {
		res := make([]Institution, len(names))
		for i, name := range names {
			res[i] = Institution{Name: name}
		}
		return res
	}
	res := make([]Institution, len(names))
	for i, name := range names {
		res[i] = Institution{
			CuratedRelation: true,
			Name:            name,
			Record:          record.Resolve(recids[i], "institutions"),
		}
	}
	return res
}

// thesisInfo populates thesis_info from 502, merging into whatever
// the 500 rule already contributed (DefenseDate survives).
func thesisInfo(ctx *convert.ForwardContext, fields []marc.Field) convert.Delta {
	thesis, _ := ctx.Out[KeyThesisInfo].(ThesisInfo)
	for _, f := range fields {
		thesis.Date = f.Get("d").Single()
		thesis.DegreeType = degreeType(f.Get("b").Single())
		thesis.Institutions = institutions(f)
	}
	return convert.Delta{Value: thesis}
}

// thesisInfo2MARC populates 502 and, when a defense date is present,
// queues a synthesized "Presented on" note under 500 without
// disturbing notes already queued there.
func thesisInfo2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	thesis, ok := value.(ThesisInfo)
	if !ok {
		return convert.FieldDelta{}
	}

	var d convert.FieldDelta
	if thesis.DefenseDate != "" {
		d.Effects = append(d.Effects, convert.TagEffect{
			Tag:    TagNotes,
			Fields: []marc.Field{marc.Field{}.Set("a", "Presented on "+thesis.DefenseDate)},
			Policy: convert.Append,
		})
	}

	f := marc.Field{}.
		Set("b", degreeTypes2MARC[thesis.DegreeType]).
		Set("d", thesis.Date)
	names := make([]string, 0, len(thesis.Institutions))
	for _, inst := range thesis.Institutions {
		if inst.Name != "" {
			names = append(names, inst.Name)
		}
	}
	f.SetList("c", names)
	if len(f) > 0 {
		d.Fields = []marc.Field{f}
	}
	return d
}
