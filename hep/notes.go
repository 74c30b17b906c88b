package hep

import (
	"regexp"

	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

var isDefenseDate = regexp.MustCompile(`(?i)^Presented on (\d{4}(?:-\d{2}){0,2})`)

// publicNotes populates public_notes from 500. A note of the form
// "Presented on YYYY[-MM[-DD]]" is not a note: it routes to
// thesis_info.defense_date instead. The thesis_info side effect is
// written on every invocation so 502 can merge into it regardless of
// tag order.
func publicNotes(ctx *convert.ForwardContext, fields []marc.Field) convert.Delta {
	thesis, _ := ctx.Out[KeyThesisInfo].(ThesisInfo)

	var notes []Note
	for _, f := range fields {
		source := f.Get("9").Single()
		for _, note := range f.Get("a").List() {
			if m := isDefenseDate.FindStringSubmatch(note); m != nil {
				thesis.DefenseDate = m[1]
				continue
			}
			notes = append(notes, Note{Source: source, Value: note})
		}
	}

	return convert.Delta{
		Value: notes,
		Effects: []convert.Effect{
			{Key: KeyThesisInfo, Value: thesis, Policy: convert.Set},
		},
	}
}

func publicNotes2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	notes, ok := value.([]Note)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(notes))
	for _, n := range notes {
		fields = append(fields, marc.Field{}.Set("9", n.Source).Set("a", n.Value))
	}
	return convert.FieldDelta{Fields: fields}
}
