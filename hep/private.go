package hep

import (
	"strings"

	"github.com/openbib/marcjson/convert"
	"github.com/openbib/marcjson/marc"
)

// Export destinations signaled through subfield c of the general 595
// sub-family.
const (
	destCDS = "CDS"
	destHAL = "HAL"
)

// privateNotes handles the general 595 sub-family (indicators other
// than D and H). Subfield c carries export classification markers:
// CDS and HAL set the destination flag true, NOT HAL sets HAL false.
// Later occurrences overwrite earlier flags for the same destination.
// Every occurrence, classified or not, also contributes its subfield
// a values as attributed private notes.
func privateNotes(ctx *convert.ForwardContext, fields []marc.Field) convert.Delta {
	prev, _ := ctx.Out[KeyExportTo].(ExportTo)
	exportTo := make(ExportTo, len(prev)+2)
	for dest, v := range prev {
		exportTo[dest] = v
	}

	var notes []Note
	for _, f := range fields {
		switch strings.ToUpper(f.Get("c").Single()) {
		case "CDS":
			exportTo[destCDS] = true
		case "HAL":
			exportTo[destHAL] = true
		case "NOT HAL":
			exportTo[destHAL] = false
		}
		source := f.Get("9").Single()
		for _, v := range f.Get("a").List() {
			notes = append(notes, Note{Source: source, Value: v})
		}
	}

	return convert.Delta{
		Value: notes,
		Effects: []convert.Effect{
			{Key: KeyExportTo, Value: exportTo, Policy: convert.Set},
		},
	}
}

// privateNotesHAL handles the HAL-origin sub-family (595_H). The
// attribution is fixed: whatever subfield 9 says, these notes come
// from HAL.
func privateNotesHAL(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	var notes []Note
	for _, f := range fields {
		for _, v := range f.Get("a").List() {
			notes = append(notes, Note{Source: destHAL, Value: v})
		}
	}
	return convert.Delta{Value: notes}
}

// privateNotes2MARC routes HAL-attributed notes to the dedicated
// 595_H tag and everything else to the general 595 tag.
func privateNotes2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	notes, ok := value.([]Note)
	if !ok {
		return convert.FieldDelta{}
	}
	var d convert.FieldDelta
	var halFields []marc.Field
	for _, n := range notes {
		if n.Source == destHAL {
			halFields = append(halFields, marc.Field{}.Set("a", n.Value))
			continue
		}
		d.Fields = append(d.Fields, marc.Field{}.Set("9", n.Source).Set("a", n.Value))
	}
	if len(halFields) > 0 {
		d.Effects = append(d.Effects, convert.TagEffect{
			Tag:    TagPrivateHAL,
			Fields: halFields,
			Policy: convert.Append,
		})
	}
	return d
}

// exportTo2MARC reconstructs at most one flag occurrence. When
// several conditions hold at once the precedence is fixed: a CDS
// flag (present with either value) wins over HAL true, which wins
// over HAL false.
func exportTo2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	exportTo, ok := value.(ExportTo)
	if !ok {
		return convert.FieldDelta{}
	}
	_, cds := exportTo[destCDS]
	hal, hasHAL := exportTo[destHAL]
	switch {
	case cds:
		return convert.FieldDelta{Fields: []marc.Field{marc.Field{}.Set("c", "CDS")}}
	case hasHAL && hal:
		return convert.FieldDelta{Fields: []marc.Field{marc.Field{}.Set("c", "HAL")}}
	case hasHAL && !hal:
		return convert.FieldDelta{Fields: []marc.Field{marc.Field{}.Set("c", "not HAL")}}
	}
	return convert.FieldDelta{}
}

// desyBookkeeping handles the internal bookkeeping sub-family
// (595_D).
func desyBookkeeping(_ *convert.ForwardContext, fields []marc.Field) convert.Delta {
	res := make([]DesyBookkeeping, 0, len(fields))
	for _, f := range fields {
		res = append(res, DesyBookkeeping{
			Date:   f.Get("d").Single(),
			Expert: f.Get("a").Single(),
			Status: f.Get("s").Single(),
		})
	}
	return convert.Delta{Value: res}
}

func desyBookkeeping2MARC(_ *convert.BackwardContext, value any) convert.FieldDelta {
	entries, ok := value.([]DesyBookkeeping)
	if !ok {
		return convert.FieldDelta{}
	}
	fields := make([]marc.Field, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, marc.Field{}.
			Set("a", e.Expert).
			Set("d", e.Date).
			Set("s", e.Status))
	}
	return convert.FieldDelta{Fields: fields}
}
