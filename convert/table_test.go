package convert

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openbib/marcjson/marc"
)

func titleRule(_ *ForwardContext, fields []marc.Field) Delta {
	var titles []string
	for _, f := range fields {
		titles = append(titles, f.Get("a").List()...)
	}
	return Delta{Value: titles}
}

func TestNewTableErrors(t *testing.T) {
	if _, err := NewTable([]ForwardRule{{Name: "bad", Pattern: `^(`, Fn: titleRule}}, nil); err == nil {
		t.Error("bad pattern should fail")
	}
	if _, err := NewTable([]ForwardRule{{Name: "nofn", Pattern: `^100..`}}, nil); err == nil {
		t.Error("missing handler should fail")
	}
}

func TestForwardFirstMatchWins(t *testing.T) {
	first := func(_ *ForwardContext, _ []marc.Field) Delta {
		return Delta{Value: []string{"first"}}
	}
	second := func(_ *ForwardContext, _ []marc.Field) Delta {
		return Delta{Value: []string{"second"}}
	}
	table := MustTable([]ForwardRule{
		{Name: "first", Pattern: `^1..`, Key: "titles", Policy: Append, Fn: first},
		{Name: "second", Pattern: `^100`, Key: "titles", Policy: Append, Fn: second},
	}, nil)

	raw := marc.Record{}
	raw.Append("100__", marc.Field{}.Set("a", "x"))
	out := table.Forward(raw)
	if got := out["titles"].([]string); !slices.Equal(got, []string{"first"}) {
		t.Errorf("titles = %v", got)
	}
}

func TestForwardAccumulatesAcrossTags(t *testing.T) {
	table := MustTable([]ForwardRule{
		{Name: "titles", Pattern: `^1..`, Key: "titles", Policy: Append, Fn: titleRule},
	}, nil)

	raw := marc.Record{}
	raw.Append("100__", marc.Field{}.Set("a", "one"))
	raw.Append("110__", marc.Field{}.Set("a", "two"), marc.Field{}.Set("a", "three"))
	out := table.Forward(raw)
	// sorted tag order: 100__ first, then 110__ in occurrence order
	want := []string{"one", "two", "three"}
	if got := out["titles"].([]string); !slices.Equal(got, want) {
		t.Errorf("titles = %v, want %v", got, want)
	}
}

func TestForwardSideEffectVisibility(t *testing.T) {
	// the rule on the earlier tag leaves a side effect the rule on
	// the later tag reads
	early := func(_ *ForwardContext, fields []marc.Field) Delta {
		return Delta{Effects: []Effect{
			{Key: "seen", Value: map[string]bool{"early": true}, Policy: Merge},
		}}
	}
	late := func(ctx *ForwardContext, _ []marc.Field) Delta {
		seen, _ := ctx.Out["seen"].(map[string]bool)
		if !seen["early"] {
			t.Error("side effect of earlier rule not visible")
		}
		return Delta{Effects: []Effect{
			{Key: "seen", Value: map[string]bool{"late": true}, Policy: Merge},
		}}
	}
	table := MustTable([]ForwardRule{
		{Name: "early", Pattern: `^100`, Key: "a", Policy: Set, Fn: early},
		{Name: "late", Pattern: `^200`, Key: "b", Policy: Set, Fn: late},
	}, nil)

	raw := marc.Record{}
	raw.Append("100__", marc.Field{})
	raw.Append("200__", marc.Field{})
	out := table.Forward(raw)
	seen := out["seen"].(map[string]bool)
	if !seen["early"] || !seen["late"] {
		t.Errorf("seen = %v", seen)
	}
}

func TestForwardIdempotent(t *testing.T) {
	table := MustTable([]ForwardRule{
		{Name: "titles", Pattern: `^1..`, Key: "titles", Policy: Append, Fn: titleRule},
	}, nil)
	raw := marc.Record{}
	raw.Append("100__", marc.Field{}.Set("a", "x"))

	a, b := table.Forward(raw), table.Forward(raw)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("forward not deterministic (-a +b):\n%s", diff)
	}
}

func TestForwardLeavesInputIntact(t *testing.T) {
	table := MustTable([]ForwardRule{
		{Name: "titles", Pattern: `^1..`, Key: "titles", Policy: Append, Fn: titleRule},
	}, nil)
	raw := marc.Record{}
	raw.Append("100__", marc.Field{}.Set("a", "x"))
	raw.Append("110__", marc.Field{}.Set("a", "y"))

	before := raw.Clone()
	table.Forward(raw)
	if diff := cmp.Diff(before, raw); diff != "" {
		t.Errorf("forward mutated its input (-before +after):\n%s", diff)
	}
}

func TestBackwardAppendsAndEffects(t *testing.T) {
	notes := func(_ *BackwardContext, value any) FieldDelta {
		vals := value.([]string)
		fields := make([]marc.Field, 0, len(vals))
		for _, v := range vals {
			fields = append(fields, marc.Field{}.Set("a", v))
		}
		return FieldDelta{Fields: fields}
	}
	extra := func(_ *BackwardContext, value any) FieldDelta {
		return FieldDelta{Effects: []TagEffect{{
			Tag:    "500__",
			Fields: []marc.Field{marc.Field{}.Set("a", value.(string))},
			Policy: Append,
		}}}
	}
	table := MustTable(nil, []BackwardRule{
		{Name: "notes", Pattern: `^notes$`, Tag: "500__", Policy: Append, Fn: notes},
		{Name: "extra", Pattern: `^zextra$`, Tag: "999__", Policy: Append, Fn: extra},
	})

	// key order: "notes" < "zextra", so the effect appends after
	out := table.Backward(Semantic{"notes": []string{"one"}, "zextra": "two"})
	got := out["500__"]
	if len(got) != 2 {
		t.Fatalf("got %d occurrences of 500__, want 2", len(got))
	}
	if got[0].Get("a").Single() != "one" || got[1].Get("a").Single() != "two" {
		t.Errorf("occurrence order wrong: %v", got)
	}
}

func TestUnmatchedSkipped(t *testing.T) {
	table := MustTable([]ForwardRule{
		{Name: "titles", Pattern: `^1..`, Key: "titles", Policy: Append, Fn: titleRule},
	}, nil)
	raw := marc.Record{}
	raw.Append("999__", marc.Field{}.Set("a", "x"))
	out := table.Forward(raw)
	if len(out) != 0 {
		t.Errorf("unmatched tag produced output: %v", out)
	}
}
