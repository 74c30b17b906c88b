package hep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/openbib/marcjson/marc"
)

func roundtrip(t *testing.T, obj map[string]any) (marc.Record, marc.Record) {
	t.Helper()
	raw := mustRecord(t, obj)
	return raw, Table().Backward(Table().Forward(raw))
}

func TestFundingRoundTrips(t *testing.T) {
	raw, back := roundtrip(t, map[string]any{
		"536__": []any{
			map[string]any{"a": "DOE", "c": "DE-SC0012704"},
			map[string]any{"a": "ERC", "f": "740006"},
		},
	})
	if diff := cmp.Diff(raw, back); diff != "" {
		t.Errorf("funding_info did not round-trip (-raw +back):\n%s", diff)
	}
}

func TestLicenseRoundTrips(t *testing.T) {
	raw, back := roundtrip(t, map[string]any{
		"540__": map[string]any{
			"a": "CC-BY-4.0",
			"u": "https://creativecommons.org/licenses/by/4.0/",
			"3": "publication",
		},
	})
	if diff := cmp.Diff(raw, back); diff != "" {
		t.Errorf("license did not round-trip (-raw +back):\n%s", diff)
	}
}

func TestLicenseDropsOpenAccessMarker(t *testing.T) {
	raw := mustRecord(t, map[string]any{
		"540__": map[string]any{"a": []any{"Open Access", "CC-BY-4.0"}},
	})
	out := Table().Forward(raw)
	lics := out[KeyLicense].([]License)
	require.Equal(t, []License{{License: "CC-BY-4.0"}}, lics)
}

func TestAbstractsRoundTrip(t *testing.T) {
	raw, back := roundtrip(t, map[string]any{
		"520__": []any{
			map[string]any{"9": "arXiv", "a": "We measure the cross section."},
			map[string]any{"9": "HEPDATA", "h": "Tables of the measured values."},
		},
	})
	if diff := cmp.Diff(raw, back); diff != "" {
		t.Errorf("abstracts did not round-trip (-raw +back):\n%s", diff)
	}
}

func TestAbstractsHEPDATASubfield(t *testing.T) {
	back := Table().Backward(Semantic{
		KeyAbstracts: []Abstract{
			{Source: hepdataSource, Value: "tables"},
			{Source: "arXiv", Value: "prose"},
		},
	})
	fields := back[TagAbstracts]
	require.Len(t, fields, 2)
	require.Equal(t, "tables", fields[0].Get("h").Single())
	require.True(t, fields[0].Get("a").IsZero())
	require.Equal(t, "prose", fields[1].Get("a").Single())
	require.True(t, fields[1].Get("h").IsZero())
}

func TestCopyrightLossy(t *testing.T) {
	// material in subfield 3 only: forward reads it, backward writes
	// the canonical e instead
	raw := mustRecord(t, map[string]any{
		"542__": map[string]any{
			"d": "CERN",
			"g": "2019",
			"3": "Published thesis as a book",
		},
	})
	out := Table().Forward(raw)
	cs := out[KeyCopyright].([]Copyright)
	require.Len(t, cs, 1)
	require.Equal(t, "publication", cs[0].Material)
	require.Equal(t, "CERN", cs[0].Holder)
	require.NotNil(t, cs[0].Year)
	require.Equal(t, 2019, *cs[0].Year)

	back := Table().Backward(out)
	f := back[TagCopyright][0]
	require.Equal(t, "Article", f.Get("e").Single())
	require.True(t, f.Get("3").IsZero())
	require.Equal(t, "2019", f.Get("g").Single())
}

func TestCopyrightPrefersSubfieldE(t *testing.T) {
	raw := mustRecord(t, map[string]any{
		"542__": map[string]any{"e": "Article", "3": "ignored"},
	})
	out := Table().Forward(raw)
	cs := out[KeyCopyright].([]Copyright)
	require.Equal(t, "publication", cs[0].Material)
}

func TestCopyrightUnmappedMaterial(t *testing.T) {
	raw := mustRecord(t, map[string]any{
		"542__": map[string]any{"d": "APS", "e": "not in the table"},
	})
	out := Table().Forward(raw)
	cs := out[KeyCopyright].([]Copyright)
	require.Equal(t, "", cs[0].Material)
}

func TestForwardIdempotentOnFullRecord(t *testing.T) {
	raw := mustRecord(t, map[string]any{
		"500__": []any{
			map[string]any{"a": "Presented on 2015-09-30"},
			map[string]any{"a": "temporary entry", "9": "arXiv"},
		},
		"502__": map[string]any{"b": "PhD", "c": "CERN", "d": "2015", "z": "902725"},
		"520__": map[string]any{"9": "arXiv", "a": "We measure."},
		"536__": map[string]any{"a": "DOE"},
		"540__": map[string]any{"a": "CC-BY-4.0"},
		"542__": map[string]any{"d": "CERN", "g": "2019"},
		"595__": []any{
			map[string]any{"c": "CDS"},
			map[string]any{"a": "internal", "9": "CERN"},
		},
		"595_D": map[string]any{"a": "8", "d": "2020-02-27", "s": "abs"},
		"595_H": map[string]any{"a": "halid missing"},
	})
	a, b := Table().Forward(raw), Table().Forward(raw)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("forward not deterministic (-a +b):\n%s", diff)
	}
}

func TestFullRecordRoundTrip(t *testing.T) {
	// a record confined to the lossless parts of the family comes
	// back bit-identical
	raw, back := roundtrip(t, map[string]any{
		"500__": map[string]any{"a": "temporary entry", "9": "arXiv"},
		"536__": map[string]any{"a": "DOE", "c": "DE-SC0012704"},
		"540__": map[string]any{"a": "CC-BY-4.0", "u": "https://example.org/l"},
		"595_D": map[string]any{"a": "8", "d": "2020-02-27", "s": "abs"},
	})
	if diff := cmp.Diff(raw, back); diff != "" {
		t.Errorf("record did not round-trip (-raw +back):\n%s", diff)
	}
}
