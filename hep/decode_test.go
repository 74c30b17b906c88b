package hep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSemantic(t *testing.T) {
	sem, err := DecodeSemantic(map[string]any{
		"public_notes": []any{
			map[string]any{"source": "arXiv", "value": "To appear"},
		},
		"thesis_info": map[string]any{
			"defense_date": "2015-09-30",
			"degree_type":  "phd",
		},
		"_export_to": map[string]any{"CDS": true, "HAL": false},
		"titles":     []any{"kept as-is"},
	})
	require.NoError(t, err)

	require.Equal(t, []Note{{Source: "arXiv", Value: "To appear"}}, sem[KeyPublicNotes])
	require.Equal(t, ThesisInfo{DefenseDate: "2015-09-30", DegreeType: "phd"}, sem[KeyThesisInfo])
	require.Equal(t, ExportTo{"CDS": true, "HAL": false}, sem[KeyExportTo])
	// unknown keys pass through untyped
	require.Equal(t, []any{"kept as-is"}, sem["titles"])
}

func TestDecodeSemanticBadShape(t *testing.T) {
	_, err := DecodeSemantic(map[string]any{
		"public_notes": "not a list",
	})
	require.Error(t, err)
}

func TestDecodeSemanticFeedsBackward(t *testing.T) {
	sem, err := DecodeSemantic(map[string]any{
		"funding_info": []any{
			map[string]any{"agency": "DOE", "grant_number": "DE-SC0012704"},
		},
	})
	require.NoError(t, err)
	back := Table().Backward(sem)
	fields := back[TagFunding]
	require.Len(t, fields, 1)
	require.Equal(t, "DOE", fields[0].Get("a").Single())
	require.Equal(t, "DE-SC0012704", fields[0].Get("c").Single())
}
