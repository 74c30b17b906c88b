package hep

import (
	"encoding/json"
	"fmt"

	"github.com/openbib/marcjson/convert"
)

// DecodeSemantic rebuilds a typed semantic record from a generically
// decoded document, so that backward rules see the entry types they
// were written against. Keys this family does not know pass through
// untouched.
func DecodeSemantic(obj map[string]any) (convert.Semantic, error) {
	out := make(convert.Semantic, len(obj))
	for key, v := range obj {
		typed, err := decodeKey(key, v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		out[key] = typed
	}
	return out, nil
}

func decodeKey(key string, v any) (any, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	switch key {
	case KeyPublicNotes, KeyPrivateNotes:
		var xs []Note
		err = json.Unmarshal(d, &xs)
		return xs, err
	case KeyThesisInfo:
		var ti ThesisInfo
		err = json.Unmarshal(d, &ti)
		return ti, err
	case KeyAbstracts:
		var xs []Abstract
		err = json.Unmarshal(d, &xs)
		return xs, err
	case KeyFundingInfo:
		var xs []FundingInfo
		err = json.Unmarshal(d, &xs)
		return xs, err
	case KeyLicense:
		var xs []License
		err = json.Unmarshal(d, &xs)
		return xs, err
	case KeyCopyright:
		var xs []Copyright
		err = json.Unmarshal(d, &xs)
		return xs, err
	case KeyExportTo:
		var et ExportTo
		err = json.Unmarshal(d, &et)
		return et, err
	case KeyDesyBookkeeping:
		var xs []DesyBookkeeping
		err = json.Unmarshal(d, &xs)
		return xs, err
	default:
		return v, nil
	}
}
