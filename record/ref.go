// Package record provides semantic-side cross-references between
// records, resolved from opaque raw keys.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// APIBase is the prefix under which resolved references live.
var APIBase = "https://inspirehep.net/api"

// Ref is a typed cross-reference to another record.
type Ref struct {
	Ref string `json:"$ref"`
}

// Resolve turns an opaque record key and a collection namespace into
// a reference. Unresolvable input (empty or non-numeric key) yields
// nil rather than an error; upstream data is noisy and a missing
// reference is a documented degradation, not a failure.
func Resolve(id, collection string) *Ref {
	id = strings.TrimSpace(id)
	if id == "" || collection == "" {
		return nil
	}
	recid, err := strconv.Atoi(id)
	if err != nil {
		return nil
	}
	return &Ref{Ref: fmt.Sprintf("%s/%s/%d", APIBase, collection, recid)}
}
