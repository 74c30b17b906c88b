package convert

import (
	"maps"
	"slices"

	"github.com/openbib/marcjson/marc"
)

// Semantic is the structured record being built by the forward
// direction, and consumed by the backward direction. Values are
// key-specific: lists of entries, single objects, or scalars. Keys
// are never deleted mid-transformation.
type Semantic map[string]any

// Keys returns the semantic keys in sorted order.
func (s Semantic) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Delta is what a forward rule returns: the value for the rule's own
// key plus side-channel writes to keys it does not own. The engine
// applies all parts of a delta before invoking the next rule.
type Delta struct {
	Value   any
	Effects []Effect
}

// Effect is one side-channel write of a forward rule.
type Effect struct {
	Key    string
	Value  any
	Policy Policy
}

// FieldDelta is the backward counterpart: occurrences for the rule's
// own tag plus side-channel writes to other tags.
type FieldDelta struct {
	Fields  []marc.Field
	Effects []TagEffect
}

// TagEffect is one side-channel write of a backward rule.
type TagEffect struct {
	Tag    string
	Fields []marc.Field
	Policy Policy
}
