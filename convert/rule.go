package convert

import "github.com/openbib/marcjson/marc"

// ForwardContext is what a forward rule sees besides its own field
// occurrences: the tag that matched and the in-progress semantic
// record, reflecting all previously applied deltas. Rules read it,
// they never write it.
type ForwardContext struct {
	Tag string
	Out Semantic
}

// ForwardFunc consumes all occurrences of one matched tag and returns
// the delta to apply. Malformed input degrades to structural defaults
// inside the rule; handlers do not fail.
type ForwardFunc func(ctx *ForwardContext, fields []marc.Field) Delta

// ForwardRule binds a tag pattern to a handler owning one semantic
// key.
type ForwardRule struct {
	Name    string
	Pattern string
	Key     string
	Policy  Policy
	Fn      ForwardFunc
}

// BackwardContext mirrors ForwardContext for the reverse direction.
type BackwardContext struct {
	Key string
	Out marc.Record
}

// BackwardFunc consumes the value under one matched semantic key and
// returns the occurrences to queue.
type BackwardFunc func(ctx *BackwardContext, value any) FieldDelta

// BackwardRule binds a semantic-key pattern to a handler producing
// occurrences for one tag.
type BackwardRule struct {
	Name    string
	Pattern string
	Tag     string
	Policy  Policy
	Fn      BackwardFunc
}
