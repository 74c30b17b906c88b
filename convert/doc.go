// Package convert is the bidirectional transformation engine between
// tag-addressed raw records (marc.Record) and semantically keyed
// records (Semantic).
//
// Rules live in explicit ordered tables: each forward rule pairs a
// tag pattern with a handler producing a value for its semantic key,
// each backward rule pairs a semantic-key pattern with a handler
// producing field occurrences for its tag. A handler never mutates
// the in-progress output directly; it returns a Delta and the engine
// applies the primary value and any side-channel effects atomically,
// under the accumulation policy each write declares.
//
// Both drivers iterate their input in sorted tag/key order. Rules
// sharing a side-effect key rely on this: defense-date extraction
// (tag 500) is visible to the structured thesis rule (tag 502), and
// the thesis backward rule (key thesis_info) appends to notes already
// queued by the notes backward rule (key public_notes).
package convert
