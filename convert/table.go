package convert

import (
	"fmt"
	"regexp"

	"github.com/openbib/marcjson/debug"
	"github.com/openbib/marcjson/marc"
)

// Table holds the compiled rule tables for both directions. Rules are
// matched in table order, first match wins; there is no dynamic
// registration, a table is built once from explicit slices.
type Table struct {
	forward  []compiledForward
	backward []compiledBackward
}

type compiledForward struct {
	ForwardRule
	re *regexp.Regexp
}

type compiledBackward struct {
	BackwardRule
	re *regexp.Regexp
}

// NewTable compiles the rule patterns. It fails only on programmer
// mistakes: an invalid pattern or a rule without a handler.
func NewTable(fwd []ForwardRule, bwd []BackwardRule) (*Table, error) {
	t := &Table{
		forward:  make([]compiledForward, 0, len(fwd)),
		backward: make([]compiledBackward, 0, len(bwd)),
	}
	for _, r := range fwd {
		if r.Fn == nil {
			return nil, fmt.Errorf("forward rule %q has no handler", r.Name)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("forward rule %q: %w", r.Name, err)
		}
		t.forward = append(t.forward, compiledForward{ForwardRule: r, re: re})
	}
	for _, r := range bwd {
		if r.Fn == nil {
			return nil, fmt.Errorf("backward rule %q has no handler", r.Name)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("backward rule %q: %w", r.Name, err)
		}
		t.backward = append(t.backward, compiledBackward{BackwardRule: r, re: re})
	}
	return t, nil
}

// MustTable is NewTable for static tables whose patterns are known
// good.
func MustTable(fwd []ForwardRule, bwd []BackwardRule) *Table {
	t, err := NewTable(fwd, bwd)
	if err != nil {
		panic(err)
	}
	return t
}

// Forward transforms a raw record into a semantic one. Tags iterate
// in sorted order; each matching rule is invoked exactly once per
// tag, with all of that tag's occurrences, and its delta is applied
// before the next tag is considered. Unmatched tags are skipped.
func (t *Table) Forward(raw marc.Record) Semantic {
	out := Semantic{}
	for _, tag := range raw.Tags() {
		rule := t.matchForward(tag)
		if rule == nil {
			if debug.Match() {
				debug.Logf("no forward rule for tag %q\n", tag)
			}
			continue
		}
		if debug.Rule() {
			debug.Logf("forward %s: tag %q (%d occurrences)\n", rule.Name, tag, len(raw[tag]))
		}
		d := rule.Fn(&ForwardContext{Tag: tag, Out: out}, raw[tag])
		out.apply(rule.Key, d, rule.Policy)
	}
	return out
}

func (s Semantic) apply(key string, d Delta, p Policy) {
	if !isNil(d.Value) {
		if debug.Merge() {
			debug.Logf("merge %q (%s)\n", key, p)
		}
		s[key] = accumulate(s[key], d.Value, p)
	}
	for _, eff := range d.Effects {
		if isNil(eff.Value) {
			continue
		}
		if debug.Merge() {
			debug.Logf("merge effect %q (%s)\n", eff.Key, eff.Policy)
		}
		s[eff.Key] = accumulate(s[eff.Key], eff.Value, eff.Policy)
	}
}

// Backward transforms a semantic record into a raw one, the mirror of
// Forward: keys iterate in sorted order and each matching rule runs
// once per key.
func (t *Table) Backward(sem Semantic) marc.Record {
	out := marc.Record{}
	for _, key := range sem.Keys() {
		rule := t.matchBackward(key)
		if rule == nil {
			if debug.Match() {
				debug.Logf("no backward rule for key %q\n", key)
			}
			continue
		}
		if debug.Rule() {
			debug.Logf("backward %s: key %q\n", rule.Name, key)
		}
		d := rule.Fn(&BackwardContext{Key: key, Out: out}, sem[key])
		applyFields(out, rule.Tag, d, rule.Policy)
	}
	return out
}

func applyFields(rec marc.Record, tag string, d FieldDelta, p Policy) {
	if len(d.Fields) > 0 {
		if p == Set {
			rec[tag] = d.Fields
		} else {
			rec.Append(tag, d.Fields...)
		}
	}
	for _, eff := range d.Effects {
		if len(eff.Fields) == 0 {
			continue
		}
		if eff.Policy == Set {
			rec[eff.Tag] = eff.Fields
		} else {
			rec.Append(eff.Tag, eff.Fields...)
		}
	}
}

func (t *Table) matchForward(tag string) *compiledForward {
	for i := range t.forward {
		if t.forward[i].re.MatchString(tag) {
			return &t.forward[i]
		}
	}
	return nil
}

func (t *Table) matchBackward(key string) *compiledBackward {
	for i := range t.backward {
		if t.backward[i].re.MatchString(key) {
			return &t.backward[i]
		}
	}
	return nil
}
