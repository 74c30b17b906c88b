// Package filter compiles record predicates. A predicate is an
// expr-lang expression evaluated against the generic form of a
// semantic record, e.g.
//
//	len(public_notes) > 0
//	_export_to?.CDS == true
//	thesis_info?.degree_type == "phd"
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src  string
	prog *vm.Program
}

// Compile compiles src once; the returned Filter is reusable across
// records.
func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Eval runs the predicate against one record in generic form. A
// non-boolean result is an error; missing keys evaluate as nil.
func (f *Filter) Eval(rec map[string]any) (bool, error) {
	out, err := expr.Run(f.prog, rec)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: result is %T, not bool", f.src, out)
	}
	return b, nil
}
