// Package recdiff computes and renders line diffs between two
// records in their canonical JSON form. The roundtrip tooling uses it
// to show what a forward-then-backward pass changed.
package recdiff

import (
	"bytes"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/openbib/marcjson/encode"
)

// Canonical renders v as canonical JSON: sorted keys, two-space
// indent, trailing newline.
func Canonical(v any) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diff returns line-level diffs between the canonical renderings of
// from and to.
func Diff(from, to any) ([]diffpatch.Diff, error) {
	ft, err := Canonical(from)
	if err != nil {
		return nil, err
	}
	tt, err := Canonical(to)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	fc, tc, lines := dmp.DiffLinesToChars(ft, tt)
	diffs := dmp.DiffMain(fc, tc, false)
	return dmp.DiffCharsToLines(diffs, lines), nil
}

// Equal reports whether diffs carry no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

// Sprint renders diffs unified-style, one prefixed line per changed
// line, in color when colored is set.
func Sprint(diffs []diffpatch.Diff, colored bool) string {
	red := func(s string) string { return color.RedString("%s", s) }
	green := func(s string) string { return color.GreenString("%s", s) }
	if !colored {
		red = func(s string) string { return s }
		green = red
	}
	var b strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				b.WriteString(red("- "+line) + "\n")
			case diffpatch.DiffInsert:
				b.WriteString(green("+ "+line) + "\n")
			default:
				b.WriteString("  " + line + "\n")
			}
		}
	}
	return b.String()
}

func splitLines(text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return lines
}
