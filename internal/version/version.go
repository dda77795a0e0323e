// Package version derives the textual variants of a Python
// <major>.<minor> version string and rewrites their occurrences in
// arbitrary text (file contents, file names, path strings).
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidFormat indicates a version string that is not of the form
// <major>.<minor> (e.g. "3.11").
var ErrInvalidFormat = errors.New("invalid version format, expected <major>.<minor>")

var specPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Spec holds the major and minor components of a version string.
type Spec struct {
	Major string
	Minor string
}

// ParseSpec validates and splits a dotted version string into its
// major and minor components. It returns ErrInvalidFormat (wrapped)
// for anything that does not match <major>.<minor>.
func ParseSpec(v string) (Spec, error) {
	if !specPattern.MatchString(v) {
		return Spec{}, fmt.Errorf("%q: %w", v, ErrInvalidFormat)
	}

	major, minor, _ := strings.Cut(v, ".")

	return Spec{Major: major, Minor: minor}, nil
}

// Dotted returns the canonical dotted form, e.g. "3.11".
func (s Spec) Dotted() string {
	return s.Major + "." + s.Minor
}

// Variants returns the four textual shapes a version takes inside
// build contexts, in fixed order: dotted ("3.11"), dashed ("3-11"),
// prefixed concatenated ("python-311"), and bare concatenated
// ("py311").
func (s Spec) Variants() []string {
	return []string{
		s.Major + "." + s.Minor,
		s.Major + "-" + s.Minor,
		"python-" + s.Major + s.Minor,
		"py" + s.Major + s.Minor,
	}
}

// Pattern is a single old/new replacement pair.
type Pattern struct {
	Old string
	New string
}

// Patterns returns the ordered replacement pairs mapping each variant
// of source onto the matching variant of target. All pairs are applied
// unconditionally and sequentially; their textual shapes are disjoint
// (dot vs dash vs prefix), so the fixed order exists for determinism,
// not for precedence.
func Patterns(source, target Spec) []Pattern {
	src := source.Variants()
	dst := target.Variants()

	patterns := make([]Pattern, len(src))
	for i := range src {
		patterns[i] = Pattern{Old: src[i], New: dst[i]}
	}

	return patterns
}

// Rewrite replaces every variant occurrence of source with the
// matching variant of target in text. The replacement is purely
// textual: a number that happens to match one of the variant shapes in
// an unrelated context is rewritten too.
func Rewrite(text string, source, target Spec) string {
	for _, p := range Patterns(source, target) {
		text = strings.ReplaceAll(text, p.Old, p.New)
	}

	return text
}
