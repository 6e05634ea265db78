package version

import "strings"

type componentKind int

const (
	kindBoundLower componentKind = iota
	kindPreRelease
	kindEmpty
	kindPostRelease
	kindNumeric
	kindBoundUpper
)

// component is one classified unit of a tokenized version string: a number, a
// letter run, or a structural marker. Numeric values are kept as normalized
// digit strings so that version identifiers longer than any machine integer
// (build counters, dates, hashes-as-numbers) never truncate.
type component struct {
	kind  componentKind
	value string // normalized digits for kindNumeric, lowercased letters for keyword kinds
}

// absent stands in for a position past the end of the shorter sequence. A
// missing component and an explicit zero must compare equal ("1.0" == "1.0.0").
var absent = component{kind: kindEmpty}

// order returns the class rank used when two components of different kinds
// meet: bound-lower < pre-release < zero < post-release < nonzero < bound-upper.
// A numeric zero shares the rank of a missing component.
func (c component) order() int {
	switch c.kind {
	case kindBoundLower:
		return 0
	case kindPreRelease:
		return 1
	case kindEmpty:
		return 2
	case kindPostRelease:
		return 3
	case kindNumeric:
		if c.value == "0" {
			return 2
		}
		return 4
	case kindBoundUpper:
		return 5
	}
	return 2
}

// compareComponents returns -1, 0, or 1 ordering a relative to b.
func compareComponents(a, b component) int {
	ao, bo := a.order(), b.order()
	switch {
	case ao < bo:
		return -1
	case ao > bo:
		return 1
	}

	// same class rank: refine by value
	switch {
	case a.kind == kindNumeric && b.kind == kindNumeric:
		return compareNumbers(a.value, b.value)
	case isLetterKind(a.kind) && isLetterKind(b.kind):
		return strings.Compare(a.value, b.value)
	}

	// zero-ranked and sentinel components carry no value
	return 0
}

func isLetterKind(k componentKind) bool {
	return k == kindPreRelease || k == kindPostRelease
}

// compareNumbers compares two leading-zero-normalized digit strings as
// non-negative integers of arbitrary magnitude.
func compareNumbers(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
