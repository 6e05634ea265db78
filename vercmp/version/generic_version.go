package version

var _ Comparator = (*genericVersion)(nil)

// genericVersion compares any version string under the flexible grammar:
// tokenize, classify, then walk both component sequences position by
// position. It accepts arbitrary input and never fails to parse.
type genericVersion struct {
	raw        string
	flags      Flags
	components []component
}

func newGenericVersion(raw string, flags Flags) genericVersion {
	return genericVersion{
		raw:        raw,
		flags:      flags,
		components: parseComponents(raw, flags),
	}
}

func (v genericVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	if o, ok := other.comparator.(genericVersion); ok {
		return compareSequences(v.components, o.components), nil
	}

	// any raw string can be reinterpreted under the generic grammar
	return compareSequences(v.components, parseComponents(other.Raw, 0)), nil
}

// compareSequences walks two classified sequences index by index, padding the
// shorter side with the absent component, and returns the first non-equal
// component comparison.
func compareSequences(a, b []component) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := absent, absent
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		if result := compareComponents(ca, cb); result != 0 {
			return result
		}
	}
	return 0
}

// Compare orders two raw version strings under the flexible grammar with no
// interpretation flags. This returns -1, 0, or 1 if left is smaller, equal,
// or larger than right, respectively.
func Compare(left, right string) int {
	return CompareWithFlags(left, right, 0, 0)
}

// CompareWithFlags orders two raw version strings, classifying each side
// under its own flag word. The result is a pure function of the inputs.
func CompareWithFlags(left, right string, leftFlags, rightFlags Flags) int {
	return compareSequences(parseComponents(left, leftFlags), parseComponents(right, rightFlags))
}
