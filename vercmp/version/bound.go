package version

import (
	"fmt"
	"strings"
)

const (
	lowerBoundMarker = "~"
	upperBoundMarker = "+"
)

// BoundKind selects which end of a prefix range to derive.
type BoundKind int

const (
	BoundLower BoundKind = iota
	BoundUpper
)

func (k BoundKind) String() string {
	switch k {
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	}
	return "unknown"
}

// ParseBoundKind returns the bound kind for the given user string.
func ParseBoundKind(userStr string) (BoundKind, error) {
	switch strings.ToLower(userStr) {
	case "lower":
		return BoundLower, nil
	case "upper":
		return BoundUpper, nil
	}
	return BoundLower, fmt.Errorf("unknown bound kind: %q (expected lower or upper)", userStr)
}

// LowerBound derives a string that sorts below every version extending the
// given prefix, while still sorting above anything below the prefix itself.
// The result parses back under zero flags, so it can be mixed freely with
// real versions in a sorted list for half-open range queries.
func LowerBound(prefix string) string {
	return Bound(prefix, BoundLower)
}

// UpperBound derives a string that sorts above every version extending the
// given prefix.
func UpperBound(prefix string) string {
	return Bound(prefix, BoundUpper)
}

// Bound re-serializes the classified prefix to canonical text plus a trailing
// bound marker. Any sentinel already present on the prefix is dropped first,
// so derivation is idempotent. Equivalent to comparing the prefix with
// FlagLowerBound/FlagUpperBound set directly.
func Bound(prefix string, kind BoundKind) string {
	components := parseComponents(prefix, 0)
	for len(components) > 0 && isSentinel(components[len(components)-1]) {
		components = components[:len(components)-1]
	}

	marker := lowerBoundMarker
	if kind == BoundUpper {
		marker = upperBoundMarker
	}

	return serializeComponents(components) + marker
}

func isSentinel(c component) bool {
	return c.kind == kindBoundLower || c.kind == kindBoundUpper
}

// serializeComponents renders a classified sequence in canonical form:
// component values joined with ".", empty components preserved as zero-length
// parts so that positional alignment round-trips.
func serializeComponents(components []component) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = c.value
	}
	return strings.Join(parts, ".")
}
