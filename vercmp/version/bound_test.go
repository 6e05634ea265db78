package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundDerivation(t *testing.T) {
	tests := []struct {
		prefix  string
		kind    BoundKind
		derived string
	}{
		{prefix: "1.2", kind: BoundLower, derived: "1.2~"},
		{prefix: "1.2", kind: BoundUpper, derived: "1.2+"},
		{prefix: "1.0alpha", kind: BoundLower, derived: "1.0.alpha~"},
		{prefix: "1..2", kind: BoundUpper, derived: "1..2+"},
		{prefix: "", kind: BoundLower, derived: "~"},
		{prefix: "", kind: BoundUpper, derived: "+"},
		// derivation is idempotent
		{prefix: "1.2~", kind: BoundLower, derived: "1.2~"},
		{prefix: "1.2+", kind: BoundLower, derived: "1.2~"},
		{prefix: "1.2~", kind: BoundUpper, derived: "1.2+"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s/%s", test.kind, test.prefix), func(t *testing.T) {
			assert.Equal(t, test.derived, Bound(test.prefix, test.kind))
		})
	}
}

func TestBoundOrdering(t *testing.T) {
	extensions := []string{
		"1.2",
		"1.2.0",
		"1.2.0.0.1",
		"1.2.1",
		"1.2.99",
		"1.2alpha1",
		"1.2patch4",
		"1.2.3.beta2",
	}

	lower := LowerBound("1.2")
	upper := UpperBound("1.2")

	for _, extension := range extensions {
		assert.Equalf(t, -1, Compare(lower, extension), "lower bound %q should sort below %q", lower, extension)
		assert.Equalf(t, 1, Compare(upper, extension), "upper bound %q should sort above %q", upper, extension)
	}

	// the bounds stay inside the neighboring prefixes
	assert.Equal(t, 1, Compare(lower, "1.1.99"))
	assert.Equal(t, -1, Compare(upper, "1.3"))
}

func TestBoundMatchesFlagBehavior(t *testing.T) {
	samples := []string{"1.2", "1.2.0", "1.2.99", "1.2alpha1", "1.3", "1.1", "2.0", ""}

	for _, sample := range samples {
		t.Run(sample, func(t *testing.T) {
			derivedLower := Compare(LowerBound("1.2"), sample)
			flaggedLower := CompareWithFlags("1.2", sample, FlagLowerBound, 0)
			require.Equal(t, flaggedLower, derivedLower, "lower bound derivation disagrees with FlagLowerBound")

			derivedUpper := Compare(UpperBound("1.2"), sample)
			flaggedUpper := CompareWithFlags("1.2", sample, FlagUpperBound, 0)
			require.Equal(t, flaggedUpper, derivedUpper, "upper bound derivation disagrees with FlagUpperBound")
		})
	}
}

func TestParseBoundKind(t *testing.T) {
	kind, err := ParseBoundKind("lower")
	require.NoError(t, err)
	assert.Equal(t, BoundLower, kind)

	kind, err = ParseBoundKind("Upper")
	require.NoError(t, err)
	assert.Equal(t, BoundUpper, kind)

	_, err = ParseBoundKind("sideways")
	assert.Error(t, err)
}
