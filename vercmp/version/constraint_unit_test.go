package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitConstraintPhrase(t *testing.T) {
	tests := []struct {
		phrase    string
		expected  []constraintUnit
		shouldErr bool
	}{
		{
			phrase:   ">= 1.0",
			expected: []constraintUnit{{rangeOperator: GTE, version: "1.0"}},
		},
		{
			phrase:   "=1.0",
			expected: []constraintUnit{{rangeOperator: EQ, version: "1.0"}},
		},
		{
			phrase:   "1.0",
			expected: []constraintUnit{{rangeOperator: EQ, version: "1.0"}},
		},
		{
			phrase: "> 1.0 < 2.0",
			expected: []constraintUnit{
				{rangeOperator: GT, version: "1.0"},
				{rangeOperator: LT, version: "2.0"},
			},
		},
		{
			phrase:    "(> 1.0)",
			shouldErr: true,
		},
		{
			phrase:    "> 1.0 || < 2.0",
			shouldErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.phrase, func(t *testing.T) {
			units, err := splitConstraintPhrase(test.phrase)
			if test.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, units)
		})
	}
}

func TestConstraintUnitSatisfied(t *testing.T) {
	tests := []struct {
		operator Operator
		// satisfaction for comparison results -1, 0, 1
		expected [3]bool
	}{
		{operator: EQ, expected: [3]bool{false, true, false}},
		{operator: GT, expected: [3]bool{false, false, true}},
		{operator: GTE, expected: [3]bool{false, true, true}},
		{operator: LT, expected: [3]bool{true, false, false}},
		{operator: LTE, expected: [3]bool{true, true, false}},
	}

	for _, test := range tests {
		t.Run(string(test.operator), func(t *testing.T) {
			unit := constraintUnit{rangeOperator: test.operator}
			for i, comparison := range []int{-1, 0, 1} {
				assert.Equal(t, test.expected[i], unit.Satisfied(comparison))
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator("")
	require.NoError(t, err)
	assert.Equal(t, EQ, op)

	op, err = ParseOperator(">=")
	require.NoError(t, err)
	assert.Equal(t, GTE, op)

	_, err = ParseOperator("~>")
	assert.Error(t, err)
}
