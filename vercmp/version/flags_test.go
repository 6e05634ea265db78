package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		input     string
		expected  Flags
		shouldErr bool
	}{
		{input: "p-is-patch", expected: FlagPIsPatch},
		{input: "any-is-patch", expected: FlagAnyIsPatch},
		{input: "lower-bound", expected: FlagLowerBound},
		{input: "upper-bound", expected: FlagUpperBound},
		{input: " Upper-Bound ", expected: FlagUpperBound},
		{input: "bogus", shouldErr: true},
		{input: "", shouldErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			flag, err := ParseFlag(test.input)
			if test.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, flag)
		})
	}
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{"p-is-patch", "lower-bound"})
	require.NoError(t, err)
	assert.Equal(t, FlagPIsPatch|FlagLowerBound, flags)

	flags, err = ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, Flags(0), flags)

	_, err = ParseFlags([]string{"p-is-patch", "nope"})
	assert.Error(t, err)
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "p-is-patch", FlagPIsPatch.String())
	assert.Equal(t, "p-is-patch|upper-bound", (FlagPIsPatch | FlagUpperBound).String())
	// unknown bits are not rendered
	assert.Equal(t, "lower-bound", (FlagLowerBound | Flags(1<<20)).String())
}
