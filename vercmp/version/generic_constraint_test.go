package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericConstraint(t *testing.T) {
	tests := []testCase{
		{name: "empty constraint matches anything", version: "2.3.1", constraint: "", satisfied: true},
		{version: "1.0", constraint: "= 1.0.0", satisfied: true},
		{version: "1.0.0", constraint: "1.0", satisfied: true},
		{version: "1.0alpha1", constraint: "< 1.0", satisfied: true},
		{version: "1.0patch1", constraint: "> 1.0, < 1.0.1", satisfied: true},
		{version: "1.0p1", constraint: "> 1.0", satisfied: false},
		{version: "1.10", constraint: "> 1.9", satisfied: true},
		{version: "1.05", constraint: "= 1.5", satisfied: true},
		{version: "3.0", constraint: ">= 3.0", satisfied: true},
		{version: "3.0", constraint: "> 3.0", satisfied: false},
		{version: "2.5", constraint: "< 2.0 || >= 2.5", satisfied: true},
		{version: "2.2", constraint: "< 2.0 || >= 2.5", satisfied: false},
		{version: "1.0rc2", constraint: ">= 1.0rc1, < 1.0", satisfied: true},
	}

	for _, test := range tests {
		t.Run(test.tName(), func(t *testing.T) {
			constraint, err := GetConstraint(test.constraint, GenericFormat)
			require.NoError(t, err, "unexpected error from GetConstraint: %v", err)

			test.assertVersionConstraint(t, GenericFormat, constraint)
		})
	}
}

func TestGenericConstraintUnsupportedSyntax(t *testing.T) {
	_, err := GetConstraint("(> 1.0, < 2.0)", GenericFormat)
	assert.Error(t, err)
}

func TestGenericConstraintString(t *testing.T) {
	constraint := MustGetConstraint("> 1.0", GenericFormat)
	assert.Equal(t, "> 1.0 (generic)", constraint.String())
	assert.Equal(t, "> 1.0", constraint.Value())
	assert.Equal(t, GenericFormat, constraint.Format())

	empty := MustGetConstraint("", GenericFormat)
	assert.Equal(t, "none (generic)", empty.String())
}

func TestConstraintFormatMismatch(t *testing.T) {
	constraint := MustGetConstraint("> 1.0.0", SemanticFormat)

	debVer, err := NewVersion("1.2.3-1", DebFormat)
	require.NoError(t, err)

	_, err = constraint.Satisfied(debVer)
	assert.Error(t, err)

	// unknown-format versions are upgraded to the constraint format
	unknown, err := NewVersion("1.2.3", UnknownFormat)
	require.NoError(t, err)

	satisfied, err := constraint.Satisfied(unknown)
	require.NoError(t, err)
	assert.True(t, satisfied)
}

func TestConstraintNilVersion(t *testing.T) {
	satisfied, err := MustGetConstraint("> 1.0", GenericFormat).Satisfied(nil)
	require.NoError(t, err)
	assert.False(t, satisfied)

	satisfied, err = MustGetConstraint("", GenericFormat).Satisfied(nil)
	require.NoError(t, err)
	assert.True(t, satisfied)
}
