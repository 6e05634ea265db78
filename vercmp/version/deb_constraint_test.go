package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebConstraint(t *testing.T) {
	tests := []testCase{
		{version: "1.2.3-1", constraint: "", satisfied: true},
		{version: "1:1.2.3-1", constraint: "> 1:1.0", satisfied: true},
		{version: "1.0~rc1", constraint: "< 1.0", satisfied: true},
		{version: "2.0-1", constraint: ">= 2.0-1", satisfied: true},
		{version: "0.9", constraint: "< 1:0.1", satisfied: true},
		{version: "1.2.3-1ubuntu1", constraint: "> 1.2.3-1", satisfied: true},
		{version: "7.0", constraint: "< 6.0 || >= 8.0", satisfied: false},
	}

	for _, test := range tests {
		t.Run(test.tName(), func(t *testing.T) {
			constraint, err := GetConstraint(test.constraint, DebFormat)
			require.NoError(t, err, "unexpected error from GetConstraint: %v", err)

			test.assertVersionConstraint(t, DebFormat, constraint)
		})
	}
}
