package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{input: "generic", expected: GenericFormat},
		{input: "Generic", expected: GenericFormat},
		{input: "flexible", expected: GenericFormat},
		{input: "fuzzy", expected: GenericFormat},
		{input: "semantic", expected: SemanticFormat},
		{input: "semver", expected: SemanticFormat},
		{input: "deb", expected: DebFormat},
		{input: "dpkg", expected: DebFormat},
		{input: "apk", expected: ApkFormat},
		{input: "alpine", expected: ApkFormat},
		{input: "rpm", expected: UnknownFormat},
		{input: "", expected: UnknownFormat},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseFormat(test.input))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "Generic", GenericFormat.String())
	assert.Equal(t, "UnknownFormat", UnknownFormat.String())
	assert.Equal(t, "UnknownFormat", Format(-1).String())
	assert.Equal(t, "UnknownFormat", Format(99).String())
}

func TestFormatsRoundTrip(t *testing.T) {
	for _, format := range Formats {
		assert.Equal(t, format, ParseFormat(format.String()))
	}
}
