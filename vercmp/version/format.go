package version

import "strings"

const (
	UnknownFormat Format = iota
	GenericFormat
	SemanticFormat
	DebFormat
	ApkFormat
)

// Format designates the versioning scheme a raw string should be interpreted
// under. GenericFormat is the flexible grammar and accepts any input.
type Format int

var formatStr = []string{
	"UnknownFormat",
	"Generic",
	"Semantic",
	"Deb",
	"Apk",
}

var Formats = []Format{
	GenericFormat,
	SemanticFormat,
	DebFormat,
	ApkFormat,
}

func ParseFormat(userStr string) Format {
	switch strings.ToLower(userStr) {
	case strings.ToLower(GenericFormat.String()), "flexible", "fuzzy":
		return GenericFormat
	case strings.ToLower(SemanticFormat.String()), "semver":
		return SemanticFormat
	case strings.ToLower(DebFormat.String()), "dpkg":
		return DebFormat
	case strings.ToLower(ApkFormat.String()), "alpine":
		return ApkFormat
	}
	return UnknownFormat
}

func (f Format) String() string {
	if int(f) >= len(formatStr) || f < 0 {
		return formatStr[0]
	}

	return formatStr[f]
}
