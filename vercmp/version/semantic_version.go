package version

import (
	"strings"

	hashiVer "github.com/anchore/go-version"
)

var _ Comparator = (*semanticVersion)(nil)

// normalizer strips decorations that the semver library rejects but that are
// common in the wild for otherwise semver-shaped versions.
var normalizer = strings.NewReplacer("_", "-")

type semanticVersion struct {
	obj *hashiVer.Version
}

func newSemanticVersion(raw string) (semanticVersion, error) {
	verObj, err := hashiVer.NewVersion(normalizer.Replace(raw))
	if err != nil {
		return semanticVersion{}, invalidFormatError(SemanticFormat, raw, err)
	}
	return semanticVersion{
		obj: verObj,
	}, nil
}

func (v semanticVersion) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	if o, ok := other.comparator.(semanticVersion); ok {
		return v.obj.Compare(o.obj), nil
	}

	return -1, newUnsupportedFormatError(SemanticFormat, other)
}
