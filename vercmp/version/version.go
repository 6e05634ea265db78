package version

import (
	"fmt"
)

var _ Comparator = (*Version)(nil)

type Version struct {
	Raw        string
	Format     Format
	comparator Comparator
}

func NewVersion(raw string, format Format) (*Version, error) {
	version := &Version{
		Raw:    raw,
		Format: format,
	}

	err := version.populate()
	if err != nil {
		return nil, err
	}

	return version, nil
}

// NewGenericVersion interprets any raw string under the flexible grammar with
// the given interpretation flags. It cannot fail: malformed input degenerates
// to an empty component sequence.
func NewGenericVersion(raw string, flags Flags) *Version {
	return &Version{
		Raw:        raw,
		Format:     GenericFormat,
		comparator: newGenericVersion(raw, flags),
	}
}

func (v *Version) populate() error {
	var comparator Comparator
	var err error
	switch v.Format {
	case SemanticFormat:
		comparator, err = newSemanticVersion(v.Raw)
	case DebFormat:
		comparator, err = newDebVersion(v.Raw)
	case ApkFormat:
		comparator, err = newApkVersion(v.Raw)
	case GenericFormat, UnknownFormat:
		comparator = newGenericVersion(v.Raw, 0)
	default:
		err = fmt.Errorf("no comparator populated (format=%s)", v.Format)
	}

	v.comparator = comparator

	return err
}

func (v Version) String() string {
	return fmt.Sprintf("%s (%s)", v.Raw, v.Format)
}

// Compare compares this version to another version.
// This returns -1, 0, or 1 if this version is smaller,
// equal, or larger than the other version, respectively.
func (v Version) Compare(other *Version) (int, error) {
	if other == nil {
		return -1, ErrNoVersionProvided
	}

	if other.Format != v.Format && v.Format != GenericFormat && v.Format != UnknownFormat {
		finalized, err := finalizeComparisonVersion(other, v.Format)
		if err != nil {
			return -1, err
		}
		other = finalized
	}

	return v.comparator.Compare(other)
}
