package version

import (
	"fmt"
)

type Constraint interface {
	fmt.Stringer
	Satisfied(*Version) (bool, error)
	Value() string
	Format() Format
}

// GetConstraint parses a range expression to be evaluated against versions of
// the given format. Every format shares the same expression grammar; the
// format only selects which comparator orders the operands.
func GetConstraint(constStr string, format Format) (Constraint, error) {
	switch format {
	case SemanticFormat, DebFormat, ApkFormat:
		return newGenericConstraint(format, constStr)
	case GenericFormat, UnknownFormat:
		return newGenericConstraint(GenericFormat, constStr)
	}
	return nil, fmt.Errorf("could not find constraint for given format: %s", format)
}

// MustGetConstraint is meant for testing only, do not use within the library
func MustGetConstraint(constStr string, format Format) Constraint {
	constraint, err := GetConstraint(constStr, format)
	if err != nil {
		panic(err)
	}
	return constraint
}
