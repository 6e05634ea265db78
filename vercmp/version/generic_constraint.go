package version

import (
	"fmt"
	"strings"
)

var _ Constraint = (*genericConstraint)(nil)

type genericConstraint struct {
	raw        string
	expression constraintExpression
	fmt        Format
}

func newGenericConstraint(format Format, raw string) (genericConstraint, error) {
	expression, err := newConstraintExpression(raw)
	if err != nil {
		return genericConstraint{}, invalidFormatError(format, raw, err)
	}
	return genericConstraint{
		expression: expression,
		raw:        raw,
		fmt:        format,
	}, nil
}

func (g genericConstraint) String() string {
	value := g.raw
	if g.raw == "" {
		value = "none"
	}
	return fmt.Sprintf("%s (%s)", value, strings.ToLower(g.fmt.String()))
}

func (g genericConstraint) Value() string {
	return g.raw
}

func (g genericConstraint) Format() Format {
	return g.fmt
}

func (g genericConstraint) Satisfied(version *Version) (bool, error) {
	if g.raw == "" && version != nil {
		// empty constraints are always satisfied
		return true, nil
	}
	if version == nil {
		if g.raw != "" {
			// a non-empty constraint with no version given should always fail
			return false, nil
		}
		return true, nil
	}
	// prevent two known but different formats from being compared; an unknown
	// version is allowed through so it can be upgraded to the constraint format
	if version.Format != g.fmt && version.Format != UnknownFormat && g.fmt != GenericFormat {
		return false, newUnsupportedFormatError(g.fmt, version)
	}
	return g.expression.satisfied(g.fmt, version)
}
