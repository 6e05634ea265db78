package version

import (
	"fmt"
	"strings"
)

// constraintExpression is an OR of AND groups of operator/version units, e.g.
// ">= 1.0, < 2.0 || = 3.1".
type constraintExpression struct {
	units [][]constraintUnit
}

func newConstraintExpression(phrase string) (constraintExpression, error) {
	orParts := strings.Split(phrase, "||")
	orUnits := make([][]constraintUnit, 0, len(orParts))

	for _, orPart := range orParts {
		var andUnits []constraintUnit
		for _, andPart := range strings.Split(orPart, ",") {
			if strings.TrimSpace(andPart) == "" {
				continue
			}
			units, err := splitConstraintPhrase(andPart)
			if err != nil {
				return constraintExpression{}, fmt.Errorf("unable to parse constraint phrase %q: %w", andPart, err)
			}
			andUnits = append(andUnits, units...)
		}
		if len(andUnits) > 0 {
			orUnits = append(orUnits, andUnits)
		}
	}

	return constraintExpression{
		units: orUnits,
	}, nil
}

func (c constraintExpression) satisfied(format Format, version *Version) (bool, error) {
	oneSatisfied := false
	for _, andOperand := range c.units {
		allSatisfied := true
		for _, andUnit := range andOperand {
			constraintVersion, err := NewVersion(andUnit.version, format)
			if err != nil {
				return false, fmt.Errorf("unable to parse constraint version %q: %w", andUnit.version, err)
			}

			result, err := version.Compare(constraintVersion)
			if err != nil {
				return false, fmt.Errorf("uncomparable %q vs %q: %w", andUnit.version, version.String(), err)
			}

			if !andUnit.Satisfied(result) {
				allSatisfied = false
			}
		}

		oneSatisfied = oneSatisfied || allSatisfied
	}
	return oneSatisfied, nil
}
