package version

import (
	"fmt"
	"strings"
)

// Flags alter how a single input string is classified and compared. Each side
// of a comparison carries its own flag word, so the same literal substring may
// classify differently for the left and right operand.
type Flags uint32

const (
	// FlagPIsPatch treats the letter run "p" as a post-release (patch)
	// keyword instead of the default pre-release treatment.
	FlagPIsPatch Flags = 1 << iota

	// FlagAnyIsPatch treats every letter run as a post-release keyword.
	FlagAnyIsPatch

	// FlagLowerBound appends a sentinel that sorts below every extension of
	// the version, turning it into the lower end of a prefix range.
	FlagLowerBound

	// FlagUpperBound appends a sentinel that sorts above every extension of
	// the version.
	FlagUpperBound
)

const knownFlags = FlagPIsPatch | FlagAnyIsPatch | FlagLowerBound | FlagUpperBound

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagPIsPatch, "p-is-patch"},
	{FlagAnyIsPatch, "any-is-patch"},
	{FlagLowerBound, "lower-bound"},
	{FlagUpperBound, "upper-bound"},
}

// ParseFlag returns the flag bit for the given user string.
func ParseFlag(userStr string) (Flags, error) {
	given := strings.ToLower(strings.TrimSpace(userStr))
	for _, entry := range flagNames {
		if given == entry.name {
			return entry.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown comparison flag: %q", userStr)
}

// ParseFlags folds a list of flag names into a single flag word.
func ParseFlags(userStrs []string) (Flags, error) {
	var flags Flags
	for _, userStr := range userStrs {
		flag, err := ParseFlag(userStr)
		if err != nil {
			return 0, err
		}
		flags |= flag
	}
	return flags, nil
}

func (f Flags) String() string {
	var names []string
	for _, entry := range flagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
