package version

import (
	"strings"

	"github.com/verbound/vercmp/internal/log"
)

// postReleaseKeywords are letter runs that sort above a bare version even
// without any flags set ("1.0patch1" > "1.0"). The table also backs the
// FlagPIsPatch reclassification of "p".
var postReleaseKeywords = map[string]struct{}{
	"patch":  {},
	"post":   {},
	"pl":     {},
	"errata": {},
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSeparator(c byte) bool {
	return !isDigit(c) && !isAlpha(c)
}

// parseComponents tokenizes and classifies a raw version string under the
// given flag word. A maximal digit run becomes one numeric component, a
// maximal letter run one keyword component; everything else separates tokens.
// Adjacent interior separators yield an empty component so that positional
// alignment survives grammars like "1..2". The function never fails:
// malformed input degenerates to fewer (possibly zero) components.
func parseComponents(raw string, flags Flags) []component {
	if unknown := flags &^ knownFlags; unknown != 0 {
		log.Tracef("ignoring unknown comparison flag bits: %#x", uint32(unknown))
	}

	body, sentinel := splitBoundMarker(raw)

	// leading separators never contribute components
	start := 0
	for start < len(body) && isSeparator(body[start]) {
		start++
	}
	body = body[start:]

	var components []component
	prevSeparator := false
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case isDigit(c):
			j := i + 1
			for j < len(body) && isDigit(body[j]) {
				j++
			}
			components = append(components, component{kind: kindNumeric, value: normalizeNumber(body[i:j])})
			prevSeparator = false
			i = j
		case isAlpha(c):
			j := i + 1
			for j < len(body) && isAlpha(body[j]) {
				j++
			}
			components = append(components, classifyLetters(body[i:j], flags))
			prevSeparator = false
			i = j
		default:
			if prevSeparator {
				components = append(components, component{kind: kindEmpty})
			}
			prevSeparator = true
			i++
		}
	}

	if sentinel != nil {
		components = append(components, *sentinel)
	}
	if flags&FlagLowerBound != 0 {
		components = append(components, component{kind: kindBoundLower})
	}
	if flags&FlagUpperBound != 0 {
		components = append(components, component{kind: kindBoundUpper})
	}

	return components
}

// splitBoundMarker recognizes a bound marker ("~" lower, "+" upper) within
// the trailing separator run, as produced by LowerBound/UpperBound. Interior
// markers stay ordinary separators, so semver build metadata ("1.0+build")
// and deb-style tildes ("1.0~rc1") are unaffected. The last marker wins.
func splitBoundMarker(raw string) (string, *component) {
	end := len(raw)
	for end > 0 && isSeparator(raw[end-1]) {
		end--
	}

	var sentinel *component
	for i := len(raw) - 1; i >= end; i-- {
		switch raw[i] {
		case '~':
			sentinel = &component{kind: kindBoundLower}
		case '+':
			sentinel = &component{kind: kindBoundUpper}
		default:
			continue
		}
		break
	}

	return raw[:end], sentinel
}

// normalizeNumber strips leading zeros so digit strings compare by magnitude.
func normalizeNumber(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func classifyLetters(letters string, flags Flags) component {
	word := strings.ToLower(letters)

	kind := kindPreRelease
	switch {
	case flags&FlagAnyIsPatch != 0:
		kind = kindPostRelease
	case word == "p" && flags&FlagPIsPatch != 0:
		kind = kindPostRelease
	default:
		if _, ok := postReleaseKeywords[word]; ok {
			kind = kindPostRelease
		}
	}

	return component{kind: kind, value: word}
}
