package parse

import (
	"regexp"
	"strings"
)

var (
	locationFallbackPattern = regexp.MustCompile(`\b(?:in|for|at)\s+(?:the\s+)?([a-z][a-z ]{1,30})\b`)
	trailingNounPattern     = regexp.MustCompile(`\b(?:device|appliance|room|area)\b.*$`)
)

// extractLocation checks the known-location vocabulary first, in list order,
// returning the first entry that appears anywhere as a whole word. Otherwise
// it captures up to three words after a preposition ("in the study room"),
// with a trailing generic noun and everything after it stripped.
func extractLocation(text string) (string, bool) {
	t := strings.ToLower(text)

	for i, loc := range knownLocations {
		if locationPatterns[i].MatchString(t) {
			return loc, true
		}
	}

	m := locationFallbackPattern.FindStringSubmatch(t)
	if m == nil {
		return "", false
	}

	candidate := strings.TrimSpace(m[1])
	candidate = strings.TrimSpace(trailingNounPattern.ReplaceAllString(candidate, ""))

	words := strings.Fields(candidate)
	if len(words) == 0 {
		return "", false
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " "), true
}
