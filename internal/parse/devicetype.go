package parse

import (
	"regexp"
	"strings"
)

var typePattern = regexp.MustCompile(`\btype\s*(?:is|:)?\s*([a-zA-Z]+)\b`)

// extractType prefers an explicit "type is <word>" / "type: <word>" and
// returns that word verbatim. Otherwise it scans for the fixed energy-type
// keywords as whole words, in keyword-list order rather than text order.
func extractType(text string) (string, bool) {
	t := strings.ToLower(text)

	if m := typePattern.FindStringSubmatch(t); m != nil {
		return m[1], true
	}

	for i, kw := range typeKeywords {
		if typePatterns[i].MatchString(t) {
			return kw, true
		}
	}

	return "", false
}
