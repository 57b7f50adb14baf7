package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	starDigitPattern = regexp.MustCompile(`\b(\d+)\s*[-\s]*stars?\b`)
	starWordPattern  = buildStarWordPattern()
	ratingPattern    = regexp.MustCompile(`\brating\s*(?:is|:)?\s*(\d+)\b`)
)

func buildStarWordPattern() *regexp.Regexp {
	words := make([]string, len(numberWords))
	for i, nw := range numberWords {
		words[i] = nw.word
	}
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\s*[-\s]*stars?\b`)
}

// extractRating recognizes "<n> star(s)" with the digit form checked before
// spelled-out numbers (zero through ten), then falls back to "rating is <n>".
// Any integer is accepted; star ratings are not range-checked.
func extractRating(text string) (int, bool) {
	t := strings.ToLower(text)

	if m := starDigitPattern.FindStringSubmatch(t); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return toIntSafe(num)
	}

	if m := starWordPattern.FindStringSubmatch(t); m != nil {
		for _, nw := range numberWords {
			if nw.word == m[1] {
				return nw.value, true
			}
		}
		return 0, false
	}

	if m := ratingPattern.FindStringSubmatch(t); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return toIntSafe(num)
	}

	return 0, false
}
