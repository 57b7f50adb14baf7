package parse

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// extractDeviceName scans adjacent word windows for a known appliance keyword
// and keeps one word of left context as the brand: "the LG fridge" yields
// "lg fridge". At each position the 2-word window is checked before the
// 3-word window, positions left to right; the first hit wins. Brand+appliance
// phrasing is common in spoken descriptions, and the single-word lookback
// captures the brand without pulling in unrelated preceding words.
func extractDeviceName(text string) (string, bool) {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	for i := 0; i+1 < len(words); i++ {
		end := i + 3
		if end > len(words) {
			end = len(words)
		}
		two := words[i] + " " + words[i+1]
		three := strings.Join(words[i:end], " ")

		for _, keyword := range deviceKeywords {
			if strings.Contains(two, keyword) || strings.Contains(three, keyword) {
				start := i - 1
				if start < 0 {
					start = 0
				}
				return strings.Join(words[start:end], " "), true
			}
		}
	}

	return "", false
}
