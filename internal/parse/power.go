package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Unit may be abbreviated or spelled out, plural or not, with no space
	// required before it: "1.5kW", "1500 watts", "800w".
	powerPattern         = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(k(?:ilo)?w(?:att)?s?|w(?:att)?s?)\b`)
	powerFallbackPattern = regexp.MustCompile(`(?:power|wattage)\s*[:=]?\s*(\d+)`)
)

// extractPowerWatts resolves the first unit-qualified quantity in text,
// normalized to watts; kilowatt units multiply by 1000. When no unit-qualified
// number appears it falls back to "power: <n>" / "wattage <n>", taken to be
// watts already.
func extractPowerWatts(text string) (int, bool) {
	t := strings.ToLower(text)

	if m := powerPattern.FindStringSubmatch(t); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		if strings.HasPrefix(m[2], "kw") || strings.HasPrefix(m[2], "kilo") {
			num *= 1000
		}
		return toIntSafe(num)
	}

	if m := powerFallbackPattern.FindStringSubmatch(t); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return toIntSafe(num)
	}

	return 0, false
}
