package parse

import "regexp"

// Fixed vocabularies the extractors match against. List order is scan order:
// extractors return the first entry that matches anywhere in the text, so
// these lists double as precedence.

var knownLocations = []string{
	"kitchen", "living room", "bedroom", "bathroom", "garage", "office",
	"dining room", "kids room", "study", "storeroom", "balcony", "hall",
	"laundry", "pantry",
}

var deviceKeywords = []string{
	"fridge", "refrigerator", "ac", "air conditioner", "washing machine",
	"microwave", "oven", "heater", "dishwasher", "fan", "tv", "television",
	"cooler", "freezer", "pump", "dryer",
}

var typeKeywords = []string{"electric", "gas", "solar", "battery", "diesel"}

var numberWords = []struct {
	word  string
	value int
}{
	{"zero", 0}, {"one", 1}, {"two", 2}, {"three", 3}, {"four", 4},
	{"five", 5}, {"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9},
	{"ten", 10},
}

var (
	locationPatterns = compileWholeWord(knownLocations)
	typePatterns     = compileWholeWord(typeKeywords)
)

func compileWholeWord(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}
