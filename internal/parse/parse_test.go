package parse_test

import (
	"reflect"
	"strings"
	"testing"

	"greenmeter/internal/parse"
)

func TestDetails_PowerWatts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"kilowatts abbreviated", "runs at 1.5kW", 1500, true},
		{"watts abbreviated", "runs at 1500W", 1500, true},
		{"watts spelled out", "it draws 800 watts", 800, true},
		{"kilowatts spelled out", "uses 2 kilowatts", 2000, true},
		{"kw with space", "around 1.5 kw", 1500, true},
		{"fractional kilowatts", "only 0.5 kw", 500, true},
		{"rounding ties away from zero", "about 2.5 watts", 3, true},
		{"power fallback with colon", "power: 800", 800, true},
		{"power fallback bare", "power 650", 650, true},
		{"wattage fallback", "wattage 650", 650, true},
		{"power fallback equals", "power=900", 900, true},
		{"first match wins", "600W heater and a 1.2kW oven", 600, true},
		{"unit required before fallback", "it has 45 settings, power: 300", 300, true},
		{"overflow treated as absent", "power: 99999999999999999999999999999999", 0, false},
		{"no number", "a very efficient heater", 0, false},
		{"number without unit or fallback", "it costs 300", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parse.Details(tt.text)
			if tt.ok {
				if d.PowerWatts == nil {
					t.Fatalf("PowerWatts absent, want %d", tt.want)
				}
				if *d.PowerWatts != tt.want {
					t.Errorf("PowerWatts = %d, want %d", *d.PowerWatts, tt.want)
				}
			} else if d.PowerWatts != nil {
				t.Errorf("PowerWatts = %d, want absent", *d.PowerWatts)
			}
		})
	}
}

func TestDetails_Rating(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
		ok   bool
	}{
		{"digit star", "it's a 3 star fridge", 3, true},
		{"digit stars plural", "a 5 stars model", 5, true},
		{"digit with hyphen", "4-star rated", 4, true},
		{"word form", "three star washing machine", 3, true},
		{"word form hyphen", "a two-star unit", 2, true},
		{"word zero", "zero star junk", 0, true},
		{"word ten", "ten star marketing", 10, true},
		{"digit preferred over word", "rated three star but the sticker says 5 star", 5, true},
		{"rating is fallback", "rating is 4", 4, true},
		{"rating colon fallback", "rating: 7", 7, true},
		{"rating bare fallback", "rating 9", 9, true},
		{"no upper bound", "a 42 star appliance", 42, true},
		{"star without number", "the star of the kitchen", 0, false},
		{"nothing", "just a fridge", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parse.Details(tt.text)
			if tt.ok {
				if d.Rating == nil {
					t.Fatalf("Rating absent, want %d", tt.want)
				}
				if *d.Rating != tt.want {
					t.Errorf("Rating = %d, want %d", *d.Rating, tt.want)
				}
			} else if d.Rating != nil {
				t.Errorf("Rating = %d, want absent", *d.Rating)
			}
		})
	}
}

func TestDetails_Type(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"explicit colon", "type: electric", "electric", true},
		{"explicit is", "type is gas", "gas", true},
		{"explicit wins over keyword", "type: hybrid, mostly solar", "hybrid", true},
		{"keyword solar", "it runs on solar power", "solar", true},
		{"keyword diesel", "an old diesel pump", "diesel", true},
		{"keyword-list order not text order", "diesel or electric, not sure", "electric", true},
		{"whole word only", "there was a gasoline smell", "", false},
		{"no type", "a fridge in the kitchen", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parse.Details(tt.text)
			if tt.ok {
				if d.Type == nil {
					t.Fatalf("Type absent, want %q", tt.want)
				}
				if *d.Type != tt.want {
					t.Errorf("Type = %q, want %q", *d.Type, tt.want)
				}
			} else if d.Type != nil {
				t.Errorf("Type = %q, want absent", *d.Type)
			}
		})
	}
}

func TestDetails_Location(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"known location", "turn on the fan in the kitchen", "kitchen", true},
		{"two-word known location", "the TV in the living room please", "living room", true},
		{"known location list order not text order", "moved from the garage to the kitchen", "kitchen", true},
		{"study matched from vocabulary", "place it in the study room", "study", true},
		{"fallback strips trailing room", "place it in the game room", "game", true},
		{"fallback strips trailing area", "installed for the garden area pump", "garden", true},
		{"fallback truncates to three words", "put it at my upstairs guest wing corner", "my upstairs guest", true},
		{"whole word only", "mounted in the hallway", "hallway", true},
		{"fallback reduces to empty", "mounted in the room", "", false},
		{"no location", "a 3 star fridge", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parse.Details(tt.text)
			if tt.ok {
				if d.Location == nil {
					t.Fatalf("Location absent, want %q", tt.want)
				}
				if *d.Location != tt.want {
					t.Errorf("Location = %q, want %q", *d.Location, tt.want)
				}
			} else if d.Location != nil {
				t.Errorf("Location = %q, want absent", *d.Location)
			}
		})
	}
}

func TestDetails_DeviceName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"brand before keyword", "LG fridge two star", "lg fridge two", true},
		{"keyword at start keeps no brand", "fridge from last year", "fridge from last", true},
		{"two-word keyword", "the Samsung washing machine", "the samsung washing machine", true},
		{"leftmost window wins", "swap the oven for the microwave", "swap the oven", true},
		{"keyword in three-word window", "a split air conditioner unit", "a split air conditioner", true},
		{"no keyword", "something in the kitchen", "", false},
		{"single word is not enough", "fridge", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := parse.Details(tt.text)
			if tt.ok {
				if d.Name == nil {
					t.Fatalf("Name absent, want %q", tt.want)
				}
				if *d.Name != tt.want {
					t.Errorf("Name = %q, want %q", *d.Name, tt.want)
				}
			} else if d.Name != nil {
				t.Errorf("Name = %q, want absent", *d.Name)
			}
		})
	}
}

func TestDetails_EmptyInput(t *testing.T) {
	d := parse.Details("")
	if !d.Empty() {
		t.Errorf("Details(\"\") = %+v, want all fields absent", d)
	}
}

func TestDetails_Idempotent(t *testing.T) {
	text := "LG fridge two star in the kitchen, type: electric, power: 800"
	first := parse.Details(text)
	second := parse.Details(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Details not deterministic: %+v vs %+v", first, second)
	}
}

func TestDetails_FullRecord(t *testing.T) {
	d := parse.Details("LG fridge two star in the kitchen, type: electric, power: 800")

	if d.Name == nil || *d.Name != "lg fridge two" {
		t.Errorf("Name = %v, want %q", d.Name, "lg fridge two")
	}
	if d.Type == nil || *d.Type != "electric" {
		t.Errorf("Type = %v, want %q", d.Type, "electric")
	}
	if d.PowerWatts == nil || *d.PowerWatts != 800 {
		t.Errorf("PowerWatts = %v, want 800", d.PowerWatts)
	}
	if d.Rating == nil || *d.Rating != 2 {
		t.Errorf("Rating = %v, want 2", d.Rating)
	}
	if d.Location == nil || *d.Location != "kitchen" {
		t.Errorf("Location = %v, want %q", d.Location, "kitchen")
	}
}

func TestDetails_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"\n\t\n",
		"!!!???...",
		"星 ★ étoile",
		strings.Repeat("fridge kitchen 3 star 1.5kw ", 500),
		strings.Repeat("9", 400) + " watts",
		"power: " + strings.Repeat("9", 400),
		"in the " + strings.Repeat("a ", 50),
		"type is",
		"rating is",
		"kw w kilowatt star stars",
	}

	for _, text := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Details(%q) panicked: %v", text, r)
				}
			}()
			parse.Details(text)
		}()
	}
}
