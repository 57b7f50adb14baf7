// Package parse extracts structured appliance details from short free-form
// descriptions ("the LG fridge in the kitchen, 3 star, runs at 1.5kW").
//
// Five independent extractors each recover one field through pattern and
// keyword matching: device name, type, power rating, star rating, location.
// There is no language model and no semantic parsing; each extractor tries a
// fixed sequence of patterns and the first match wins. A field whose patterns
// all miss is simply absent from the result — malformed input never produces
// an error.
package parse

import "greenmeter/internal/domain"

// Details runs every field extractor over text and assembles the record.
// The extractors are independent: none reads another's output, and all state
// is local to the call, so Details is safe for concurrent use. Identical
// input always yields an identical record.
func Details(text string) domain.DeviceDetails {
	var d domain.DeviceDetails
	if name, ok := extractDeviceName(text); ok {
		d.Name = &name
	}
	if deviceType, ok := extractType(text); ok {
		d.Type = &deviceType
	}
	if watts, ok := extractPowerWatts(text); ok {
		d.PowerWatts = &watts
	}
	if rating, ok := extractRating(text); ok {
		d.Rating = &rating
	}
	if location, ok := extractLocation(text); ok {
		d.Location = &location
	}
	return d
}

// Parser adapts Details to the application.DetailsParser interface.
type Parser struct{}

func (Parser) Parse(text string) domain.DeviceDetails {
	return Details(text)
}
