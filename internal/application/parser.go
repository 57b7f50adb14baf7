package application

import "greenmeter/internal/domain"

// DetailsParser turns a transcript into a structured device record. Parsing
// is best-effort: fields that cannot be recovered stay absent, and parsing
// never fails outright.
type DetailsParser interface {
	Parse(text string) domain.DeviceDetails
}
