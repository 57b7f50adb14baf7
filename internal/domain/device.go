package domain

import "time"

// DeviceDetails is the structured record extracted from a spoken or typed
// appliance description. Fields the extractors could not recover are nil and
// omitted from JSON output.
type DeviceDetails struct {
	Name       *string `json:"name,omitempty"`
	Type       *string `json:"type,omitempty"`
	PowerWatts *int    `json:"powerwatts,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	Location   *string `json:"location,omitempty"`
}

// Empty reports whether no field was extracted.
func (d DeviceDetails) Empty() bool {
	return d.Name == nil && d.Type == nil && d.PowerWatts == nil &&
		d.Rating == nil && d.Location == nil
}

// Device is an inventory entry for an appliance registered by voice.
type Device struct {
	ID      string        `json:"id"`
	Details DeviceDetails `json:"details"`
	AddedAt time.Time     `json:"added_at"`
}

func (d Device) DisplayName() string {
	if d.Details.Name != nil && *d.Details.Name != "" {
		return *d.Details.Name
	}
	return "unnamed device"
}

// TextClipPrefix marks pre-transcribed text injected through a capture source
// (vs raw audio).
const TextClipPrefix = "__TEXT__:"
