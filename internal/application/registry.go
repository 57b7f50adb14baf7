package application

import "greenmeter/internal/domain"

// DeviceRegistry holds the devices registered from parsed descriptions.
type DeviceRegistry interface {
	Add(details domain.DeviceDetails) domain.Device
	Devices() []domain.Device
	FindByName(name string) (domain.Device, bool)
	Summary() string
}
