// Package inventory keeps the in-memory registry of devices added by voice.
package inventory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"greenmeter/internal/domain"
)

type Store struct {
	mu      sync.RWMutex
	devices []domain.Device
	byName  map[string]int
}

func NewStore() *Store {
	return &Store{
		byName: make(map[string]int),
	}
}

// Add registers a parsed record and returns the stored device. Records with
// no extracted name are still registered; they just never land in the name
// index.
func (s *Store) Add(details domain.DeviceDetails) domain.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	device := domain.Device{
		ID:      uuid.NewString(),
		Details: details,
		AddedAt: time.Now().UTC(),
	}

	s.devices = append(s.devices, device)
	if details.Name != nil {
		s.byName[strings.ToLower(*details.Name)] = len(s.devices) - 1
	}

	return device
}

func (s *Store) Devices() []domain.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Device, len(s.devices))
	copy(result, s.devices)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

// FindByName looks up a device by extracted name, exact match first, then
// case-insensitive substring.
func (s *Store) FindByName(name string) (domain.Device, bool) {
	key := strings.ToLower(strings.TrimSpace(name))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.byName[key]; ok {
		return s.devices[i], true
	}

	for _, d := range s.devices {
		if d.Details.Name != nil && strings.Contains(strings.ToLower(*d.Details.Name), key) {
			return d, true
		}
	}

	return domain.Device{}, false
}

func (s *Store) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder

	fmt.Fprintf(&sb, "## Registered devices (%d):\n", len(s.devices))
	for _, d := range s.devices {
		sb.WriteString("- " + d.DisplayName())
		if d.Details.Location != nil {
			fmt.Fprintf(&sb, " (%s)", *d.Details.Location)
		}
		if d.Details.PowerWatts != nil {
			fmt.Fprintf(&sb, ", %dW", *d.Details.PowerWatts)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
