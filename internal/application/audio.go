package application

import "context"

// AudioSource delivers recorded appliance descriptions, one clip per call.
type AudioSource interface {
	Start(ctx context.Context) error
	Stop() error
	NextClip(ctx context.Context) ([]byte, error)
	Name() string
}
