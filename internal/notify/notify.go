// Package notify abstracts text-message delivery so a real SMS
// gateway can replace the bundled simulation without touching the
// workflows.
package notify

import (
	"context"
	"time"
)

// Notifier delivers a message to a phone number. A non-nil error
// means the attempt failed and is recorded as such.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}

// Simulated mimics an SMS gateway: every send succeeds after a fixed
// network-shaped delay.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Send(ctx context.Context, recipient, message string) error {
	delay := s.Delay
	if delay <= 0 {
		delay = time.Second
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
