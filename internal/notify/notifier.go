// Package notify defines the notification interface and
// implementations for "new item intaken" announcements.
package notify

import (
	"context"
)

// ItemPayload contains the data needed to announce a freshly intaken
// item to the staff channel.
type ItemPayload struct {
	Title         string
	Vendor        string
	Location      string
	Price         string
	Condition     string
	IsConsignment bool
	PayoutPct     float64
}

// Notifier defines the interface for posting intake announcements.
// Delivery failures are logged by callers and never fail the intake.
type Notifier interface {
	SendItemIntaken(ctx context.Context, item ItemPayload) error
}
