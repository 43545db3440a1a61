package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded announcements.
// Used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards announcements with a
// log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendItemIntaken logs and discards the announcement.
func (n *NoOpNotifier) SendItemIntaken(_ context.Context, item ItemPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"title", item.Title,
		"vendor", item.Vendor,
	)
	return nil
}
