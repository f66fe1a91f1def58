package modfeed

import "devblogg/backend/internal/models"

// Client is the interface for any moderation event sink (a websocket
// dashboard session, the Telegram notifier). It abstracts the delivery
// mechanism so the hub can manage different sink types uniformly.
type Client interface {
	// GetID returns the unique identifier of this sink.
	GetID() string

	// GetSendChannel returns the channel the hub pushes events into. It is a
	// send-only channel from the hub's point of view.
	GetSendChannel() chan<- models.ModerationEvent

	// Run starts the client's delivery loop(s).
	Run()
	// Close shuts the client down and releases its send channel.
	Close()
}
