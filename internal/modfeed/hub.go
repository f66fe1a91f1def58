// Package modfeed is the live moderation feed: events published after each
// state change are picked up from Redis Pub/Sub and fanned out to connected
// sinks (moderator dashboard websockets, the Telegram notifier). The feed is
// delivery-only; it never mutates moderation state.
package modfeed

import (
	"encoding/json"
	"log"

	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/storage"
)

// Hub fans moderation events out to every registered client.
type Hub struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan models.ModerationEvent

	Storage *storage.Service
}

// NewHub creates a hub reading events from the given storage's Redis.
func NewHub(s *storage.Service) *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan models.ModerationEvent),
		Storage:      s,
	}
}

// startPubSubListener subscribes to the moderation event channel and feeds
// everything it sees into the hub's event channel.
func (h *Hub) startPubSubListener() {
	if h.Storage == nil || h.Storage.Redis == nil {
		log.Println("Warning: modfeed running without Redis, only local events will be delivered")
		return
	}

	go func() {
		pubsub := h.Storage.Redis.Subscribe(h.Storage.Ctx, config.ModfeedChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var event models.ModerationEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Error unmarshalling modfeed message: %v", err)
				continue
			}
			h.EventCh <- event
		}
	}()
}

// Run is the hub's dispatcher loop. Register/unregister and fan-out all pass
// through here, so the Clients map needs no locking.
func (h *Hub) Run() {
	h.startPubSubListener()

	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client.GetID()] = client

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client.GetID()]; ok {
				delete(h.Clients, client.GetID())
				client.Close()
			}

		case event := <-h.EventCh:
			for id, client := range h.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Slow client: drop it rather than stall the feed.
					delete(h.Clients, id)
					client.Close()
				}
			}
		}
	}
}
