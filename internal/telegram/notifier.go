// Package telegram pushes moderation events to an operator chat via the
// Telegram Bot API. The notifier is a modfeed client like any dashboard
// session; if no bot token is configured the service simply runs without it.
package telegram

import (
	"fmt"
	"log"
	"sync"

	"devblogg/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier forwards moderation events to a Telegram chat.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
	Send   chan models.ModerationEvent

	closeOnce sync.Once
}

// NewNotifier creates a notifier for the given bot token and target chat.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &Notifier{
		BotAPI: bot,
		ChatID: chatID,
		Send:   make(chan models.ModerationEvent, 64),
	}, nil
}

func (n *Notifier) GetID() string                                 { return "telegram-notifier" }
func (n *Notifier) GetSendChannel() chan<- models.ModerationEvent { return n.Send }

// Run drains the send channel and forwards each event to the operator chat.
func (n *Notifier) Run() {
	go func() {
		for event := range n.Send {
			msg := tgbotapi.NewMessage(n.ChatID, formatEvent(event))
			if _, err := n.BotAPI.Send(msg); err != nil {
				log.Printf("ERROR: failed to send Telegram notification: %v", err)
			}
		}
	}()
}

// Close stops the delivery loop.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() { close(n.Send) })
}

func formatEvent(event models.ModerationEvent) string {
	switch event.Type {
	case models.EventPostEscalated:
		return fmt.Sprintf("🚨 Post %s escalated to review after %d reports", event.PostID, event.ReportCount)
	case models.EventPostPending:
		return fmt.Sprintf("📝 Post %s submitted for review", event.PostID)
	case models.EventPostClaimed:
		return fmt.Sprintf("👀 Post %s claimed by moderator %s", event.PostID, event.ActorID)
	case models.EventPostApproved:
		return fmt.Sprintf("✅ Post %s approved by %s", event.PostID, event.ActorID)
	case models.EventPostRejected:
		return fmt.Sprintf("❌ Post %s rejected by %s", event.PostID, event.ActorID)
	case models.EventUserBanned:
		return fmt.Sprintf("🔨 User %s banned by %s", event.UserID, event.ActorID)
	case models.EventUserUnbanned:
		return fmt.Sprintf("🕊 User %s unbanned by %s", event.UserID, event.ActorID)
	default:
		return fmt.Sprintf("moderation event: %s", event.Type)
	}
}
