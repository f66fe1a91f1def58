package models

import "time"

// Moderation event types fanned out to dashboards and notifiers.
const (
	EventPostPending   = "post.pending"
	EventPostEscalated = "post.escalated"
	EventPostClaimed   = "post.claimed"
	EventPostApproved  = "post.approved"
	EventPostRejected  = "post.rejected"
	EventUserBanned    = "user.banned"
	EventUserUnbanned  = "user.unbanned"
)

// ModerationEvent is the payload published after a successful state change.
// Delivery is best-effort and happens after the owning transaction commits;
// the ModerationLog table, not this stream, is the source of truth.
type ModerationEvent struct {
	Type        string    `json:"type"`
	PostID      string    `json:"post_id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	ActorID     string    `json:"actor_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	ReportCount int64     `json:"report_count,omitempty"`
	At          time.Time `json:"at"`
}
