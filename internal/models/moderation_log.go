package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationAction identifies the actor-driven operation a log row records.
type ModerationAction int

const (
	ActionClaimPost ModerationAction = iota
	ActionApprovePost
	ActionRejectPost
	ActionBanUser
	ActionUnbanUser
)

// String returns the wire name of the action.
func (a ModerationAction) String() string {
	switch a {
	case ActionClaimPost:
		return "CLAIM_POST"
	case ActionApprovePost:
		return "APPROVE_POST"
	case ActionRejectPost:
		return "REJECT_POST"
	case ActionBanUser:
		return "BAN_USER"
	case ActionUnbanUser:
		return "UNBAN_USER"
	default:
		return "UNKNOWN"
	}
}

// ModerationLog is the append-only audit record of moderation decisions.
// Exactly one of TargetPostID/TargetUserID is meaningfully set per action:
// claim/approve/reject target a post, ban/unban target a user. Targets are
// nullable references rather than owned rows, so hard-deleting a target keeps
// the audit narrative with the target cleared.
type ModerationLog struct {
	ID           string           `gorm:"primaryKey" json:"id"`
	Action       ModerationAction `gorm:"not null" json:"action"`
	ActorID      string           `gorm:"not null;index" json:"actor_id"`
	TargetPostID *string          `gorm:"index" json:"target_post_id,omitempty"`
	TargetUserID *string          `gorm:"index" json:"target_user_id,omitempty"`
	Reason       *string          `gorm:"type:text" json:"reason,omitempty"`
	Metadata     Metadata         `json:"metadata,omitempty"`
	CreatedAt    time.Time        `gorm:"index" json:"created_at"`
}

func (ModerationLog) TableName() string { return "moderation_logs" }

// BeforeCreate assigns a UUID when the ID is not set yet.
func (l *ModerationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}
