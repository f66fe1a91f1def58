package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportReason classifies why a post was reported.
type ReportReason int

const (
	ReasonSpam ReportReason = iota
	ReasonInappropriateContent
	ReasonHarassment
	ReasonCopyright
	ReasonMisinformation
	ReasonOther
)

// String returns the wire name of the reason code.
func (r ReportReason) String() string {
	switch r {
	case ReasonSpam:
		return "SPAM"
	case ReasonInappropriateContent:
		return "INAPPROPRIATE_CONTENT"
	case ReasonHarassment:
		return "HARASSMENT"
	case ReasonCopyright:
		return "COPYRIGHT"
	case ReasonMisinformation:
		return "MISINFORMATION"
	case ReasonOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the code is a known reason.
func (r ReportReason) Valid() bool {
	return r >= ReasonSpam && r <= ReasonOther
}

// PostReport is a community report against a post. One report per
// (post, user); immutable once created.
type PostReport struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	PostID     string       `gorm:"not null;index;uniqueIndex:uk_post_reports_post_user" json:"post_id"`
	UserID     string       `gorm:"not null;index;uniqueIndex:uk_post_reports_post_user" json:"user_id"`
	ReasonCode ReportReason `gorm:"not null" json:"reason_code"`
	Reason     string       `gorm:"size:500" json:"reason"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (PostReport) TableName() string { return "post_reports" }

// BeforeCreate assigns a UUID when the ID is not set yet.
func (r *PostReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
