package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngagementKind selects which one-per-user action a toggle targets.
type EngagementKind string

const (
	EngagementLike     EngagementKind = "like"
	EngagementBookmark EngagementKind = "bookmark"
)

// Valid reports whether the kind is one of the known engagement actions.
func (k EngagementKind) Valid() bool {
	return k == EngagementLike || k == EngagementBookmark
}

// PostLike records that a user liked a post. Existence is the whole state:
// the (post, user) pair is unique and the row is hard-deleted on toggle-off.
type PostLike struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;index;uniqueIndex:uk_post_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"not null;index;uniqueIndex:uk_post_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLike) TableName() string { return "post_likes" }

// BeforeCreate assigns a UUID when the ID is not set yet.
func (l *PostLike) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return
}

// PostBookmark records that a user bookmarked a post. Same shape and
// semantics as PostLike.
type PostBookmark struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;index;uniqueIndex:uk_post_bookmarks_post_user" json:"post_id"`
	UserID    string    `gorm:"not null;index;uniqueIndex:uk_post_bookmarks_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostBookmark) TableName() string { return "post_bookmarks" }

// BeforeCreate assigns a UUID when the ID is not set yet.
func (b *PostBookmark) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
