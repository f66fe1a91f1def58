package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostStatus is the publication pipeline state of a post.
type PostStatus int

const (
	PostStatusDraft PostStatus = iota
	PostStatusPending
	PostStatusInReview
	PostStatusPublished
	PostStatusRejected
)

// String returns the wire name of the status.
func (s PostStatus) String() string {
	switch s {
	case PostStatusDraft:
		return "DRAFT"
	case PostStatusPending:
		return "PENDING"
	case PostStatusInReview:
		return "IN_REVIEW"
	case PostStatusPublished:
		return "PUBLISHED"
	case PostStatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParsePostStatus maps a wire name back to a status. The bool is false for
// unknown names.
func ParsePostStatus(name string) (PostStatus, bool) {
	switch name {
	case "DRAFT":
		return PostStatusDraft, true
	case "PENDING":
		return PostStatusPending, true
	case "IN_REVIEW":
		return PostStatusInReview, true
	case "PUBLISHED":
		return PostStatusPublished, true
	case "REJECTED":
		return PostStatusRejected, true
	default:
		return 0, false
	}
}

// Post is an article in the publication pipeline. Posts are owned by exactly
// one author and soft-deleted rather than removed, so moderation history stays
// reconstructible. The slug is globally unique, including against deleted rows.
//
// Invariants kept by the moderation engine:
//   - AssignedModeratorID is non-nil exactly when ClaimedAt is non-nil.
//   - PublishedAt is non-nil exactly when Status is PUBLISHED.
type Post struct {
	ID       string         `gorm:"primaryKey" json:"id"`
	AuthorID string         `gorm:"not null;index" json:"author_id"`
	Title    string         `gorm:"size:200;not null" json:"title"`
	Slug     string         `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Summary  string         `gorm:"size:500" json:"summary,omitempty"`
	Content  string         `gorm:"type:text;not null" json:"content"`
	Tags     pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`

	Status      PostStatus `gorm:"not null;default:0;index:idx_posts_status_published,priority:1" json:"status"`
	PublishedAt *time.Time `gorm:"index:idx_posts_status_published,priority:2" json:"published_at,omitempty"`

	AssignedModeratorID *string    `gorm:"index" json:"assigned_moderator_id,omitempty"`
	ClaimedAt           *time.Time `json:"claimed_at,omitempty"`

	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the ID is not set yet.
func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// Claimed reports whether a moderator currently holds this post.
func (p *Post) Claimed() bool {
	return p.AssignedModeratorID != nil
}

// ClaimedBy reports whether the given moderator holds this post.
func (p *Post) ClaimedBy(moderatorID string) bool {
	return p.AssignedModeratorID != nil && *p.AssignedModeratorID == moderatorID
}
