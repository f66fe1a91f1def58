package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to exactly one post and one author. ParentID builds an
// unbounded reply tree inside the same post. Comments soft-delete
// independently of their post.
type Comment struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	PostID   string  `gorm:"not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	AuthorID string  `gorm:"not null;index" json:"author_id"`
	ParentID *string `gorm:"index" json:"parent_id,omitempty"`
	Content  string  `gorm:"type:text;not null" json:"content"`

	IsDeleted bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"index:idx_comments_post_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the ID is not set yet.
func (c *Comment) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
