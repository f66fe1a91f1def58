package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the platform-wide permission level carried by every user.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// CanModerate reports whether the role is allowed to perform moderation actions.
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// User represents a registered account. Email and Username are both unique;
// identity issuance (social login, tokens) happens outside this service, which
// only stores the account row and the ban state.
type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Username  string     `gorm:"uniqueIndex;size:32;not null" json:"username"`
	Bio       string     `gorm:"size:500" json:"bio,omitempty"`
	AvatarURL string     `gorm:"size:1024" json:"avatar_url,omitempty"`
	Role      Role       `gorm:"size:20;not null;default:USER;index" json:"role"`
	IsBanned  bool       `gorm:"not null;default:false;index" json:"is_banned"`
	BannedAt  *time.Time `json:"banned_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is not set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
