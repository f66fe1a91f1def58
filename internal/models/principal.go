package models

// Principal is the authenticated caller as asserted by the identity layer.
// Role and IsBanned are trusted as given; this service never re-derives them.
type Principal struct {
	UserID   string `json:"user_id"`
	Role     Role   `json:"role"`
	IsBanned bool   `json:"is_banned"`
}

// IsAdmin reports whether the principal may bypass the assigned-moderator rule.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanModerate reports whether the principal holds a moderation role.
func (p Principal) CanModerate() bool {
	return p.Role.CanModerate()
}
