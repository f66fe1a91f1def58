// Package engagement keeps the like/bookmark ledger: one row per (post,
// user, kind), toggled on and off.
package engagement

import (
	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/storage"
)

// ToggleResult tells the caller which way the toggle went.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// Service is the engagement ledger.
type Service struct {
	Storage storage.Storage
}

// NewService creates an engagement service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Toggle flips the user's like or bookmark on a post. A concurrent
// double-click resolves through the uniqueness constraint: the duplicate
// insert is reported as added rather than an error.
func (s *Service) Toggle(principal models.Principal, postID string, kind models.EngagementKind) (ToggleResult, error) {
	if !kind.Valid() {
		return "", apperr.New(apperr.KindValidation, "unknown engagement kind")
	}
	if _, err := s.Storage.GetPostByID(postID); err != nil {
		return "", err
	}

	added, err := s.Storage.ToggleEngagement(kind, postID, principal.UserID)
	if err != nil {
		return "", err
	}
	if added {
		return ToggleAdded, nil
	}
	return ToggleRemoved, nil
}
