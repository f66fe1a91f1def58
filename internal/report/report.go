// Package report handles community report intake. Filing a report persists
// it and synchronously runs the moderation engine's threshold check, so an
// escalation happens inside the reporting request, not on a background
// worker.
package report

import (
	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/moderation"
	"devblogg/backend/internal/storage"
)

// Service is the report intake.
type Service struct {
	Storage storage.Storage
	Engine  *moderation.Service
}

// NewService creates a report intake wired to the moderation engine.
func NewService(s storage.Storage, engine *moderation.Service) *Service {
	return &Service{Storage: s, Engine: engine}
}

// FileReport records a report against a post, one per (post, user), and then
// triggers the threshold check. Reports are immutable once created.
func (s *Service) FileReport(principal models.Principal, postID string, reasonCode models.ReportReason, reasonText string) (*models.PostReport, error) {
	if principal.IsBanned {
		return nil, apperr.New(apperr.KindForbidden, "banned users cannot file reports")
	}
	if !reasonCode.Valid() {
		return nil, apperr.New(apperr.KindValidation, "unknown report reason code")
	}

	post, err := s.Storage.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID == principal.UserID {
		return nil, apperr.New(apperr.KindValidation, "cannot report your own post")
	}

	rep := &models.PostReport{
		PostID:     postID,
		UserID:     principal.UserID,
		ReasonCode: reasonCode,
		Reason:     reasonText,
	}
	if err := s.Storage.CreateReport(rep); err != nil {
		return nil, err
	}

	if _, err := s.Engine.CheckReportThreshold(postID); err != nil {
		// The report row is already committed; the caller still needs to
		// know the escalation pass failed.
		return nil, err
	}
	return rep, nil
}
