package storage

import (
	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
)

// CreateReport inserts a report row. A second report from the same user for
// the same post violates the (post, user) uniqueness and surfaces as
// DuplicateReport.
func (s *Service) CreateReport(report *models.PostReport) error {
	return translate(s.DB.Create(report).Error, apperr.KindDuplicateReport, "report")
}

// CountReports returns the number of reports filed against a post.
func (s *Service) CountReports(postID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.PostReport{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, "", "report count")
	}
	return count, nil
}
