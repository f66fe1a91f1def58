package storage

import (
	"time"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
)

// CreateComment inserts a comment row.
func (s *Service) CreateComment(comment *models.Comment) error {
	return translate(s.DB.Create(comment).Error, "", "comment")
}

// GetCommentByID loads a comment; soft-deleted rows are reported as absent.
func (s *Service) GetCommentByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.DB.First(&comment, "id = ? AND is_deleted = false", id).Error; err != nil {
		return nil, translate(err, "", "comment")
	}
	return &comment, nil
}

// SoftDeleteComment marks a comment logically absent, independent of its post.
func (s *Service) SoftDeleteComment(id string) error {
	now := time.Now().UTC()
	res := s.DB.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = false", id).
		Updates(map[string]any{"is_deleted": true, "deleted_at": now})
	if res.Error != nil {
		return translate(res.Error, "", "comment")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "comment not found")
	}
	return nil
}

// CommentsForPost lists a post's live comments in thread order.
func (s *Service) CommentsForPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.
		Where("post_id = ? AND is_deleted = false", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err, "", "comments")
	}
	return comments, nil
}
