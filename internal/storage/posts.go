package storage

import (
	"time"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"

	"gorm.io/gorm"
)

// reviewable are the statuses a claim may start from.
var reviewable = []models.PostStatus{models.PostStatusPending, models.PostStatusInReview}

// escalatable are the statuses a report threshold may pull back into review.
var escalatable = []models.PostStatus{models.PostStatusPending, models.PostStatusPublished}

// CreatePost inserts a post row. A slug collision surfaces as DuplicateSlug so
// the content service can retry with the next suffix.
func (s *Service) CreatePost(post *models.Post) error {
	return translate(s.DB.Create(post).Error, apperr.KindDuplicateSlug, "slug")
}

// GetPostByID loads a post; soft-deleted rows are reported as absent.
func (s *Service) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := s.DB.First(&post, "id = ? AND is_deleted = false", id).Error; err != nil {
		return nil, translate(err, "", "post")
	}
	return &post, nil
}

// GetPostBySlug loads a post by slug; soft-deleted rows are reported as absent.
func (s *Service) GetPostBySlug(slug string) (*models.Post, error) {
	var post models.Post
	if err := s.DB.First(&post, "slug = ? AND is_deleted = false", slug).Error; err != nil {
		return nil, translate(err, "", "post")
	}
	return &post, nil
}

// UpdatePostStatus moves a post from one status to another with an atomic
// conditional update. Returns false when the post was not in the expected
// status, which the caller maps to InvalidTransition.
func (s *Service) UpdatePostStatus(postID string, from, to models.PostStatus) (bool, error) {
	res := s.DB.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false AND status = ?", postID, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error, "", "post")
	}
	return res.RowsAffected > 0, nil
}

// ClaimPost assigns the moderator with an atomic conditional update guarded
// on "still unclaimed", and appends the CLAIM_POST audit entry in the same
// transaction. Returns false when a concurrent claim won the race or the post
// left the reviewable statuses.
func (s *Service) ClaimPost(postID, moderatorID string, claimedAt time.Time, entry *models.ModerationLog) (bool, error) {
	claimed := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ? AND is_deleted = false AND assigned_moderator_id IS NULL AND status IN ?", postID, reviewable).
			Updates(map[string]any{
				"assigned_moderator_id": moderatorID,
				"claimed_at":            claimedAt,
				"status":                models.PostStatusInReview,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true
		return tx.Create(entry).Error
	})
	if err != nil {
		return false, translate(err, "", "post claim")
	}
	return claimed, nil
}

// ResolvePost concludes a review: IN_REVIEW to PUBLISHED (publishedAt set) or
// REJECTED, plus the audit entry, atomically. Returns false when the post was
// no longer in review.
func (s *Service) ResolvePost(postID string, to models.PostStatus, publishedAt *time.Time, entry *models.ModerationLog) (bool, error) {
	resolved := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ? AND is_deleted = false AND status = ?", postID, models.PostStatusInReview).
			Updates(map[string]any{"status": to, "published_at": publishedAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		resolved = true
		return tx.Create(entry).Error
	})
	if err != nil {
		return false, translate(err, "", "post resolution")
	}
	return resolved, nil
}

// EscalatePost pulls a PENDING or PUBLISHED post back into review. The claim
// and publication timestamp are cleared so the post re-enters the unclaimed
// queue. System-triggered, so no audit entry is written here.
func (s *Service) EscalatePost(postID string) (bool, error) {
	res := s.DB.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false AND status IN ?", postID, escalatable).
		Updates(map[string]any{
			"status":                models.PostStatusInReview,
			"published_at":          nil,
			"assigned_moderator_id": nil,
			"claimed_at":            nil,
		})
	if res.Error != nil {
		return false, translate(res.Error, "", "post escalation")
	}
	return res.RowsAffected > 0, nil
}

// SoftDeletePost marks the post logically absent. The slug stays reserved.
func (s *Service) SoftDeletePost(postID string) error {
	now := time.Now().UTC()
	res := s.DB.Model(&models.Post{}).
		Where("id = ? AND is_deleted = false", postID).
		Updates(map[string]any{"is_deleted": true, "deleted_at": now})
	if res.Error != nil {
		return translate(res.Error, "", "post")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "post not found")
	}
	return nil
}

// PostsByStatus lists non-deleted posts in a status, newest first.
func (s *Service) PostsByStatus(status models.PostStatus) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Where("status = ? AND is_deleted = false", status).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translate(err, "", "posts")
	}
	return posts, nil
}

// PostsClaimedBy lists the moderator's current review workload.
func (s *Service) PostsClaimedBy(moderatorID string) ([]models.Post, error) {
	var posts []models.Post
	err := s.DB.
		Where("assigned_moderator_id = ? AND status = ? AND is_deleted = false", moderatorID, models.PostStatusInReview).
		Order("claimed_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, translate(err, "", "claimed posts")
	}
	return posts, nil
}
