package storage

import (
	"errors"

	"devblogg/backend/internal/models"

	"gorm.io/gorm"
)

// ToggleEngagement flips a like or bookmark for (post, user) inside one
// transaction: delete the row if it exists, otherwise insert it. A duplicate
// insert lost to a concurrent double-click is interpreted as already-added,
// not an error, so the uniqueness constraint is what settles the race.
func (s *Service) ToggleEngagement(kind models.EngagementKind, postID, userID string) (bool, error) {
	added := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var res *gorm.DB
		if kind == models.EngagementBookmark {
			res = tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostBookmark{})
		} else {
			res = tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil // removed
		}

		added = true
		if kind == models.EngagementBookmark {
			return tx.Create(&models.PostBookmark{PostID: postID, UserID: userID}).Error
		}
		return tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	if err != nil {
		return false, translate(err, "", "engagement toggle")
	}
	return added, nil
}
