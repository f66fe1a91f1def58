package storage

import (
	"encoding/json"
	"log"

	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"
)

// LogsFor queries the audit trail by target, newest first. Either filter may
// be nil; with both nil the full log is returned.
func (s *Service) LogsFor(targetPostID, targetUserID *string) ([]models.ModerationLog, error) {
	q := s.DB.Model(&models.ModerationLog{})
	if targetPostID != nil {
		q = q.Where("target_post_id = ?", *targetPostID)
	}
	if targetUserID != nil {
		q = q.Where("target_user_id = ?", *targetUserID)
	}

	var logs []models.ModerationLog
	if err := q.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, translate(err, "", "moderation logs")
	}
	return logs, nil
}

// PublishEvent fans a moderation event out over Redis Pub/Sub. Without Redis
// configured this is a no-op; the audit log stays the source of truth either
// way.
func (s *Service) PublishEvent(event models.ModerationEvent) error {
	if s.Redis == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, config.ModfeedChannel, string(payload)).Err(); err != nil {
		log.Printf("ERROR: failed to publish %s event: %v", event.Type, err)
		return err
	}
	return nil
}
