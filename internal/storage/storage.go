// Package storage is the persistence boundary of the service: a Storage
// interface consumed by every domain service, implemented by a GORM+Redis
// Service. All multi-step mutations run inside a single transaction here, so
// callers above never see a half-applied state change.
package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Storage interface {
	// Users
	GetUserByID(id string) (*models.User, error)
	SetUserBanned(userID string, banned bool, bannedAt *time.Time, entry *models.ModerationLog) error
	IsUserBanned(userID string) (bool, error)

	// Posts
	CreatePost(post *models.Post) error
	GetPostByID(id string) (*models.Post, error)
	GetPostBySlug(slug string) (*models.Post, error)
	UpdatePostStatus(postID string, from, to models.PostStatus) (bool, error)
	ClaimPost(postID, moderatorID string, claimedAt time.Time, entry *models.ModerationLog) (bool, error)
	ResolvePost(postID string, to models.PostStatus, publishedAt *time.Time, entry *models.ModerationLog) (bool, error)
	EscalatePost(postID string) (bool, error)
	SoftDeletePost(postID string) error
	PostsByStatus(status models.PostStatus) ([]models.Post, error)
	PostsClaimedBy(moderatorID string) ([]models.Post, error)

	// Comments
	CreateComment(comment *models.Comment) error
	GetCommentByID(id string) (*models.Comment, error)
	SoftDeleteComment(id string) error
	CommentsForPost(postID string) ([]models.Comment, error)

	// Engagement
	ToggleEngagement(kind models.EngagementKind, postID, userID string) (added bool, err error)

	// Reports
	CreateReport(report *models.PostReport) error
	CountReports(postID string) (int64, error)

	// Audit
	LogsFor(targetPostID, targetUserID *string) ([]models.ModerationLog, error)

	// Events
	PublishEvent(event models.ModerationEvent) error
}

// Service implements Storage on PostgreSQL (via GORM) plus Redis for the
// ban-status cache and the moderation event channel. Redis may be nil (the
// admin CLI runs without it); everything Redis-backed degrades gracefully.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// translate maps driver-level failures into the typed taxonomy. Anything
// unanticipated is logged in full here and leaves as a generic internal error.
func translate(err error, onDuplicate apperr.Kind, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.New(apperr.KindNotFound, what+" not found")
	case errors.Is(err, gorm.ErrDuplicatedKey) && onDuplicate != "":
		return apperr.New(onDuplicate, what+" already exists")
	default:
		log.Printf("ERROR: storage: %s: %v", what, err)
		return apperr.Internal()
	}
}

// GetUserByID loads a user row.
func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "", "user")
	}
	return &user, nil
}

// SetUserBanned flips the ban flag and appends the audit entry in one
// transaction, then refreshes the Redis ban key best-effort.
func (s *Service) SetUserBanned(userID string, banned bool, bannedAt *time.Time, entry *models.ModerationLog) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{"is_banned": banned, "banned_at": bannedAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return translate(err, "", "user")
	}

	if s.Redis != nil {
		key := config.BanKeyPrefix + userID
		var cacheErr error
		if banned {
			cacheErr = s.Redis.Set(s.Ctx, key, "1", 0).Err()
		} else {
			cacheErr = s.Redis.Del(s.Ctx, key).Err()
		}
		if cacheErr != nil {
			log.Printf("WARNING: failed to refresh ban cache for %s: %v", userID, cacheErr)
		}
	}
	return nil
}

// IsUserBanned checks the Redis ban key first and falls back to the user row.
func (s *Service) IsUserBanned(userID string) (bool, error) {
	if s.Redis != nil {
		status, err := s.Redis.Get(s.Ctx, config.BanKeyPrefix+userID).Result()
		if err == nil {
			return status != "", nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Printf("WARNING: ban cache read failed for %s: %v", userID, err)
		}
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	return user.IsBanned, nil
}
