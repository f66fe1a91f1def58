// Package storagetest provides a testify-based mock of storage.Storage for
// service tests, so every consumer package does not have to redeclare the
// full interface.
package storagetest

import (
	"time"

	"devblogg/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

// User operations

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SetUserBanned(userID string, banned bool, bannedAt *time.Time, entry *models.ModerationLog) error {
	args := m.Called(userID, banned, bannedAt, entry)
	return args.Error(0)
}

func (m *MockStorage) IsUserBanned(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// Post operations

func (m *MockStorage) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockStorage) GetPostByID(id string) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockStorage) GetPostBySlug(slug string) (*models.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockStorage) UpdatePostStatus(postID string, from, to models.PostStatus) (bool, error) {
	args := m.Called(postID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ClaimPost(postID, moderatorID string, claimedAt time.Time, entry *models.ModerationLog) (bool, error) {
	args := m.Called(postID, moderatorID, claimedAt, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ResolvePost(postID string, to models.PostStatus, publishedAt *time.Time, entry *models.ModerationLog) (bool, error) {
	args := m.Called(postID, to, publishedAt, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) EscalatePost(postID string) (bool, error) {
	args := m.Called(postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) SoftDeletePost(postID string) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockStorage) PostsByStatus(status models.PostStatus) ([]models.Post, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockStorage) PostsClaimedBy(moderatorID string) ([]models.Post, error) {
	args := m.Called(moderatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

// Comment operations

func (m *MockStorage) CreateComment(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockStorage) GetCommentByID(id string) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockStorage) SoftDeleteComment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) CommentsForPost(postID string) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

// Engagement operations

func (m *MockStorage) ToggleEngagement(kind models.EngagementKind, postID, userID string) (bool, error) {
	args := m.Called(kind, postID, userID)
	return args.Bool(0), args.Error(1)
}

// Report operations

func (m *MockStorage) CreateReport(report *models.PostReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStorage) CountReports(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

// Audit operations

func (m *MockStorage) LogsFor(targetPostID, targetUserID *string) ([]models.ModerationLog, error) {
	args := m.Called(targetPostID, targetUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ModerationLog), args.Error(1)
}

// Event operations

func (m *MockStorage) PublishEvent(event models.ModerationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
