package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService opens a throwaway SQLite database with the real schema so
// the conditional updates and uniqueness translation run against an actual
// database. Redis is nil; everything Redis-backed falls through to the DB.
func newTestService(t *testing.T) *storage.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.PostBookmark{},
		&models.PostReport{},
		&models.ModerationLog{},
	))

	return storage.NewStorageService(db, nil)
}

func seedPost(t *testing.T, s *storage.Service, post *models.Post) *models.Post {
	t.Helper()
	if post.Title == "" {
		post.Title = "Seed"
	}
	if post.Content == "" {
		post.Content = "body"
	}
	if post.AuthorID == "" {
		post.AuthorID = "author-1"
	}
	require.NoError(t, s.DB.Create(post).Error)
	return post
}

func claimEntry(actorID string, postID *string) *models.ModerationLog {
	return &models.ModerationLog{Action: models.ActionClaimPost, ActorID: actorID, TargetPostID: postID, Metadata: models.Metadata{}}
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	s := newTestService(t)

	first := &models.Post{AuthorID: "author-1", Title: "Hello", Slug: "hello-world", Content: "body"}
	require.NoError(t, s.CreatePost(first))

	second := &models.Post{AuthorID: "author-2", Title: "Hello", Slug: "hello-world", Content: "body"}
	err := s.CreatePost(second)
	assert.True(t, apperr.Is(err, apperr.KindDuplicateSlug))
}

// A soft-deleted post keeps its slug reserved, so the same slug still
// collides afterwards.
func TestSoftDeletePost_SlugStaysReserved(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "hello-world"})

	require.NoError(t, s.SoftDeletePost(post.ID))

	_, err := s.GetPostByID(post.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = s.GetPostBySlug("hello-world")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	err = s.CreatePost(&models.Post{AuthorID: "author-2", Title: "Hello", Slug: "hello-world", Content: "body"})
	assert.True(t, apperr.Is(err, apperr.KindDuplicateSlug))
}

func TestToggleEngagement_Alternates(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "toggled"})

	for i, want := range []bool{true, false, true} {
		added, err := s.ToggleEngagement(models.EngagementLike, post.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, added, "toggle %d", i+1)
	}

	// The like leftover must not interfere with the bookmark ledger.
	added, err := s.ToggleEngagement(models.EngagementBookmark, post.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, added)

	var likes, bookmarks int64
	require.NoError(t, s.DB.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	require.NoError(t, s.DB.Model(&models.PostBookmark{}).Where("post_id = ?", post.ID).Count(&bookmarks).Error)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(1), bookmarks)
}

// The unclaimed guard in the claim UPDATE is what makes two concurrent claims
// resolve to a single winner; the loser's update matches zero rows.
func TestClaimPost_SingleWinner(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "claimed", Status: models.PostStatusPending})
	now := time.Now().UTC()

	claimed, err := s.ClaimPost(post.ID, "mod-a", now, claimEntry("mod-a", &post.ID))
	require.NoError(t, err)
	require.True(t, claimed)

	claimed, err = s.ClaimPost(post.ID, "mod-b", now, claimEntry("mod-b", &post.ID))
	require.NoError(t, err)
	assert.False(t, claimed)

	got, err := s.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusInReview, got.Status)
	require.NotNil(t, got.AssignedModeratorID)
	assert.Equal(t, "mod-a", *got.AssignedModeratorID)
	assert.NotNil(t, got.ClaimedAt)

	// The losing claim must not have written an audit row.
	logs, err := s.LogsFor(&post.ID, nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "mod-a", logs[0].ActorID)
}

func TestClaimPost_DraftNotClaimable(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "draft", Status: models.PostStatusDraft})

	claimed, err := s.ClaimPost(post.ID, "mod-a", time.Now().UTC(), claimEntry("mod-a", &post.ID))
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestResolvePost_OnlyFromInReview(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "resolved", Status: models.PostStatusPending})
	publishedAt := time.Now().UTC()
	entry := &models.ModerationLog{Action: models.ActionApprovePost, ActorID: "mod-a", TargetPostID: &post.ID, Metadata: models.Metadata{}}

	resolved, err := s.ResolvePost(post.ID, models.PostStatusPublished, &publishedAt, entry)
	require.NoError(t, err)
	assert.False(t, resolved, "a post that is not in review cannot be resolved")

	claimed, err := s.ClaimPost(post.ID, "mod-a", time.Now().UTC(), claimEntry("mod-a", &post.ID))
	require.NoError(t, err)
	require.True(t, claimed)

	resolved, err = s.ResolvePost(post.ID, models.PostStatusPublished, &publishedAt, entry)
	require.NoError(t, err)
	require.True(t, resolved)

	got, err := s.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, got.Status)
	assert.NotNil(t, got.PublishedAt)

	logs, err := s.LogsFor(&post.ID, nil)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestEscalatePost_ClearsClaimAndPublication(t *testing.T) {
	s := newTestService(t)
	moderator := "mod-a"
	publishedAt := time.Now().UTC()
	post := seedPost(t, s, &models.Post{
		Slug:                "escalated",
		Status:              models.PostStatusPublished,
		PublishedAt:         &publishedAt,
		AssignedModeratorID: &moderator,
		ClaimedAt:           &publishedAt,
	})

	escalated, err := s.EscalatePost(post.ID)
	require.NoError(t, err)
	require.True(t, escalated)

	got, err := s.GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusInReview, got.Status)
	assert.Nil(t, got.PublishedAt)
	assert.Nil(t, got.AssignedModeratorID)
	assert.Nil(t, got.ClaimedAt)

	// Already in review: nothing further to escalate.
	escalated, err = s.EscalatePost(post.ID)
	require.NoError(t, err)
	assert.False(t, escalated)
}

func TestCreateReport_DuplicatePair(t *testing.T) {
	s := newTestService(t)
	post := seedPost(t, s, &models.Post{Slug: "reported", Status: models.PostStatusPublished})

	require.NoError(t, s.CreateReport(&models.PostReport{PostID: post.ID, UserID: "user-1", ReasonCode: models.ReasonSpam}))
	require.NoError(t, s.CreateReport(&models.PostReport{PostID: post.ID, UserID: "user-2", ReasonCode: models.ReasonOther}))

	err := s.CreateReport(&models.PostReport{PostID: post.ID, UserID: "user-1", ReasonCode: models.ReasonHarassment})
	assert.True(t, apperr.Is(err, apperr.KindDuplicateReport))

	count, err := s.CountReports(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSetUserBanned_DBFallback(t *testing.T) {
	s := newTestService(t)
	user := &models.User{Email: "dev@example.com", Username: "dev"}
	require.NoError(t, s.DB.Create(user).Error)

	now := time.Now().UTC()
	entry := &models.ModerationLog{Action: models.ActionBanUser, ActorID: "admin-1", TargetUserID: &user.ID, Metadata: models.Metadata{}}
	require.NoError(t, s.SetUserBanned(user.ID, true, &now, entry))

	// No Redis configured, so the check reads the user row.
	banned, err := s.IsUserBanned(user.ID)
	require.NoError(t, err)
	assert.True(t, banned)

	got, err := s.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.BannedAt)

	logs, err := s.LogsFor(nil, &user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionBanUser, logs[0].Action)
}

func TestSetUserBanned_UnknownUser(t *testing.T) {
	s := newTestService(t)
	entry := &models.ModerationLog{Action: models.ActionBanUser, ActorID: "admin-1", Metadata: models.Metadata{}}

	err := s.SetUserBanned("nope", true, nil, entry)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
