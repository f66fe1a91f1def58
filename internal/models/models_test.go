package models_test

import (
	"reflect"
	"testing"

	"devblogg/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestBeforeCreate_GeneratesUUID verifies that the BeforeCreate hooks assign
// a valid UUID when none is set.
func TestBeforeCreate_GeneratesUUID(t *testing.T) {
	user := &models.User{Email: "dev@example.com", Username: "dev"}
	assert.NoError(t, user.BeforeCreate(nil)) // nil *gorm.DB is acceptable for this hook
	assert.NotEmpty(t, user.ID)
	_, err := uuid.Parse(user.ID)
	assert.NoError(t, err, "User ID must be a valid UUID string")

	post := &models.Post{Title: "Hello", Slug: "hello", AuthorID: user.ID}
	assert.NoError(t, post.BeforeCreate(nil))
	_, err = uuid.Parse(post.ID)
	assert.NoError(t, err, "Post ID must be a valid UUID string")

	report := &models.PostReport{PostID: post.ID, UserID: user.ID}
	assert.NoError(t, report.BeforeCreate(nil))
	_, err = uuid.Parse(report.ID)
	assert.NoError(t, err)

	entry := &models.ModerationLog{Action: models.ActionClaimPost, ActorID: user.ID}
	assert.NoError(t, entry.BeforeCreate(nil))
	_, err = uuid.Parse(entry.ID)
	assert.NoError(t, err)
}

// TestBeforeCreate_PreservesExistingID verifies that hooks never overwrite a
// caller-assigned ID.
func TestBeforeCreate_PreservesExistingID(t *testing.T) {
	existingID := uuid.New().String()
	post := &models.Post{ID: existingID, Title: "Hello", Slug: "hello"}

	assert.NoError(t, post.BeforeCreate(nil))
	assert.Equal(t, existingID, post.ID, "BeforeCreate should preserve existing ID")
}

func TestPostStatus_Names(t *testing.T) {
	for _, status := range []models.PostStatus{
		models.PostStatusDraft,
		models.PostStatusPending,
		models.PostStatusInReview,
		models.PostStatusPublished,
		models.PostStatusRejected,
	} {
		parsed, ok := models.ParsePostStatus(status.String())
		assert.True(t, ok, "round-trip for %s", status)
		assert.Equal(t, status, parsed)
	}

	_, ok := models.ParsePostStatus("NOPE")
	assert.False(t, ok)
}

func TestPost_ClaimHelpers(t *testing.T) {
	post := &models.Post{}
	assert.False(t, post.Claimed())
	assert.False(t, post.ClaimedBy("mod-1"))

	modID := "mod-1"
	post.AssignedModeratorID = &modID
	assert.True(t, post.Claimed())
	assert.True(t, post.ClaimedBy("mod-1"))
	assert.False(t, post.ClaimedBy("mod-2"))
}

// TestMetadata_RoundTrip verifies the jsonb column type survives a
// Value/Scan cycle.
func TestMetadata_RoundTrip(t *testing.T) {
	in := models.Metadata{
		"admin_override": true,
		"from_status":    "PENDING",
		"report_count":   float64(6), // JSON numbers come back as float64
	}

	raw, err := in.Value()
	assert.NoError(t, err)

	var out models.Metadata
	assert.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)
}

func TestMetadata_NilAndEmpty(t *testing.T) {
	var m models.Metadata
	raw, err := m.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", raw)

	var out models.Metadata
	assert.NoError(t, out.Scan(nil))
	assert.NotNil(t, out)
	assert.Empty(t, out)

	assert.Error(t, out.Scan(42), "unsupported column types must be rejected")
}

// TestUniquePairTags verifies the one-action-per-user constraints are wired
// onto the composite indexes (catches accidental tag removal during
// refactoring).
func TestUniquePairTags(t *testing.T) {
	for name, typ := range map[string]reflect.Type{
		"PostLike":     reflect.TypeOf(models.PostLike{}),
		"PostBookmark": reflect.TypeOf(models.PostBookmark{}),
		"PostReport":   reflect.TypeOf(models.PostReport{}),
	} {
		for _, field := range []string{"PostID", "UserID"} {
			f, found := typ.FieldByName(field)
			assert.True(t, found, "%s.%s should exist", name, field)
			assert.Contains(t, f.Tag.Get("gorm"), "uniqueIndex:", "%s.%s should be part of the unique pair", name, field)
		}
	}
}

func TestReportReason_Valid(t *testing.T) {
	assert.True(t, models.ReasonSpam.Valid())
	assert.True(t, models.ReasonOther.Valid())
	assert.False(t, models.ReportReason(99).Valid())
	assert.Equal(t, "MISINFORMATION", models.ReasonMisinformation.String())
}

func TestRole_CanModerate(t *testing.T) {
	assert.False(t, models.RoleUser.CanModerate())
	assert.True(t, models.RoleModerator.CanModerate())
	assert.True(t, models.RoleAdmin.CanModerate())
}
