package report_test

import (
	"testing"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/moderation"
	"devblogg/backend/internal/report"
	"devblogg/backend/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reporter = models.Principal{UserID: "user-1", Role: models.RoleUser}

func newService(t *testing.T) (*report.Service, *storagetest.MockStorage) {
	t.Helper()
	store := new(storagetest.MockStorage)
	return report.NewService(store, moderation.NewService(store)), store
}

func publishedPost() *models.Post {
	return &models.Post{ID: "post-1", AuthorID: "author-1", Status: models.PostStatusPublished}
}

func TestFileReport_BelowThreshold(t *testing.T) {
	svc, store := newService(t)
	store.On("GetPostByID", "post-1").Return(publishedPost(), nil)
	store.On("CreateReport", mock.MatchedBy(func(rep *models.PostReport) bool {
		return rep.PostID == "post-1" &&
			rep.UserID == reporter.UserID &&
			rep.ReasonCode == models.ReasonSpam
	})).Return(nil)
	store.On("CountReports", "post-1").Return(int64(1), nil)

	rep, err := svc.FileReport(reporter, "post-1", models.ReasonSpam, "link farm")
	require.NoError(t, err)
	assert.Equal(t, "link farm", rep.Reason)
	store.AssertNotCalled(t, "EscalatePost", mock.Anything)
}

// The report that pushes the count past the threshold escalates the post in
// the same request.
func TestFileReport_SixthReportEscalates(t *testing.T) {
	svc, store := newService(t)
	store.On("GetPostByID", "post-1").Return(publishedPost(), nil)
	store.On("CreateReport", mock.Anything).Return(nil)
	store.On("CountReports", "post-1").Return(int64(6), nil)
	store.On("EscalatePost", "post-1").Return(true, nil)
	store.On("PublishEvent", mock.MatchedBy(func(event models.ModerationEvent) bool {
		return event.Type == models.EventPostEscalated && event.PostID == "post-1"
	})).Return(nil)

	_, err := svc.FileReport(reporter, "post-1", models.ReasonHarassment, "")
	require.NoError(t, err)
	store.AssertCalled(t, "EscalatePost", "post-1")
}

func TestFileReport_Duplicate(t *testing.T) {
	svc, store := newService(t)
	store.On("GetPostByID", "post-1").Return(publishedPost(), nil)
	store.On("CreateReport", mock.Anything).Return(apperr.New(apperr.KindDuplicateReport, "already reported"))

	_, err := svc.FileReport(reporter, "post-1", models.ReasonSpam, "")
	assert.True(t, apperr.Is(err, apperr.KindDuplicateReport))
	store.AssertNotCalled(t, "CountReports", mock.Anything)
}

func TestFileReport_OwnPost(t *testing.T) {
	svc, store := newService(t)
	selfAuthor := models.Principal{UserID: "author-1", Role: models.RoleUser}
	store.On("GetPostByID", "post-1").Return(publishedPost(), nil)

	_, err := svc.FileReport(selfAuthor, "post-1", models.ReasonSpam, "")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	store.AssertNotCalled(t, "CreateReport", mock.Anything)
}

func TestFileReport_UnknownReason(t *testing.T) {
	svc, store := newService(t)

	_, err := svc.FileReport(reporter, "post-1", models.ReportReason(99), "")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	store.AssertNotCalled(t, "GetPostByID", mock.Anything)
}

func TestFileReport_Banned(t *testing.T) {
	svc, store := newService(t)
	banned := models.Principal{UserID: reporter.UserID, Role: models.RoleUser, IsBanned: true}

	_, err := svc.FileReport(banned, "post-1", models.ReasonSpam, "")
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
	store.AssertNotCalled(t, "CreateReport", mock.Anything)
}
