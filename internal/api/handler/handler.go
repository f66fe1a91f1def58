// Package handler is the thin HTTP surface over the domain services. All
// business rules live below; handlers only decode requests, resolve the
// principal and map typed errors onto status codes.
package handler

import (
	"net/http"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/content"
	"devblogg/backend/internal/engagement"
	"devblogg/backend/internal/modfeed"
	"devblogg/backend/internal/moderation"
	"devblogg/backend/internal/report"

	"github.com/gin-gonic/gin"
)

// BanChecker answers whether an account is currently banned. Backed by the
// storage service's Redis ban cache with a database fallback.
type BanChecker interface {
	IsUserBanned(userID string) (bool, error)
}

// Handler bundles the domain services behind the HTTP routes.
type Handler struct {
	Content    *content.Service
	Engine     *moderation.Service
	Engagement *engagement.Service
	Reports    *report.Service
	Hub        *modfeed.Hub
	Bans       BanChecker
	JWTSecret  []byte
}

func NewHandler(contentSvc *content.Service, engine *moderation.Service, engagementSvc *engagement.Service, reportSvc *report.Service, hub *modfeed.Hub, bans BanChecker, jwtSecret []byte) *Handler {
	return &Handler{
		Content:    contentSvc,
		Engine:     engine,
		Engagement: engagementSvc,
		Reports:    reportSvc,
		Hub:        hub,
		Bans:       bans,
		JWTSecret:  jwtSecret,
	}
}

// statusFor maps an error kind to its HTTP status code.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden, apperr.KindNotAssignedModerator:
		return http.StatusForbidden
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindDuplicateSlug, apperr.KindDuplicateReport, apperr.KindAlreadyClaimed, apperr.KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a typed failure as the standard error envelope.
func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	message := err.Error()
	if kind == apperr.KindInternal {
		message = "an unexpected error occurred"
	}
	c.JSON(statusFor(kind), gin.H{
		"success": false,
		"code":    string(kind),
		"message": message,
	})
}
