package handler

import (
	"net/http"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ClaimPost assigns the calling moderator to the post.
func (h *Handler) ClaimPost(c *gin.Context) {
	post, err := h.Engine.Claim(principalFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ApprovePost publishes the post under review.
func (h *Handler) ApprovePost(c *gin.Context) {
	post, err := h.Engine.Approve(principalFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// RejectPost declines the post under review; a reason is mandatory.
func (h *Handler) RejectPost(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.Engine.Reject(principalFrom(c), c.Param("id"), input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// ModerationQueue serves the moderator dashboard: posts in a given pipeline
// status (default IN_REVIEW) or the caller's claimed posts with ?mine=true.
func (h *Handler) ModerationQueue(c *gin.Context) {
	principal := principalFrom(c)
	if !principal.CanModerate() {
		writeError(c, apperr.New(apperr.KindForbidden, "moderator or admin role required"))
		return
	}

	if c.Query("mine") == "true" {
		posts, err := h.Content.ClaimedBy(principal.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	status := models.PostStatusInReview
	if name := c.Query("status"); name != "" {
		parsed, ok := models.ParsePostStatus(name)
		if !ok {
			writeError(c, apperr.New(apperr.KindValidation, "unknown post status"))
			return
		}
		status = parsed
	}

	posts, err := h.Content.PostsByStatus(status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ModerationLogs serves the audit trail filtered by target post or user.
func (h *Handler) ModerationLogs(c *gin.Context) {
	principal := principalFrom(c)
	if !principal.CanModerate() {
		writeError(c, apperr.New(apperr.KindForbidden, "moderator or admin role required"))
		return
	}

	var targetPostID, targetUserID *string
	if v := c.Query("post_id"); v != "" {
		targetPostID = &v
	}
	if v := c.Query("user_id"); v != "" {
		targetUserID = &v
	}

	logs, err := h.Engine.LogsFor(targetPostID, targetUserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// BanUser bans the target account.
func (h *Handler) BanUser(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// The body is optional; a ban without a stated reason is still valid.
	_ = c.ShouldBindJSON(&input)

	user, err := h.Engine.BanUser(principalFrom(c), c.Param("id"), input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UnbanUser lifts the target account's ban.
func (h *Handler) UnbanUser(c *gin.Context) {
	user, err := h.Engine.UnbanUser(principalFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
