package handler

import (
	"net/http"

	"devblogg/backend/internal/content"
	"devblogg/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// CreatePost creates a new draft for the caller.
func (h *Handler) CreatePost(c *gin.Context) {
	var input content.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.Content.CreatePost(principalFrom(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPostBySlug serves a single post by its slug.
func (h *Handler) GetPostBySlug(c *gin.Context) {
	post, err := h.Content.GetPostBySlug(c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost soft-deletes a post (author or admin).
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.Content.DeletePost(principalFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitPost moves the caller's draft into the review queue.
func (h *Handler) SubmitPost(c *gin.Context) {
	post, err := h.Engine.SubmitForReview(principalFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// AddComment attaches a comment (optionally a reply) to a post.
func (h *Handler) AddComment(c *gin.Context) {
	var input struct {
		ParentID *string `json:"parent_id"`
		Content  string  `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.Content.AddComment(principalFrom(c), c.Param("id"), input.ParentID, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// ListComments serves a post's live comments.
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.Content.CommentsForPost(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment soft-deletes a comment (author or admin).
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.Content.DeleteComment(principalFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleLike flips the caller's like on a post.
func (h *Handler) ToggleLike(c *gin.Context) {
	h.toggle(c, models.EngagementLike)
}

// ToggleBookmark flips the caller's bookmark on a post.
func (h *Handler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, models.EngagementBookmark)
}

func (h *Handler) toggle(c *gin.Context, kind models.EngagementKind) {
	result, err := h.Engagement.Toggle(principalFrom(c), c.Param("id"), kind)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": string(result)})
}

// ReportPost files a community report against a post.
func (h *Handler) ReportPost(c *gin.Context) {
	var input struct {
		ReasonCode models.ReportReason `json:"reason_code"`
		Reason     string              `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rep, err := h.Reports.FileReport(principalFrom(c), c.Param("id"), input.ReasonCode, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}
