package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches every route to the engine. All routes require an
// authenticated principal; role checks happen in the services and handlers.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/", h.PrincipalMiddleware())

	// Content
	api.POST("/posts", h.CreatePost)
	api.GET("/p/:slug", h.GetPostBySlug)
	api.DELETE("/posts/:id", h.DeletePost)
	api.POST("/posts/:id/submit", h.SubmitPost)
	api.POST("/posts/:id/comments", h.AddComment)
	api.GET("/posts/:id/comments", h.ListComments)
	api.DELETE("/comments/:id", h.DeleteComment)

	// Engagement + reports
	api.POST("/posts/:id/like", h.ToggleLike)
	api.POST("/posts/:id/bookmark", h.ToggleBookmark)
	api.POST("/posts/:id/report", h.ReportPost)

	// Moderation
	api.POST("/posts/:id/claim", h.ClaimPost)
	api.POST("/posts/:id/approve", h.ApprovePost)
	api.POST("/posts/:id/reject", h.RejectPost)
	api.GET("/moderation/queue", h.ModerationQueue)
	api.GET("/moderation/logs", h.ModerationLogs)
	api.POST("/users/:id/ban", h.BanUser)
	api.POST("/users/:id/unban", h.UnbanUser)
	api.GET("/ws/modfeed", h.ServeModerationFeed)
}
