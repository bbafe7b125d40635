package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
)

// RegisterRoutes maps the /ai endpoints. All routes are authenticated and rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		r.POST("/analyze-task", h.AnalyzeTask)
		r.GET("/insights", h.Insights)
		r.POST("/suggest-priority", h.SuggestPriority)
		r.POST("/batch-analyze", h.BatchAnalyze)
		r.GET("/health", h.Health)
	}
}
