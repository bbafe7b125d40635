package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
)

// RegisterRoutes maps the /tasks endpoints. Every route requires authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/stats/summary", h.Stats)
		tasks.GET("/stats/productivity", h.Productivity)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/toggle", h.Toggle)
	}
}
