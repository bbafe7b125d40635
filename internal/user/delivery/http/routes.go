package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
)

// RegisterRoutes maps the /auth endpoints. register, login and verify-token are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/verify-token", h.VerifyToken)

	rg.GET("/me", mw.Auth(), h.Me)
	rg.PUT("/update-profile", mw.Auth(), h.UpdateProfile)
	rg.POST("/change-password", mw.Auth(), h.ChangePassword)
}
