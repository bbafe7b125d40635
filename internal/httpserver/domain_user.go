package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/user"
	userHTTP "taskmaster-ai/internal/user/delivery/http"
)

// setupUserDomain registers /api/auth on the user use case built in mapHandlers.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc user.UseCase) error {
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
