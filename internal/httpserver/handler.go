package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	userRepo "taskmaster-ai/internal/user/repository/postgre"
	userUC "taskmaster-ai/internal/user/usecase"
	"taskmaster-ai/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	// The user use case backs both the auth routes and the Auth middleware.
	uUC := userUC.New(userRepo.New(srv.postgresDB, srv.l), srv.l, srv.jwtManager, srv.encrypter)
	mw := middleware.New(srv.l, uUC, srv.corsConfig, srv.rateLimitConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw, uUC); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsConfig.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.corsConfig.AllowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootBanner)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/api/health", srv.apiHealthCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Resp{
			ErrorCode: http.StatusNotFound,
			Message:   "route not found",
		})
	})
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware, uUC user.UseCase) error {
	api := srv.gin.Group("/api")

	if err := srv.setupUserDomain(ctx, api, mw, uUC); err != nil {
		return err
	}

	tUC, err := srv.setupTaskDomain(ctx, api, mw)
	if err != nil {
		return err
	}

	if err := srv.setupAIDomain(ctx, api, mw, tUC); err != nil {
		return err
	}

	return nil
}
