package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/task"
	taskHTTP "taskmaster-ai/internal/task/delivery/http"
	taskRepo "taskmaster-ai/internal/task/repository/postgre"
	taskUC "taskmaster-ai/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers /api/tasks.
// The use case is returned for the ai domain.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, error) {
	// 1. Repository
	repo := taskRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := taskUC.New(repo, srv.l, srv.resolver)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered (timezone %s)", srv.resolver.Location())
	return uc, nil
}
