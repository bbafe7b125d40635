package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	aiHTTP "taskmaster-ai/internal/ai/delivery/http"
	aiUC "taskmaster-ai/internal/ai/usecase"
	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/task"
)

// setupAIDomain wires the analysis engine and registers /api/ai.
func (srv HTTPServer) setupAIDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) error {
	uc := aiUC.New(srv.l, srv.analyzer, tasks)
	h := aiHTTP.New(srv.l, uc)
	aiHTTP.RegisterRoutes(api.Group("/ai"), h, mw)

	st := srv.analyzer.Status()
	if st.Configured {
		srv.l.Infof(ctx, "AI domain registered (provider %s, model %s)", st.Provider, st.Model)
	} else {
		srv.l.Warnf(ctx, "AI domain registered without a provider; heuristic analysis only")
	}
	return nil
}
