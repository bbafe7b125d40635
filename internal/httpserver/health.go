package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "TaskMaster AI API"
	HealthVersion = "1.0.0"
	ServiceName   = "taskmaster-ai"

	dbPingTimeout = 2 * time.Second
)

// rootBanner lists the API entry points.
func (srv HTTPServer) rootBanner(c *gin.Context) {
	response.OK(c, gin.H{
		"message": HealthMessage,
		"version": HealthVersion,
		"endpoints": gin.H{
			"auth":    "/api/auth",
			"tasks":   "/api/tasks",
			"ai":      "/api/ai",
			"health":  "/api/health",
			"swagger": "/swagger/index.html",
		},
	})
}

// apiHealthCheck reports the service and database state.
// @Summary API Health Check
// @Description Service status, environment and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /api/health [get]
func (srv HTTPServer) apiHealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	status, database, code := "OK", "connected", http.StatusOK
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.apiHealthCheck PingContext: %v", err)
		status, database, code = "DEGRADED", "disconnected", http.StatusServiceUnavailable
	}

	c.JSON(code, response.NewOKResp(gin.H{
		"status":      status,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": srv.environment,
		"database":    database,
		"service":     ServiceName,
	}))
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck returns ready once the database answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
	defer cancel()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "database unavailable",
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
