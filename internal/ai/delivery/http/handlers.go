package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/pkg/response"
)

// AnalyzeTask godoc
// @Summary     Analyze a task
// @Description Suggests priority, estimated time, tips and subtasks. Falls back to a heuristic when the AI provider is unavailable. With taskId the result is saved on the task.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body analyzeTaskReq true "Task title and description"
// @Success     200 {object} analyzeTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/ai/analyze-task [POST]
func (h *handler) AnalyzeTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processAnalyzeTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.AnalyzeTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AnalyzeTask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeTaskResp(out))
}

// Insights godoc
// @Summary     Productivity insights
// @Tags        AI
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} insightsResp
// @Router      /api/ai/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Insights(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightsResp(out))
}

// SuggestPriority godoc
// @Summary     Suggest priorities
// @Description Compares the stored priority of each task with the analysed one.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body suggestPriorityReq true "Task IDs"
// @Success     200 {object} suggestPriorityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No tasks found"
// @Router      /api/ai/suggest-priority [POST]
func (h *handler) SuggestPriority(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSuggestPriorityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SuggestPriority(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SuggestPriority: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestPriorityResp(out))
}

// BatchAnalyze godoc
// @Summary     Analyze up to 10 tasks
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body batchAnalyzeReq true "Tasks"
// @Success     200 {object} batchAnalyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/ai/batch-analyze [POST]
func (h *handler) BatchAnalyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.BatchAnalyze(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.BatchAnalyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBatchAnalyzeResp(out))
}

// Health godoc
// @Summary     AI provider status
// @Tags        AI
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} healthResp
// @Router      /api/ai/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, h.newHealthResp(h.uc.Health(c.Request.Context())))
}
