package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, errScopeMissing
	}
	return sc, nil
}

// processAnalyzeTaskReq binds the analyze-task request body.
func (h *handler) processAnalyzeTaskReq(c *gin.Context) (model.Scope, analyzeTaskReq, error) {
	var req analyzeTaskReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processSuggestPriorityReq(c *gin.Context) (model.Scope, suggestPriorityReq, error) {
	var req suggestPriorityReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processBatchAnalyzeReq(c *gin.Context) (batchAnalyzeReq, error) {
	var req batchAnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
