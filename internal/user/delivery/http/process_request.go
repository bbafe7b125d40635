package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/internal/model"
)

// processRegisterReq binds and validates the register request body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateProfileReq(c *gin.Context) (model.Scope, updateProfileReq, error) {
	var req updateProfileReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, errScopeMissing
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processChangePasswordReq(c *gin.Context) (model.Scope, changePasswordReq, error) {
	var req changePasswordReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, errScopeMissing
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processVerifyTokenReq(c *gin.Context) (verifyTokenReq, error) {
	var req verifyTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		return req, errTokenMissing
	}
	return req, nil
}
