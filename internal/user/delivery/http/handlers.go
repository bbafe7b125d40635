package http

import (
	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/middleware"
	"taskmaster-ai/pkg/response"
)

// Register godoc
// @Summary     Register a new user
// @Description Creates an account and returns it together with a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "User data"
// @Success     201  {object} authResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - email already registered"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, "user registered", h.newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} authResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid credentials"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithMessage(c, "login succeeded", h.newAuthResp(output))
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userDetailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, errScopeMissing, nil)
		return
	}

	u, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUserDetailResp(u))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateProfileReq true "New name"
// @Success     200 {object} userDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/auth/update-profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	u, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithMessage(c, "profile updated", h.newUserDetailResp(u))
}

// ChangePassword godoc
// @Summary     Change password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body changePasswordReq true "Current and new password"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Current password is incorrect"
// @Router      /api/auth/change-password [POST]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processChangePasswordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.ChangePassword: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithMessage(c, "password updated", nil)
}

// VerifyToken godoc
// @Summary     Verify a token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body verifyTokenReq true "Token"
// @Success     200 {object} verifyTokenResp
// @Failure     400 {object} response.Resp "Token not provided"
// @Failure     401 {object} response.Resp "Invalid or expired token"
// @Failure     404 {object} response.Resp "User not found"
// @Router      /api/auth/verify-token [POST]
func (h *handler) VerifyToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyTokenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	u, err := h.uc.VerifyToken(ctx, req.Token)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, verifyTokenResp{Valid: true, User: newUserResp(u)})
}
