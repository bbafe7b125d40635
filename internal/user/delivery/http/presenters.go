package http

import (
	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	"taskmaster-ai/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,max=50"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ---

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// ---

type updateProfileReq struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{Name: r.Name}
}

// ---

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required,min=6"`
}

func (r changePasswordReq) toInput() user.ChangePasswordInput {
	return user.ChangePasswordInput{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}

// ---

type verifyTokenReq struct {
	Token string `json:"token"`
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{User: newUserResp(out.User), Token: out.Token}
}

type userDetailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newUserDetailResp(u model.User) userDetailResp {
	return userDetailResp{User: newUserResp(u)}
}

type verifyTokenResp struct {
	Valid bool     `json:"valid"`
	User  userResp `json:"user"`
}
