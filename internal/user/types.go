package user

import "taskmaster-ai/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Name string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	User  model.User
	Token string
}
