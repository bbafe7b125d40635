package user

import (
	"context"

	"taskmaster-ai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Public
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	VerifyToken(ctx context.Context, token string) (model.User, error)

	// Authenticated
	Authenticate(ctx context.Context, token string) (model.Scope, error)
	Detail(ctx context.Context, sc model.Scope) (model.User, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (model.User, error)
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error
}
